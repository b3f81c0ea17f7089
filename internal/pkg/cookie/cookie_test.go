//go:build unit

package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salon-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issued(t *testing.T, fn func(c *gin.Context)) map[string]*http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	fn(c)

	out := map[string]*http.Cookie{}
	for _, ck := range w.Result().Cookies() {
		out[ck.Name] = ck
	}
	return out
}

func TestSetTokenCookies(t *testing.T) {
	cfg := config.CookieConfig{Domain: "salon.example", Secure: true, SameSite: "strict"}
	cookies := issued(t, func(c *gin.Context) {
		SetTokenCookies(c, cfg, "acc", "ref", 15*time.Minute, 7*24*time.Hour)
	})
	require.Len(t, cookies, 2)

	access := cookies[AccessTokenCookieName]
	assert.Equal(t, "acc", access.Value)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, 900, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)

	refresh := cookies[RefreshTokenCookieName]
	assert.Equal(t, "ref", refresh.Value)
	assert.Equal(t, "/api/auth", refresh.Path)
	assert.Equal(t, 7*24*3600, refresh.MaxAge)
}

func TestClearTokenCookies(t *testing.T) {
	cookies := issued(t, func(c *gin.Context) {
		ClearTokenCookies(c, config.CookieConfig{})
	})
	for _, name := range []string{AccessTokenCookieName, RefreshTokenCookieName} {
		require.Contains(t, cookies, name)
		assert.Empty(t, cookies[name].Value)
		assert.Negative(t, cookies[name].MaxAge, name)
	}
}

func TestSameSite(t *testing.T) {
	assert.Equal(t, http.SameSiteStrictMode, sameSite("Strict"))
	assert.Equal(t, http.SameSiteNoneMode, sameSite("none"))
	assert.Equal(t, http.SameSiteLaxMode, sameSite("Lax"))
	assert.Equal(t, http.SameSiteLaxMode, sameSite(""))
}

func TestGetTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetAccessToken(c))

	c.Request.AddCookie(&http.Cookie{Name: RefreshTokenCookieName, Value: "ref"})
	assert.Equal(t, "ref", GetRefreshToken(c))
}
