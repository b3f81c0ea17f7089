//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/tests/common/dbtest"
	"salon-booking/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Session is a signed-in client.
type Session struct {
	UserID      uuid.UUID
	AccessToken string
	Cookies     []*http.Cookie
}

func SignIn(t *testing.T, router http.Handler, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "access cookie missing")
	require.NotEmpty(t, access.Value)

	return Session{AccessToken: access.Value, Cookies: w.Result().Cookies()}
}

// SignUp inserts a user with dbtest.DefaultPassword and signs in as them.
func SignUp(t *testing.T, db dbtest.Conn, router http.Handler, email string, role user.Role) Session {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role.String())
	s := SignIn(t, router, email, dbtest.DefaultPassword)
	s.UserID = id
	return s
}

func (s Session) SignOut(t *testing.T, router http.Handler) {
	t.Helper()
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, "", s.Cookies...)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

// Token signs an access token without a login. A negative ttl gives an expired token.
func Token(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role, ttl time.Duration) string {
	t.Helper()
	refresh, err := time.ParseDuration(cfg.RefreshTokenDuration)
	require.NoError(t, err)
	token, err := jwt.NewService(cfg.Secret, ttl, refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
