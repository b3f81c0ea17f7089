// Package cookie carries the session tokens for browser clients. Both cookies are HttpOnly;
// the refresh cookie is only sent to the auth endpoints.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"salon-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	accessPath  = "/"
	refreshPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	set(c, cfg, AccessTokenCookieName, accessToken, accessPath, accessTTL)
	set(c, cfg, RefreshTokenCookieName, refreshToken, refreshPath, refreshTTL)
}

// ClearTokenCookies expires both cookies on the paths they were issued for.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", accessPath, -1)
	set(c, cfg, RefreshTokenCookieName, "", refreshPath, -1)
}

func GetAccessToken(c *gin.Context) string {
	return read(c, AccessTokenCookieName)
}

func GetRefreshToken(c *gin.Context) string {
	return read(c, RefreshTokenCookieName)
}

func set(c *gin.Context, cfg config.CookieConfig, name, value, path string, ttl time.Duration) {
	maxAge := int(ttl / time.Second)
	if ttl < 0 {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	})
}

func read(c *gin.Context, name string) string {
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return v
}

// sameSite defaults to Lax. None is only honoured by browsers together with Secure.
func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
