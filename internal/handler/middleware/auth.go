package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxSessionKey = "session"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// bearerToken prefers the access cookie and falls back to the Authorization header.
func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "Access token required")
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortJSON(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		setSession(c, session)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			abortJSON(c, http.StatusInternalServerError, httperr.MsgInternal)
			return
		}

		if !slices.Contains(roles, session.Role) {
			abortJSON(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func setSession(c *gin.Context, session usecase.Session) {
	c.Set(ctxSessionKey, session)
}

func abortJSON(c *gin.Context, status int, msg string) {
	httperr.Abort(c, nil, httperr.New(status, msg))
}

func GetSession(c *gin.Context) (usecase.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return usecase.Session{}, false
	}
	session, ok := v.(usecase.Session)
	return session, ok
}
