//go:build unit

package api_test

import (
	"salon-booking/internal/domain/user"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withSession stands in for RequireAuth.
func withSession(id uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", usecase.Session{UserID: id, Role: role})
		c.Next()
	}
}
