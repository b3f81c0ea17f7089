package usecase

import (
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Session identifies the caller of a request. Middleware builds it from the access token and
// handlers read it explicitly.
type Session struct {
	UserID uuid.UUID
	Role   user.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString, jwt.TokenTypeAccess)
	if err != nil {
		return Session{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Session{}, err
	}

	return Session{UserID: claims.UserID, Role: role}, nil
}
