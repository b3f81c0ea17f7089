package commands

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrRoleNotAllowed       = errs.New("role cannot be chosen at sign-up")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, pw string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     *password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher *password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, err
	}
	if !role.IsSelfService() {
		return nil, ErrRoleNotAllowed
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	u, err := user.NewUser(email, in.Name, hash, role, a.clock.Now())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	pair, err := a.issue(u.ID(), role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{UserID: u.ID(), Role: role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*AuthResult, error) {
	credentials, err := user.NewCredentials(email, pw)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issue(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, u.ID(), a.clock.Now())
	})
	if err != nil {
		// login already succeeded; last_login is informational
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &AuthResult{UserID: u.ID(), Role: u.Role(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	u, err := a.uow.Reads().Users().FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issue(claims.UserID, role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*user.User, error) {
	u, err := a.uow.Reads().Users().FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
