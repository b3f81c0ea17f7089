package bootstrap

import (
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"

	"go.uber.org/fx"
)

// AuthModule provides token signing and password hashing to the API process.
var AuthModule = fx.Module("auth",
	fx.Provide(
		NewJWTService,
		func() *password.Hasher { return password.NewHasher(password.DefaultCost) },
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := parseTokenTTL("JWT_ACCESS_TOKEN_DURATION", cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := parseTokenTTL("JWT_REFRESH_TOKEN_DURATION", cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	if refresh <= access {
		return nil, errs.New("JWT_REFRESH_TOKEN_DURATION must outlive the access token")
	}
	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}

func parseTokenTTL(name, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.Wrapf(err, "invalid %s", name)
	}
	if d <= 0 {
		return 0, errs.Newf("%s must be positive, got %s", name, raw)
	}
	return d, nil
}
