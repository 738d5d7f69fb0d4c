package bootstrap

import (
	"time"

	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.Admin.TokenDuration)
	if err != nil {
		panic("invalid ADMIN_TOKEN_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Admin.JWTSecret, tokenDuration)
}
