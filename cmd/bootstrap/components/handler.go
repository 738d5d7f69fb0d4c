package components

import (
	"shiba-faucet/internal/handler"
	"shiba-faucet/internal/handler/api"
	"shiba-faucet/internal/handler/middleware"
	"shiba-faucet/internal/pkg/clock"
	"shiba-faucet/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewClaimHandler,
		api.NewAssetHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, clk)
		},
	),
	fx.Invoke(handler.NewRouter),
)
