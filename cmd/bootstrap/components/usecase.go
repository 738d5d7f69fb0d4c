package components

import (
	"shiba-faucet/internal/pkg/clock"
	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/keylock"
	"shiba-faucet/internal/usecase/commands"
	"shiba-faucet/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	keylock.New,
	func(cfg config.Config) config.FaucetConfig {
		return cfg.Faucet
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewClaimCommands,
		commands.NewAssetCommands,
		commands.NewReconcileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewClaimQueries,
		queries.NewAssetQueries,
	),
)
