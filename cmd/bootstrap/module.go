package bootstrap

import (
	"shiba-faucet/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	LedgerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	ReconcileModule,
)
