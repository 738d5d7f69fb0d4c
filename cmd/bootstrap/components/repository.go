package components

import (
	"shiba-faucet/internal/infra/readstore"
	repo_impl "shiba-faucet/internal/infra/repository"
	"shiba-faucet/internal/usecase/commands"
	"shiba-faucet/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewAssetRepository,
			fx.As(new(commands.AssetRepository)),
		),
		fx.Annotate(
			repo_impl.NewCooldownRepository,
			fx.As(new(commands.CooldownRepository)),
		),
		fx.Annotate(
			repo_impl.NewClaimRepository,
			fx.As(new(commands.ClaimRepository)),
		),
		fx.Annotate(
			repo_impl.NewAuditRepository,
			fx.As(new(commands.AuditRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewClaimReadStore,
			fx.As(new(queries.ClaimReadStore)),
		),
		fx.Annotate(
			readstore.NewAssetReadStore,
			fx.As(new(queries.AssetReadStore)),
		),
		fx.Annotate(
			readstore.NewCooldownReadStore,
			fx.As(new(queries.CooldownReadStore)),
		),
	),
)
