package repository

import (
	"context"
	"time"

	"shiba-faucet/internal/infra"
	"shiba-faucet/internal/pkg/pgconv"
	"shiba-faucet/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type AssetRepository struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) FindBySymbol(ctx context.Context, symbol string) (*commands.AssetSnapshot, error) {
	const query = `
		SELECT symbol, name, claim_amount::text, cooldown_seconds, pool_ref, active
		FROM assets
		WHERE symbol = $1`

	var (
		snap            commands.AssetSnapshot
		amountText      string
		cooldownSeconds int64
	)
	err := r.db.QueryRow(ctx, query, symbol).Scan(
		&snap.Symbol, &snap.Name, &amountText, &cooldownSeconds, &snap.PoolRef, &snap.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("asset not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get asset by symbol", err)
	}

	snap.ClaimAmount, err = decimal.NewFromString(amountText)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid claim amount stored for asset", err)
	}
	snap.Cooldown = time.Duration(cooldownSeconds) * time.Second
	return &snap, nil
}

func (r *AssetRepository) Upsert(ctx context.Context, snap commands.AssetSnapshot) error {
	const query = `
		INSERT INTO assets (symbol, name, claim_amount, cooldown_seconds, pool_ref, active, updated_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, now())
		ON CONFLICT (symbol) DO UPDATE SET
			name = EXCLUDED.name,
			claim_amount = EXCLUDED.claim_amount,
			cooldown_seconds = EXCLUDED.cooldown_seconds,
			pool_ref = EXCLUDED.pool_ref,
			active = EXCLUDED.active,
			updated_at = now()`

	_, err := r.db.Exec(ctx, query,
		snap.Symbol, snap.Name, snap.ClaimAmount.String(),
		int64(snap.Cooldown/time.Second), snap.PoolRef, snap.Active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert asset", err)
	}
	return nil
}

func (r *AssetRepository) SetActive(ctx context.Context, symbol string, active bool) error {
	const query = `UPDATE assets SET active = $2, updated_at = now() WHERE symbol = $1`

	tag, err := r.db.Exec(ctx, query, symbol, active)
	if err != nil {
		return infra.WrapRepoErr("failed to update asset active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("asset not found", nil, infra.KindNotFound)
	}
	return nil
}
