package readstore

import (
	"context"

	"shiba-faucet/internal/infra"
	"shiba-faucet/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetReadStore struct {
	db *pgxpool.Pool
}

func NewAssetReadStore(db *pgxpool.Pool) *AssetReadStore {
	return &AssetReadStore{db: db}
}

// ListActive returns the claimable catalog in deterministic symbol
// order.
func (r *AssetReadStore) ListActive(ctx context.Context) ([]*queries.AssetView, error) {
	const query = `
		SELECT symbol, name, claim_amount::text, cooldown_seconds, active
		FROM assets
		WHERE active
		ORDER BY symbol ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active assets", err)
	}
	defer rows.Close()

	var result []*queries.AssetView
	for rows.Next() {
		var view queries.AssetView
		if err := rows.Scan(&view.Symbol, &view.Name, &view.ClaimAmount, &view.CooldownSeconds, &view.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan asset row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate asset rows", err)
	}
	return result, nil
}
