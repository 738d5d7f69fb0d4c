package repository

import (
	"context"
	"time"

	"shiba-faucet/internal/domain/cooldown"
	"shiba-faucet/internal/infra"
	"shiba-faucet/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CooldownRepository is the durable (wallet, asset) → last-claim-time
// ledger. Mutation for a key always arrives serialized by the
// orchestrator's per-key lock; the single-row upsert below is the only
// atomicity this layer has to provide itself.
type CooldownRepository struct {
	db *pgxpool.Pool
}

func NewCooldownRepository(db *pgxpool.Pool) *CooldownRepository {
	return &CooldownRepository{db: db}
}

func (r *CooldownRepository) Find(ctx context.Context, wallet, asset string) (*cooldown.Entry, error) {
	const query = `SELECT last_claim_at FROM cooldowns WHERE wallet = $1 AND asset = $2`

	var lastClaimAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, query, wallet, asset).Scan(&lastClaimAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cooldown entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cooldown entry", err)
	}

	return &cooldown.Entry{
		Wallet:      wallet,
		Asset:       asset,
		LastClaimAt: pgconv.TimeFromPgtype(lastClaimAt),
	}, nil
}

// MarkClaimed upserts the timestamp. GREATEST keeps the write from ever
// moving a window backwards, which lets the reconciler replay repairs
// safely.
func (r *CooldownRepository) MarkClaimed(ctx context.Context, wallet, asset string, at time.Time) error {
	const query = `
		INSERT INTO cooldowns (wallet, asset, last_claim_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (wallet, asset) DO UPDATE SET
			last_claim_at = GREATEST(cooldowns.last_claim_at, EXCLUDED.last_claim_at)`

	_, err := r.db.Exec(ctx, query, wallet, asset, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to mark cooldown claimed", err)
	}
	return nil
}
