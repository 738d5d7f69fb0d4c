package readstore

import (
	"context"

	"shiba-faucet/internal/domain/cooldown"
	"shiba-faucet/internal/infra"
	"shiba-faucet/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CooldownReadStore struct {
	db *pgxpool.Pool
}

func NewCooldownReadStore(db *pgxpool.Pool) *CooldownReadStore {
	return &CooldownReadStore{db: db}
}

func (r *CooldownReadStore) EntriesForWallet(ctx context.Context, walletAddr string) ([]*cooldown.Entry, error) {
	const query = `SELECT wallet, asset, last_claim_at FROM cooldowns WHERE wallet = $1`

	rows, err := r.db.Query(ctx, query, walletAddr)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get cooldown entries for wallet", err)
	}
	defer rows.Close()

	var result []*cooldown.Entry
	for rows.Next() {
		var (
			entry       cooldown.Entry
			lastClaimAt pgtype.Timestamptz
		)
		if err := rows.Scan(&entry.Wallet, &entry.Asset, &lastClaimAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cooldown row", err)
		}
		entry.LastClaimAt = pgconv.TimeFromPgtype(lastClaimAt)
		result = append(result, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cooldown rows", err)
	}
	return result, nil
}
