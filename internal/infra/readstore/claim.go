package readstore

import (
	"context"

	"shiba-faucet/internal/infra"
	"shiba-faucet/internal/pkg/pgconv"
	"shiba-faucet/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClaimReadStore struct {
	db *pgxpool.Pool
}

func NewClaimReadStore(db *pgxpool.Pool) *ClaimReadStore {
	return &ClaimReadStore{db: db}
}

func (r *ClaimReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClaimView, error) {
	const query = `
		SELECT id, wallet, asset, amount::text, transfer_ref, status, created_at
		FROM claims
		WHERE id = $1`

	view, err := scanClaimView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get claim by id", err)
	}
	return view, nil
}

func (r *ClaimReadStore) FindByWallet(ctx context.Context, walletAddr string, limit int32) ([]*queries.ClaimView, error) {
	const query = `
		SELECT id, wallet, asset, amount::text, transfer_ref, status, created_at
		FROM claims
		WHERE wallet = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, walletAddr, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get claims by wallet", err)
	}
	defer rows.Close()

	var result []*queries.ClaimView
	for rows.Next() {
		view, err := scanClaimView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan claim row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate claim rows", err)
	}
	return result, nil
}

func scanClaimView(row pgx.Row) (*queries.ClaimView, error) {
	var (
		view        queries.ClaimView
		transferRef pgtype.Text
		createdAt   pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.Wallet, &view.Asset, &view.Amount, &transferRef, &view.Status, &createdAt)
	if err != nil {
		return nil, err
	}
	view.TransferRef = pgconv.StringPtrFromPgtype(transferRef)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
