package repository

import (
	"context"
	"time"

	domclaim "shiba-faucet/internal/domain/claim"
	"shiba-faucet/internal/infra"
	"shiba-faucet/internal/pkg/pgconv"
	"shiba-faucet/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ClaimRepository struct {
	db *pgxpool.Pool
}

func NewClaimRepository(db *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) Create(ctx context.Context, c *domclaim.Claim) error {
	const query = `
		INSERT INTO claims (id, wallet, asset, amount, transfer_ref, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		c.ID(), c.Wallet().String(), c.Asset().String(), c.Amount().String(),
		pgconv.StringPtrToPgtype(c.TransferRef()), c.Status().String(),
		pgconv.TimeToPgtype(c.CreatedAt()), pgconv.TimeToPgtype(c.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create claim", err)
	}
	return nil
}

// TransitionToConfirmed finalizes a pending claim. The WHERE clause is
// the terminal-state guard: zero rows means someone already finalized
// this claim, reported as a conflict so the audit trail keeps its first
// outcome.
func (r *ClaimRepository) TransitionToConfirmed(ctx context.Context, id uuid.UUID, transferRef string, at time.Time) error {
	const query = `
		UPDATE claims
		SET status = 'confirmed', transfer_ref = $2, updated_at = $3
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, query, id, transferRef, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to confirm claim", err)
	}
	if tag.RowsAffected() == 0 {
		return r.transitionMiss(ctx, id)
	}
	return nil
}

func (r *ClaimRepository) TransitionToFailed(ctx context.Context, id uuid.UUID, transferRef *string, at time.Time) error {
	const query = `
		UPDATE claims
		SET status = 'failed', transfer_ref = $2, updated_at = $3
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, query, id, pgconv.StringPtrToPgtype(transferRef), pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to fail claim", err)
	}
	if tag.RowsAffected() == 0 {
		return r.transitionMiss(ctx, id)
	}
	return nil
}

func (r *ClaimRepository) UpgradeFailedToConfirmed(ctx context.Context, id uuid.UUID, transferRef string, at time.Time) error {
	const query = `
		UPDATE claims
		SET status = 'confirmed', updated_at = $3
		WHERE id = $1 AND status = 'failed' AND transfer_ref = $2`

	tag, err := r.db.Exec(ctx, query, id, transferRef, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to upgrade claim", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("claim no longer failed with this transfer ref", nil, infra.KindConflict)
	}
	return nil
}

func (r *ClaimRepository) FindConfirmedMissingCooldown(ctx context.Context, limit int32) ([]*commands.ClaimSnapshot, error) {
	const query = `
		SELECT c.id, c.wallet, c.asset, c.amount::text, c.transfer_ref, c.status, c.created_at
		FROM claims c
		LEFT JOIN cooldowns cd ON cd.wallet = c.wallet AND cd.asset = c.asset
		WHERE c.status = 'confirmed'
		  AND (cd.wallet IS NULL OR cd.last_claim_at < c.created_at)
		ORDER BY c.created_at
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan confirmed claims missing cooldown", err)
	}
	defer rows.Close()
	return scanClaimSnapshots(rows)
}

func (r *ClaimRepository) FindFailedWithTransferRef(ctx context.Context, limit int32) ([]*commands.ClaimSnapshot, error) {
	const query = `
		SELECT id, wallet, asset, amount::text, transfer_ref, status, created_at
		FROM claims
		WHERE status = 'failed' AND transfer_ref IS NOT NULL
		ORDER BY created_at
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan failed claims with transfer ref", err)
	}
	defer rows.Close()
	return scanClaimSnapshots(rows)
}

func (r *ClaimRepository) transitionMiss(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM claims WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to inspect claim after guarded update", err)
	}
	if !exists {
		return infra.WrapRepoErr("claim not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("claim already in terminal state", nil, infra.KindConflict)
}

func scanClaimSnapshots(rows pgx.Rows) ([]*commands.ClaimSnapshot, error) {
	var result []*commands.ClaimSnapshot
	for rows.Next() {
		var (
			snap        commands.ClaimSnapshot
			amountText  string
			transferRef pgtype.Text
			status      string
			createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&snap.ID, &snap.Wallet, &snap.Asset, &amountText, &transferRef, &status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan claim row", err)
		}
		amount, err := decimal.NewFromString(amountText)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid amount stored on claim", err)
		}
		snap.Amount = amount
		snap.TransferRef = pgconv.StringPtrFromPgtype(transferRef)
		snap.Status = domclaim.Status(status)
		snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate claim rows", err)
	}
	return result, nil
}
