package repository

import (
	"context"
	"time"

	"shiba-faucet/internal/infra"
	"shiba-faucet/internal/pkg/pgconv"
	"shiba-faucet/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository appends rejected-attempt events. Callers treat writes
// as best-effort; an audit failure never blocks a claim.
type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, ev commands.AuditEvent, at time.Time) error {
	const query = `
		INSERT INTO claim_events (id, wallet, asset, kind, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, uuid.New(), ev.Wallet, ev.Asset, ev.Kind, ev.Detail, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to record claim event", err)
	}
	return nil
}
