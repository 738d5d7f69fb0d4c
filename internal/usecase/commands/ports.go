package commands

import (
	"context"
	"time"

	"shiba-faucet/internal/domain/claim"
	"shiba-faucet/internal/domain/cooldown"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep the command layer off read-side query types
type AssetSnapshot struct {
	Symbol      string
	Name        string
	ClaimAmount decimal.Decimal
	Cooldown    time.Duration
	PoolRef     string
	Active      bool
}

type ClaimSnapshot struct {
	ID          uuid.UUID
	Wallet      string
	Asset       string
	Amount      decimal.Decimal
	TransferRef *string
	Status      claim.Status
	CreatedAt   time.Time
}

type AssetRepository interface {
	// FindBySymbol returns KindNotFound for unknown symbols; inactive
	// assets are returned with Active=false so callers can distinguish
	// the two for diagnostics.
	FindBySymbol(ctx context.Context, symbol string) (*AssetSnapshot, error)
	Upsert(ctx context.Context, snap AssetSnapshot) error
	SetActive(ctx context.Context, symbol string, active bool) error
}

type CooldownRepository interface {
	Find(ctx context.Context, wallet, asset string) (*cooldown.Entry, error)
	// MarkClaimed upserts the last-claim timestamp. The write never
	// moves the timestamp backwards, which makes reconciliation repair
	// idempotent.
	MarkClaimed(ctx context.Context, wallet, asset string, at time.Time) error
}

type ClaimRepository interface {
	Create(ctx context.Context, c *claim.Claim) error
	// Transitions are guarded: a claim already in a terminal state is
	// reported as KindConflict, never overwritten.
	TransitionToConfirmed(ctx context.Context, id uuid.UUID, transferRef string, at time.Time) error
	TransitionToFailed(ctx context.Context, id uuid.UUID, transferRef *string, at time.Time) error
	// UpgradeFailedToConfirmed is the one sanctioned exit from a
	// terminal state: a failed claim whose submitted transfer turns out
	// to have landed. Keyed by transfer reference so replays are no-ops.
	UpgradeFailedToConfirmed(ctx context.Context, id uuid.UUID, transferRef string, at time.Time) error
	FindConfirmedMissingCooldown(ctx context.Context, limit int32) ([]*ClaimSnapshot, error)
	FindFailedWithTransferRef(ctx context.Context, limit int32) ([]*ClaimSnapshot, error)
}

type AuditEvent struct {
	Wallet string
	Asset  string
	Kind   string
	Detail string
}

// AuditRepository records rejected attempts and transfer failures as
// lightweight non-claim events. Writes are best-effort.
type AuditRepository interface {
	Record(ctx context.Context, ev AuditEvent, at time.Time) error
}

type TransferStatus string

const (
	TransferConfirmed TransferStatus = "confirmed"
	TransferFailed    TransferStatus = "failed"
	TransferPending   TransferStatus = "pending"
)

// LedgerClient is the external collaborator that moves real assets.
// SubmitTransfer and ConfirmTransfer are the two explicit phases of the
// call-and-confirm pattern; ConfirmTransfer blocks up to its context
// deadline and reports TransferPending when the outcome is still
// unknown.
type LedgerClient interface {
	PoolBalance(ctx context.Context, poolRef string) (decimal.Decimal, error)
	SubmitTransfer(ctx context.Context, poolRef, destAddr string, amount decimal.Decimal) (transferRef string, err error)
	ConfirmTransfer(ctx context.Context, transferRef string) (TransferStatus, error)
}
