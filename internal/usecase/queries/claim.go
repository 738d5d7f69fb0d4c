package queries

import (
	"context"
	"time"

	"shiba-faucet/internal/domain/wallet"
	"shiba-faucet/internal/infra"
	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrClaimNotFound = errs.New("claim not found")

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type ClaimView struct {
	ID          uuid.UUID `json:"id"`
	Wallet      string    `json:"wallet"`
	Asset       string    `json:"asset"`
	Amount      string    `json:"amount"`
	TransferRef *string   `json:"transfer_ref,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ClaimReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClaimView, error)
	FindByWallet(ctx context.Context, walletAddr string, limit int32) ([]*ClaimView, error)
}

type ClaimQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ClaimView, error)
	HistoryFor(ctx context.Context, w wallet.Address, limit int) ([]*ClaimView, error)
}

type claimQueriesImpl struct {
	store        ClaimReadStore
	defaultLimit int
}

func NewClaimQueries(store ClaimReadStore, cfg config.FaucetConfig) ClaimQueries {
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &claimQueriesImpl{store: store, defaultLimit: limit}
}

func (q *claimQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClaimView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return view, nil
}

// HistoryFor lists a wallet's claims, most recent first.
func (q *claimQueriesImpl) HistoryFor(ctx context.Context, w wallet.Address, limit int) ([]*ClaimView, error) {
	return q.store.FindByWallet(ctx, w.String(), int32(q.clampLimit(limit)))
}

func (q *claimQueriesImpl) clampLimit(limit int) int {
	if limit <= 0 {
		return q.defaultLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
