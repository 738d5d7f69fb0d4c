package queries

import (
	"context"
	"time"

	"shiba-faucet/internal/domain/cooldown"
	"shiba-faucet/internal/domain/wallet"
	"shiba-faucet/internal/pkg/clock"
)

type AssetView struct {
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	ClaimAmount     string `json:"claim_amount"`
	CooldownSeconds int64  `json:"cooldown_seconds"`
	Active          bool   `json:"active"`
}

type CooldownStatusView struct {
	Asset            string    `json:"asset"`
	Eligible         bool      `json:"eligible"`
	RemainingSeconds int64     `json:"remaining_seconds"`
	NextEligibleAt   time.Time `json:"next_eligible_at"`
}

type AssetReadStore interface {
	// ListActive returns active assets ordered by symbol ascending.
	ListActive(ctx context.Context) ([]*AssetView, error)
}

type CooldownReadStore interface {
	EntriesForWallet(ctx context.Context, walletAddr string) ([]*cooldown.Entry, error)
}

type AssetQueries interface {
	ListActive(ctx context.Context) ([]*AssetView, error)
	WalletCooldowns(ctx context.Context, w wallet.Address) ([]*CooldownStatusView, error)
}

type assetQueriesImpl struct {
	assets    AssetReadStore
	cooldowns CooldownReadStore
	clock     clock.Clock
}

func NewAssetQueries(assets AssetReadStore, cooldowns CooldownReadStore, clk clock.Clock) AssetQueries {
	return &assetQueriesImpl{assets: assets, cooldowns: cooldowns, clock: clk}
}

func (q *assetQueriesImpl) ListActive(ctx context.Context) ([]*AssetView, error) {
	return q.assets.ListActive(ctx)
}

// WalletCooldowns reports, per active asset, how long the wallet has to
// wait. Assets the wallet never claimed are eligible immediately.
func (q *assetQueriesImpl) WalletCooldowns(ctx context.Context, w wallet.Address) ([]*CooldownStatusView, error) {
	assets, err := q.assets.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := q.cooldowns.EntriesForWallet(ctx, w.String())
	if err != nil {
		return nil, err
	}

	byAsset := make(map[string]*cooldown.Entry, len(entries))
	for _, e := range entries {
		byAsset[e.Asset] = e
	}

	now := q.clock.Now()
	views := make([]*CooldownStatusView, 0, len(assets))
	for _, a := range assets {
		window := time.Duration(a.CooldownSeconds) * time.Second
		entry := byAsset[a.Symbol]
		remaining := cooldown.Remaining(entry, window, now)
		views = append(views, &CooldownStatusView{
			Asset:            a.Symbol,
			Eligible:         cooldown.Eligible(entry, window, now),
			RemainingSeconds: int64(remaining / time.Second),
			NextEligibleAt:   now.Add(remaining),
		})
	}
	return views, nil
}
