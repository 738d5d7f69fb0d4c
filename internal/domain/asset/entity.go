package asset

import (
	"time"

	"shiba-faucet/internal/pkg/errs"
)

var (
	ErrInvalidCooldown = errs.New("cooldown must be positive")
	ErrEmptyName       = errs.New("asset name is empty")
	ErrEmptyPoolRef    = errs.New("asset pool reference is empty")
)

// Asset is a claimable catalog entry. It is immutable during a claim:
// the orchestrator copies the claim amount onto the Claim at creation
// and never re-reads it.
type Asset struct {
	symbol      Symbol
	name        string
	claimAmount Amount
	cooldown    time.Duration
	poolRef     string
	active      bool
}

func NewAsset(symbol Symbol, name string, claimAmount Amount, cooldown time.Duration, poolRef string, active bool) (*Asset, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if cooldown <= 0 {
		return nil, ErrInvalidCooldown
	}
	if poolRef == "" {
		return nil, ErrEmptyPoolRef
	}
	return &Asset{
		symbol:      symbol,
		name:        name,
		claimAmount: claimAmount,
		cooldown:    cooldown,
		poolRef:     poolRef,
		active:      active,
	}, nil
}

func (a *Asset) Symbol() Symbol          { return a.symbol }
func (a *Asset) Name() string            { return a.name }
func (a *Asset) ClaimAmount() Amount     { return a.claimAmount }
func (a *Asset) Cooldown() time.Duration { return a.cooldown }
func (a *Asset) PoolRef() string         { return a.poolRef }
func (a *Asset) Active() bool            { return a.active }
