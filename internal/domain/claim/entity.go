package claim

import (
	"time"

	"shiba-faucet/internal/domain/asset"
	"shiba-faucet/internal/domain/wallet"
	"shiba-faucet/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyTerminal = errs.New("claim already in terminal state")
	ErrMissingTransferRef = errs.New("confirmed claim requires a transfer reference")
)

// Claim is one attempt by a wallet to receive a fixed amount of one
// asset. It is born pending and transitions exactly once, to confirmed
// or failed. The amount is copied from the Asset at creation and never
// changes afterwards, even if the registry is edited later.
type Claim struct {
	id          uuid.UUID
	wallet      wallet.Address
	asset       asset.Symbol
	amount      asset.Amount
	transferRef *string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewClaim(w wallet.Address, sym asset.Symbol, amount asset.Amount, now time.Time) *Claim {
	return &Claim{
		id:        uuid.New(),
		wallet:    w,
		asset:     sym,
		amount:    amount,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}
}

// Confirm moves a pending claim to its confirmed terminal state,
// attaching the ledger's transfer reference.
func (c *Claim) Confirm(transferRef string, now time.Time) error {
	if c.status.Terminal() {
		return ErrAlreadyTerminal
	}
	if transferRef == "" {
		return ErrMissingTransferRef
	}
	c.status = StatusConfirmed
	c.transferRef = &transferRef
	c.updatedAt = now
	return nil
}

// Fail moves a pending claim to its failed terminal state. A transfer
// reference may be recorded when submission went out before the
// failure was observed; the reconciler uses it to detect transfers
// that landed after the bounded wait expired.
func (c *Claim) Fail(transferRef *string, now time.Time) error {
	if c.status.Terminal() {
		return ErrAlreadyTerminal
	}
	c.status = StatusFailed
	c.transferRef = transferRef
	c.updatedAt = now
	return nil
}

func (c *Claim) ID() uuid.UUID          { return c.id }
func (c *Claim) Wallet() wallet.Address { return c.wallet }
func (c *Claim) Asset() asset.Symbol    { return c.asset }
func (c *Claim) Amount() asset.Amount   { return c.amount }
func (c *Claim) TransferRef() *string   { return c.transferRef }
func (c *Claim) Status() Status         { return c.status }
func (c *Claim) CreatedAt() time.Time   { return c.createdAt }
func (c *Claim) UpdatedAt() time.Time   { return c.updatedAt }
