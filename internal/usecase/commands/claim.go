package commands

import (
	"context"
	"log/slog"
	"time"

	"shiba-faucet/internal/domain/asset"
	"shiba-faucet/internal/domain/claim"
	"shiba-faucet/internal/domain/cooldown"
	"shiba-faucet/internal/domain/wallet"
	"shiba-faucet/internal/pkg/clock"
	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/errs"
	"shiba-faucet/internal/pkg/keylock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrStorageUnavailable        = errs.New("storage unavailable")
	ErrLedgerUnavailable         = errs.New("ledger unavailable")
	ErrCooldownWriteAfterConfirm = errs.New("cooldown write failed after confirmed transfer")
)

type OutcomeKind string

const (
	OutcomeSuccess                 OutcomeKind = "success"
	OutcomeCooldownActive          OutcomeKind = "cooldown_active"
	OutcomeInsufficientPoolBalance OutcomeKind = "insufficient_pool_balance"
	OutcomeUnsupportedAsset        OutcomeKind = "unsupported_asset"
	OutcomeTransferFailed          OutcomeKind = "transfer_failed"
	OutcomeConcurrencyConflict     OutcomeKind = "concurrency_conflict"
)

// ClaimOutcome is the typed, non-exceptional result of one attempt.
// Only Success carries all fields; rejections fill what they know.
type ClaimOutcome struct {
	Kind           OutcomeKind
	ClaimID        uuid.UUID
	Amount         decimal.Decimal
	TransferRef    string
	NextEligibleAt time.Time
	Remaining      time.Duration
}

type ClaimCommands interface {
	AttemptClaim(ctx context.Context, w wallet.Address, sym asset.Symbol) (*ClaimOutcome, error)
}

type claimUseCaseImpl struct {
	assets    AssetRepository
	cooldowns CooldownRepository
	claims    ClaimRepository
	audit     AuditRepository
	ledger    LedgerClient
	locks     *keylock.Registry
	clock     clock.Clock
	cfg       config.FaucetConfig
}

func NewClaimCommands(
	assets AssetRepository,
	cooldowns CooldownRepository,
	claims ClaimRepository,
	audit AuditRepository,
	ledger LedgerClient,
	locks *keylock.Registry,
	clk clock.Clock,
	cfg config.FaucetConfig,
) ClaimCommands {
	return &claimUseCaseImpl{
		assets:    assets,
		cooldowns: cooldowns,
		claims:    claims,
		audit:     audit,
		ledger:    ledger,
		locks:     locks,
		clock:     clk,
		cfg:       cfg,
	}
}

// AttemptClaim runs the whole admission-to-finalization pipeline for one
// (wallet, asset) request. Everything from the cooldown check through
// claim finalization happens under that pair's lock, so two concurrent
// requests can never both observe "eligible" and both dispatch a
// transfer. Asset resolution is deliberately done before the lock: an
// unsupported symbol pays no contention cost.
func (u *claimUseCaseImpl) AttemptClaim(ctx context.Context, w wallet.Address, sym asset.Symbol) (*ClaimOutcome, error) {
	snap, outcome, err := u.resolveAsset(ctx, w, sym)
	if err != nil || outcome != nil {
		return outcome, err
	}

	unlock := u.locks.Lock(w.String() + "/" + sym.String())
	defer unlock()

	if outcome, err := u.checkCooldown(ctx, w, sym, snap); err != nil || outcome != nil {
		return outcome, err
	}

	if outcome, err := u.checkPoolBalance(ctx, w, sym, snap); err != nil || outcome != nil {
		return outcome, err
	}

	return u.dispatchTransfer(ctx, w, sym, snap)
}

func (u *claimUseCaseImpl) resolveAsset(ctx context.Context, w wallet.Address, sym asset.Symbol) (*AssetSnapshot, *ClaimOutcome, error) {
	snap, err := u.assets.FindBySymbol(ctx, sym.String())
	if err != nil {
		if isNotFound(err) {
			u.recordAudit(ctx, w, sym, "unsupported_asset", "unknown symbol")
			return nil, &ClaimOutcome{Kind: OutcomeUnsupportedAsset}, nil
		}
		return nil, nil, errs.Mark(err, ErrStorageUnavailable)
	}
	if !snap.Active {
		u.recordAudit(ctx, w, sym, "unsupported_asset", "asset inactive")
		return nil, &ClaimOutcome{Kind: OutcomeUnsupportedAsset}, nil
	}
	return snap, nil, nil
}

func (u *claimUseCaseImpl) checkCooldown(ctx context.Context, w wallet.Address, sym asset.Symbol, snap *AssetSnapshot) (*ClaimOutcome, error) {
	entry, err := u.cooldowns.Find(ctx, w.String(), sym.String())
	if err != nil && !isNotFound(err) {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	now := u.clock.Now()
	if cooldown.Eligible(entry, snap.Cooldown, now) {
		return nil, nil
	}

	remaining := cooldown.Remaining(entry, snap.Cooldown, now)
	u.recordAudit(ctx, w, sym, "cooldown_rejected", "remaining "+remaining.String())
	return &ClaimOutcome{
		Kind:           OutcomeCooldownActive,
		Remaining:      remaining,
		NextEligibleAt: now.Add(remaining),
	}, nil
}

func (u *claimUseCaseImpl) checkPoolBalance(ctx context.Context, w wallet.Address, sym asset.Symbol, snap *AssetSnapshot) (*ClaimOutcome, error) {
	balance, err := u.ledger.PoolBalance(ctx, snap.PoolRef)
	if err != nil {
		return nil, errs.Mark(err, ErrLedgerUnavailable)
	}
	if balance.LessThan(snap.ClaimAmount) {
		u.recordAudit(ctx, w, sym, "balance_rejected", "pool "+balance.String()+" < "+snap.ClaimAmount.String())
		return &ClaimOutcome{Kind: OutcomeInsufficientPoolBalance}, nil
	}
	return nil, nil
}

// dispatchTransfer creates the pending record, submits the transfer and
// drives the claim to a terminal state. Once the pending record exists
// the attempt must reach a terminal state even if the caller goes away,
// so the record creation, the ledger calls and every finalization write
// run detached from the request context. A client disconnect after
// submission must never strand a funded claim in pending with no
// cooldown recorded.
func (u *claimUseCaseImpl) dispatchTransfer(ctx context.Context, w wallet.Address, sym asset.Symbol, snap *AssetSnapshot) (*ClaimOutcome, error) {
	amount, err := asset.AmountFromDecimal(snap.ClaimAmount)
	if err != nil {
		return nil, errs.Wrap(err, "registry produced an invalid claim amount")
	}

	detached := context.WithoutCancel(ctx)

	c := claim.NewClaim(w, sym, amount, u.clock.Now())
	if err := u.claims.Create(detached, c); err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	transferCtx, cancel := context.WithTimeout(detached, u.cfg.TransferTimeout)
	defer cancel()

	transferRef, err := u.ledger.SubmitTransfer(transferCtx, snap.PoolRef, w.String(), snap.ClaimAmount)
	if err != nil {
		return u.finalizeFailed(detached, c, nil, "submission: "+err.Error())
	}

	status, err := u.ledger.ConfirmTransfer(transferCtx, transferRef)
	if err != nil || status != TransferConfirmed {
		// No confirmation within the bounded wait means failed for this
		// attempt; the reconciler may upgrade it if the transfer lands.
		detail := "unconfirmed within bound"
		if err != nil {
			detail = "confirmation: " + err.Error()
		}
		return u.finalizeFailed(detached, c, &transferRef, detail)
	}

	return u.finalizeConfirmed(detached, c, transferRef, snap)
}

func (u *claimUseCaseImpl) finalizeFailed(ctx context.Context, c *claim.Claim, transferRef *string, detail string) (*ClaimOutcome, error) {
	now := u.clock.Now()
	if err := c.Fail(transferRef, now); err != nil {
		return nil, err
	}
	if err := u.claims.TransitionToFailed(ctx, c.ID(), transferRef, now); err != nil {
		if isConflict(err) {
			return &ClaimOutcome{Kind: OutcomeConcurrencyConflict, ClaimID: c.ID()}, nil
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}
	u.recordAudit(ctx, c.Wallet(), c.Asset(), "transfer_failed", detail)
	return &ClaimOutcome{Kind: OutcomeTransferFailed, ClaimID: c.ID()}, nil
}

func (u *claimUseCaseImpl) finalizeConfirmed(ctx context.Context, c *claim.Claim, transferRef string, snap *AssetSnapshot) (*ClaimOutcome, error) {
	now := u.clock.Now()
	if err := c.Confirm(transferRef, now); err != nil {
		return nil, err
	}
	if err := u.claims.TransitionToConfirmed(ctx, c.ID(), transferRef, now); err != nil {
		if isConflict(err) {
			return &ClaimOutcome{Kind: OutcomeConcurrencyConflict, ClaimID: c.ID()}, nil
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	if err := u.cooldowns.MarkClaimed(ctx, c.Wallet().String(), c.Asset().String(), now); err != nil {
		// The wallet has the funds but the window is not recorded. This
		// is the conservative direction; the reconciliation pass repairs
		// it, and the attempt must not be reported as a success.
		slog.Error("cooldown write failed after confirmed transfer",
			"claim_id", c.ID(), "wallet", c.Wallet().String(), "asset", c.Asset().String(), "error", err)
		return nil, errs.Mark(err, ErrCooldownWriteAfterConfirm)
	}

	return &ClaimOutcome{
		Kind:           OutcomeSuccess,
		ClaimID:        c.ID(),
		Amount:         c.Amount().Decimal(),
		TransferRef:    transferRef,
		NextEligibleAt: cooldown.NextEligibleAt(now, snap.Cooldown),
	}, nil
}

func (u *claimUseCaseImpl) recordAudit(ctx context.Context, w wallet.Address, sym asset.Symbol, kind, detail string) {
	ev := AuditEvent{Wallet: w.String(), Asset: sym.String(), Kind: kind, Detail: detail}
	if err := u.audit.Record(ctx, ev, u.clock.Now()); err != nil {
		slog.Warn("failed to record claim event", "kind", kind, "wallet", ev.Wallet, "asset", ev.Asset, "error", err)
	}
}
