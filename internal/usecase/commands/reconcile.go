package commands

import (
	"context"
	"log/slog"
	"sync/atomic"

	"shiba-faucet/internal/pkg/clock"
	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const reconcileConcurrency = 4

// ReconcileReport summarizes one reconciliation pass.
type ReconcileReport struct {
	CooldownsRepaired int64
	ClaimsUpgraded    int64
	Scanned           int64
}

type ReconcileCommands interface {
	ReconcileClaims(ctx context.Context) (*ReconcileReport, error)
}

// reconcilerImpl closes the two eventual-consistency gaps the
// orchestrator deliberately leaves open: confirmed claims whose
// cooldown write was lost, and failed claims whose submitted transfer
// landed after the bounded wait. Both repairs are idempotent, so
// overlapping passes are harmless.
type reconcilerImpl struct {
	claims    ClaimRepository
	cooldowns CooldownRepository
	ledger    LedgerClient
	clock     clock.Clock
	cfg       config.FaucetConfig
}

func NewReconcileCommands(
	claims ClaimRepository,
	cooldowns CooldownRepository,
	ledger LedgerClient,
	clk clock.Clock,
	cfg config.FaucetConfig,
) ReconcileCommands {
	return &reconcilerImpl{
		claims:    claims,
		cooldowns: cooldowns,
		ledger:    ledger,
		clock:     clk,
		cfg:       cfg,
	}
}

func (r *reconcilerImpl) ReconcileClaims(ctx context.Context) (*ReconcileReport, error) {
	report := &ReconcileReport{}

	if err := r.repairCooldowns(ctx, report); err != nil {
		return report, err
	}
	if err := r.upgradeStraySuccesses(ctx, report); err != nil {
		return report, err
	}
	return report, nil
}

// repairCooldowns finds confirmed claims with no matching-or-newer
// cooldown entry and writes the missing timestamp, using the claim's
// own creation time so a repair never shortens a legitimate window.
func (r *reconcilerImpl) repairCooldowns(ctx context.Context, report *ReconcileReport) error {
	rows, err := r.claims.FindConfirmedMissingCooldown(ctx, int32(r.cfg.ReconcileBatch))
	if err != nil {
		return errs.Mark(err, ErrStorageUnavailable)
	}

	for _, row := range rows {
		atomic.AddInt64(&report.Scanned, 1)
		if err := r.cooldowns.MarkClaimed(ctx, row.Wallet, row.Asset, row.CreatedAt); err != nil {
			slog.Warn("cooldown repair failed", "claim_id", row.ID, "error", err)
			continue
		}
		atomic.AddInt64(&report.CooldownsRepaired, 1)
		slog.Info("repaired cooldown for confirmed claim", "claim_id", row.ID, "wallet", row.Wallet, "asset", row.Asset)
	}
	return nil
}

// upgradeStraySuccesses re-checks failed claims that carry a transfer
// reference; a confirmation that arrived after the orchestrator's
// bounded wait upgrades the claim and advances the cooldown, keeping
// the cooldown-iff-confirmed invariant intact.
func (r *reconcilerImpl) upgradeStraySuccesses(ctx context.Context, report *ReconcileReport) error {
	rows, err := r.claims.FindFailedWithTransferRef(ctx, int32(r.cfg.ReconcileBatch))
	if err != nil {
		return errs.Mark(err, ErrStorageUnavailable)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reconcileConcurrency)

	for _, row := range rows {
		atomic.AddInt64(&report.Scanned, 1)
		g.Go(func() error {
			status, err := r.ledger.ConfirmTransfer(gctx, *row.TransferRef)
			if err != nil {
				slog.Warn("reconcile confirmation check failed", "claim_id", row.ID, "transfer_ref", *row.TransferRef, "error", err)
				return nil
			}
			if status != TransferConfirmed {
				return nil
			}

			now := r.clock.Now()
			if err := r.claims.UpgradeFailedToConfirmed(gctx, row.ID, *row.TransferRef, now); err != nil {
				if isConflict(err) {
					// Another pass got here first.
					return nil
				}
				return errs.Mark(err, ErrStorageUnavailable)
			}
			if err := r.cooldowns.MarkClaimed(gctx, row.Wallet, row.Asset, row.CreatedAt); err != nil {
				slog.Warn("cooldown write failed after claim upgrade", "claim_id", row.ID, "error", err)
			}
			atomic.AddInt64(&report.ClaimsUpgraded, 1)
			slog.Info("upgraded failed claim with landed transfer", "claim_id", row.ID, "transfer_ref", *row.TransferRef)
			return nil
		})
	}

	return g.Wait()
}
