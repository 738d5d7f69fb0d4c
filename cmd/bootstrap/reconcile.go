package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/usecase/commands"

	"go.uber.org/fx"
)

var ReconcileModule = fx.Module("reconcile",
	fx.Invoke(startReconcileLoop),
)

// startReconcileLoop runs the repair pass on a fixed interval. Set
// FAUCET_RECONCILE_INTERVAL=0 to rely on the admin endpoint only.
func startReconcileLoop(lc fx.Lifecycle, cfg config.Config, reconciler commands.ReconcileCommands) {
	interval := cfg.Faucet.ReconcileInterval
	if interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						report, err := reconciler.ReconcileClaims(ctx)
						if err != nil {
							slog.Error("reconcile pass failed", "error", err)
							continue
						}
						if report.CooldownsRepaired > 0 || report.ClaimsUpgraded > 0 {
							slog.Info("reconcile pass repaired state",
								"scanned", report.Scanned,
								"cooldowns_repaired", report.CooldownsRepaired,
								"claims_upgraded", report.ClaimsUpgraded,
							)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
