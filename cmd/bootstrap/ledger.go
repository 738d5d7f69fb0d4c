package bootstrap

import (
	"log/slog"

	"shiba-faucet/internal/infra/ledger"
	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewLedgerClient,
	),
)

func NewLedgerClient(cfg config.Config) commands.LedgerClient {
	if cfg.Ledger.Driver == "stub" {
		slog.Warn("Using stub ledger client; transfers settle in memory")
		stub := ledger.NewStubClient()
		stub.SetBalance("dev-pool", decimal.RequireFromString("1000000"))
		return stub
	}
	return ledger.NewRPCClient(cfg.Ledger)
}
