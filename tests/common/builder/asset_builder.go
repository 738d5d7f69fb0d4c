//go:build unit || e2e

package builder

import (
	"time"

	reqdto "shiba-faucet/internal/handler/dto/request"
	"shiba-faucet/internal/usecase/commands"
	"shiba-faucet/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type AssetBuilder struct {
	Symbol          string
	Name            string
	ClaimAmount     string
	CooldownSeconds int64
	PoolRef         string
	Active          bool
}

func NewAssetBuilder() *AssetBuilder {
	return &AssetBuilder{
		Symbol:          "SHIB",
		Name:            "Shiba Inu",
		ClaimAmount:     "1000",
		CooldownSeconds: 86400,
		PoolRef:         "pool-shib",
		Active:          true,
	}
}

func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.Symbol = symbol
	return b
}

func (b *AssetBuilder) WithCooldown(seconds int64) *AssetBuilder {
	b.CooldownSeconds = seconds
	return b
}

func (b *AssetBuilder) WithClaimAmount(amount string) *AssetBuilder {
	b.ClaimAmount = amount
	return b
}

func (b *AssetBuilder) BuildUpsertRequestDTO() reqdto.UpsertAssetRequest {
	active := b.Active
	return reqdto.UpsertAssetRequest{
		Symbol:          b.Symbol,
		Name:            b.Name,
		ClaimAmount:     b.ClaimAmount,
		CooldownSeconds: b.CooldownSeconds,
		PoolRef:         b.PoolRef,
		Active:          &active,
	}
}

func (b *AssetBuilder) BuildSnapshot() *commands.AssetSnapshot {
	return &commands.AssetSnapshot{
		Symbol:      b.Symbol,
		Name:        b.Name,
		ClaimAmount: decimal.RequireFromString(b.ClaimAmount),
		Cooldown:    time.Duration(b.CooldownSeconds) * time.Second,
		PoolRef:     b.PoolRef,
		Active:      b.Active,
	}
}

func (b *AssetBuilder) BuildView() *queries.AssetView {
	return &queries.AssetView{
		Symbol:          b.Symbol,
		Name:            b.Name,
		ClaimAmount:     b.ClaimAmount,
		CooldownSeconds: b.CooldownSeconds,
		Active:          b.Active,
	}
}
