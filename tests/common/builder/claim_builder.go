//go:build unit || e2e

package builder

import (
	"time"

	reqdto "shiba-faucet/internal/handler/dto/request"
	"shiba-faucet/internal/usecase/commands"
	"shiba-faucet/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClaimBuilder struct {
	ID          uuid.UUID
	Wallet      string
	Asset       string
	Amount      string
	TransferRef *string
	Status      string
	CreatedAt   time.Time
}

func NewClaimBuilder() *ClaimBuilder {
	ref := "stub-tx-000001"
	return &ClaimBuilder{
		ID:          uuid.New(),
		Wallet:      "0x00000000000000000000000000000000000000aa",
		Asset:       "SHIB",
		Amount:      "1000",
		TransferRef: &ref,
		Status:      "confirmed",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func (b *ClaimBuilder) WithWallet(wallet string) *ClaimBuilder {
	b.Wallet = wallet
	return b
}

func (b *ClaimBuilder) WithAsset(asset string) *ClaimBuilder {
	b.Asset = asset
	return b
}

func (b *ClaimBuilder) WithStatus(status string) *ClaimBuilder {
	b.Status = status
	return b
}

func (b *ClaimBuilder) BuildCreateRequestDTO() reqdto.CreateClaimRequest {
	return reqdto.CreateClaimRequest{
		Wallet: b.Wallet,
		Asset:  b.Asset,
	}
}

func (b *ClaimBuilder) BuildView() *queries.ClaimView {
	return &queries.ClaimView{
		ID:          b.ID,
		Wallet:      b.Wallet,
		Asset:       b.Asset,
		Amount:      b.Amount,
		TransferRef: b.TransferRef,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ClaimBuilder) BuildSuccessOutcome() *commands.ClaimOutcome {
	var ref string
	if b.TransferRef != nil {
		ref = *b.TransferRef
	}
	return &commands.ClaimOutcome{
		Kind:           commands.OutcomeSuccess,
		ClaimID:        b.ID,
		Amount:         decimal.RequireFromString(b.Amount),
		TransferRef:    ref,
		NextEligibleAt: b.CreatedAt.Add(time.Hour),
	}
}
