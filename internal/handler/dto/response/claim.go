package response

import (
	"time"

	"shiba-faucet/internal/usecase/commands"
	"shiba-faucet/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimResponse struct {
	ID          uuid.UUID `json:"id"`
	Wallet      string    `json:"wallet"`
	Asset       string    `json:"asset"`
	Amount      string    `json:"amount"`
	TransferRef *string   `json:"transferRef,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ClaimCreatedResponse struct {
	ID             uuid.UUID `json:"id"`
	Wallet         string    `json:"wallet"`
	Asset          string    `json:"asset"`
	Amount         string    `json:"amount"`
	TransferRef    string    `json:"transferRef"`
	NextEligibleAt time.Time `json:"nextEligibleAt"`
}

type CooldownRejectionDetail struct {
	RemainingSeconds int64     `json:"remainingSeconds"`
	NextEligibleAt   time.Time `json:"nextEligibleAt"`
}

func FromClaimView(v *queries.ClaimView) *ClaimResponse {
	return &ClaimResponse{
		ID:          v.ID,
		Wallet:      v.Wallet,
		Asset:       v.Asset,
		Amount:      v.Amount,
		TransferRef: v.TransferRef,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
	}
}

func FromClaimOutcome(wallet, asset string, o *commands.ClaimOutcome) *ClaimCreatedResponse {
	return &ClaimCreatedResponse{
		ID:             o.ClaimID,
		Wallet:         wallet,
		Asset:          asset,
		Amount:         o.Amount.String(),
		TransferRef:    o.TransferRef,
		NextEligibleAt: o.NextEligibleAt,
	}
}
