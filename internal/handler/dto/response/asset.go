package response

import (
	"time"

	"shiba-faucet/internal/usecase/commands"
	"shiba-faucet/internal/usecase/queries"
)

type AssetResponse struct {
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	ClaimAmount     string `json:"claimAmount"`
	CooldownSeconds int64  `json:"cooldownSeconds"`
}

type CooldownStatusResponse struct {
	Asset            string    `json:"asset"`
	Eligible         bool      `json:"eligible"`
	RemainingSeconds int64     `json:"remainingSeconds"`
	NextEligibleAt   time.Time `json:"nextEligibleAt"`
}

type ReconcileResponse struct {
	Scanned           int64 `json:"scanned"`
	CooldownsRepaired int64 `json:"cooldownsRepaired"`
	ClaimsUpgraded    int64 `json:"claimsUpgraded"`
}

func FromAssetView(v *queries.AssetView) *AssetResponse {
	return &AssetResponse{
		Symbol:          v.Symbol,
		Name:            v.Name,
		ClaimAmount:     v.ClaimAmount,
		CooldownSeconds: v.CooldownSeconds,
	}
}

func FromCooldownStatusView(v *queries.CooldownStatusView) *CooldownStatusResponse {
	return &CooldownStatusResponse{
		Asset:            v.Asset,
		Eligible:         v.Eligible,
		RemainingSeconds: v.RemainingSeconds,
		NextEligibleAt:   v.NextEligibleAt,
	}
}

func FromReconcileReport(r *commands.ReconcileReport) *ReconcileResponse {
	return &ReconcileResponse{
		Scanned:           r.Scanned,
		CooldownsRepaired: r.CooldownsRepaired,
		ClaimsUpgraded:    r.ClaimsUpgraded,
	}
}
