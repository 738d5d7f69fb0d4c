package request

import (
	"shiba-faucet/internal/usecase/commands"
)

type UpsertAssetRequest struct {
	Symbol          string `json:"symbol" binding:"required"`
	Name            string `json:"name" binding:"required"`
	ClaimAmount     string `json:"claim_amount" binding:"required"`
	CooldownSeconds int64  `json:"cooldown_seconds" binding:"required,gt=0"`
	PoolRef         string `json:"pool_ref" binding:"required"`
	Active          *bool  `json:"active,omitempty"`
}

func (r UpsertAssetRequest) ToCommand() commands.UpsertAssetRequest {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return commands.UpsertAssetRequest{
		Symbol:          r.Symbol,
		Name:            r.Name,
		ClaimAmount:     r.ClaimAmount,
		CooldownSeconds: r.CooldownSeconds,
		PoolRef:         r.PoolRef,
		Active:          active,
	}
}
