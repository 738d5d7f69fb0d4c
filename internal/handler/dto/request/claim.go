package request

import (
	"shiba-faucet/internal/domain/asset"
	"shiba-faucet/internal/domain/wallet"
)

type CreateClaimRequest struct {
	Wallet string `json:"wallet" binding:"required"`
	Asset  string `json:"asset" binding:"required"`
}

func (r CreateClaimRequest) ToDomain() (wallet.Address, asset.Symbol, error) {
	addr, err := wallet.NewAddress(r.Wallet)
	if err != nil {
		return wallet.Address{}, asset.Symbol{}, err
	}
	sym, err := asset.NewSymbol(r.Asset)
	if err != nil {
		return wallet.Address{}, asset.Symbol{}, err
	}
	return addr, sym, nil
}
