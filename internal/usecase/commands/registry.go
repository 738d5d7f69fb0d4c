package commands

import (
	"context"
	"time"

	"shiba-faucet/internal/domain/asset"
	"shiba-faucet/internal/pkg/errs"
)

var ErrAssetNotFound = errs.New("asset not found")

type UpsertAssetRequest struct {
	Symbol          string
	Name            string
	ClaimAmount     string
	CooldownSeconds int64
	PoolRef         string
	Active          bool
}

// AssetCommands covers the occasional administrative writes to the
// registry; they share none of the claim path's locking because the
// orchestrator re-reads the registry on every attempt.
type AssetCommands interface {
	UpsertAsset(ctx context.Context, req UpsertAssetRequest) error
	DeactivateAsset(ctx context.Context, symbol string) error
}

type assetUseCaseImpl struct {
	assets AssetRepository
}

func NewAssetCommands(assets AssetRepository) AssetCommands {
	return &assetUseCaseImpl{assets: assets}
}

func (u *assetUseCaseImpl) UpsertAsset(ctx context.Context, req UpsertAssetRequest) error {
	symbol, err := asset.NewSymbol(req.Symbol)
	if err != nil {
		return err
	}
	amount, err := asset.NewAmount(req.ClaimAmount)
	if err != nil {
		return err
	}

	entity, err := asset.NewAsset(
		symbol,
		req.Name,
		amount,
		time.Duration(req.CooldownSeconds)*time.Second,
		req.PoolRef,
		req.Active,
	)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	snap := AssetSnapshot{
		Symbol:      entity.Symbol().String(),
		Name:        entity.Name(),
		ClaimAmount: entity.ClaimAmount().Decimal(),
		Cooldown:    entity.Cooldown(),
		PoolRef:     entity.PoolRef(),
		Active:      entity.Active(),
	}
	if err := u.assets.Upsert(ctx, snap); err != nil {
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return nil
}

func (u *assetUseCaseImpl) DeactivateAsset(ctx context.Context, symbol string) error {
	sym, err := asset.NewSymbol(symbol)
	if err != nil {
		return err
	}
	if err := u.assets.SetActive(ctx, sym.String(), false); err != nil {
		if isNotFound(err) {
			return ErrAssetNotFound
		}
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return nil
}
