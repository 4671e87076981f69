package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/token/internal/entity"
)

func (u *Usecase) GetMint(ctx context.Context, mintID types.MintID) (*entity.TokenMintState, error) {
	mint, err := u.tokenDg.GetMint(ctx, mintID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mint")
	}
	return mint, nil
}

func (u *Usecase) GetMints(ctx context.Context) ([]*entity.TokenMintState, error) {
	mints, err := u.tokenDg.GetMints(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mints")
	}
	return mints, nil
}
