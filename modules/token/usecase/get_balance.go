package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/token/internal/entity"
)

type Balance struct {
	Mint    *entity.TokenMintState
	Owner   types.Identity
	Balance uint64
}

// GetBalance returns the balance of owner together with the mint it is denominated in.
func (u *Usecase) GetBalance(ctx context.Context, mintID types.MintID, owner types.Identity) (*Balance, error) {
	mint, err := u.tokenDg.GetMint(ctx, mintID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mint")
	}
	balance, err := u.tokenDg.GetBalance(ctx, mintID, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}
	return &Balance{
		Mint:    mint,
		Owner:   owner,
		Balance: balance,
	}, nil
}
