package datagateway

import (
	"context"

	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/token/internal/entity"
)

type TokenDataGateway interface {
	TokenReaderDataGateway

	// BeginTokenTx returns a new TokenDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginTokenTx(ctx context.Context) (TokenDataGatewayWithTx, error)
}

type TokenDataGatewayWithTx interface {
	TokenReaderDataGateway
	TokenWriterDataGateway
	Tx
}

type TokenReaderDataGateway interface {
	// GetMint returns the state of the given mint. Returns errs.NotFound if the mint is not initialized.
	GetMint(ctx context.Context, mintID types.MintID) (*entity.TokenMintState, error)
	// GetMints returns every initialized mint, ordered by mint id.
	GetMints(ctx context.Context) ([]*entity.TokenMintState, error)
	// GetBalance returns the balance of owner. An account that never received tokens has a zero balance.
	GetBalance(ctx context.Context, mintID types.MintID, owner types.Identity) (uint64, error)
}

type TokenWriterDataGateway interface {
	// CreateMint returns errs.DuplicateKey if the mint is already initialized.
	CreateMint(ctx context.Context, mint *entity.TokenMintState) error
	UpdateMint(ctx context.Context, mint *entity.TokenMintState) error
	// MintTo credits newly issued units to owner.
	MintTo(ctx context.Context, mintID types.MintID, owner types.Identity, amount uint64) error
	// Transfer returns errs.InsufficientFunds if from cannot cover amount.
	Transfer(ctx context.Context, mintID types.MintID, from, to types.Identity, amount uint64) error
}
