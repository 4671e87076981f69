package ledger

import (
	"context"

	"github.com/gaze-network/bodydfi-ledger/core/types"
)

// TokenProgram moves and issues token units. Writes go through the caller's transaction
// so they commit or roll back together with the operation that caused them.
type TokenProgram interface {
	// BalanceOf returns the balance of owner for mint. An account that was never credited has a zero balance.
	BalanceOf(ctx context.Context, r Reader, mint types.MintID, owner types.Identity) (uint64, error)

	// Transfer moves amount from one account to another. Returns errs.InsufficientFunds if from cannot cover it.
	Transfer(ctx context.Context, tx Tx, mint types.MintID, from, to types.Identity, amount uint64) error

	// Mint credits amount of newly issued units to the account of to.
	Mint(ctx context.Context, tx Tx, mint types.MintID, to types.Identity, amount uint64) error
}
