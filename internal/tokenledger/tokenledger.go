// Package tokenledger keeps per-owner token balances as ledger records.
package tokenledger

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/pkg/safemath"
)

// Account is the balance of one owner for one mint.
type Account struct {
	Mint    types.MintID   `json:"mint"`
	Owner   types.Identity `json:"owner"`
	Balance uint64         `json:"balance"`
}

func AccountKey(mint types.MintID, owner types.Identity) ledger.Key {
	return ledger.DeriveKey(ledger.NamespaceTokenAccount, mint.String(), owner.String())
}

var _ ledger.TokenProgram = (*Program)(nil)

type Program struct{}

func New() *Program {
	return &Program{}
}

func (p *Program) BalanceOf(ctx context.Context, r ledger.Reader, mint types.MintID, owner types.Identity) (uint64, error) {
	account, err := ledger.Get[Account](ctx, r, AccountKey(mint, owner))
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to get token account")
	}
	return account.Balance, nil
}

// Accounts returns every account of mint, ordered by owner.
func (p *Program) Accounts(ctx context.Context, r ledger.Reader, mint types.MintID) ([]*Account, error) {
	accounts, err := ledger.List[Account](ctx, r, ledger.Prefix(ledger.NamespaceTokenAccount, mint.String()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list token accounts")
	}
	return accounts, nil
}

func (p *Program) Transfer(ctx context.Context, tx ledger.Tx, mint types.MintID, from, to types.Identity, amount uint64) error {
	if from.IsZero() || to.IsZero() {
		return errors.Wrap(errs.InvalidArgument, "transfer requires both accounts")
	}
	if amount == 0 {
		return nil
	}

	source, exists, err := p.account(ctx, tx, mint, from)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists || source.Balance < amount {
		return errors.Wrapf(errs.InsufficientFunds, "balance %d, required %d", source.Balance, amount)
	}
	// a funded transfer to the same account changes nothing
	if from == to {
		return nil
	}
	source.Balance -= amount

	destination, destinationExists, err := p.account(ctx, tx, mint, to)
	if err != nil {
		return errors.WithStack(err)
	}
	if destination.Balance, err = safemath.Add(destination.Balance, amount); err != nil {
		return errors.Wrap(err, "destination balance")
	}

	if err := ledger.Update(ctx, tx, AccountKey(mint, from), source); err != nil {
		return errors.Wrap(err, "failed to debit source account")
	}
	if err := p.save(ctx, tx, destination, destinationExists); err != nil {
		return errors.Wrap(err, "failed to credit destination account")
	}
	return nil
}

func (p *Program) Mint(ctx context.Context, tx ledger.Tx, mint types.MintID, to types.Identity, amount uint64) error {
	if to.IsZero() {
		return errors.Wrap(errs.InvalidArgument, "mint requires a destination account")
	}
	destination, exists, err := p.account(ctx, tx, mint, to)
	if err != nil {
		return errors.WithStack(err)
	}
	if destination.Balance, err = safemath.Add(destination.Balance, amount); err != nil {
		return errors.Wrap(err, "destination balance")
	}
	if err := p.save(ctx, tx, destination, exists); err != nil {
		return errors.Wrap(err, "failed to credit destination account")
	}
	return nil
}

func (p *Program) account(ctx context.Context, r ledger.Reader, mint types.MintID, owner types.Identity) (*Account, bool, error) {
	account, err := ledger.Get[Account](ctx, r, AccountKey(mint, owner))
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return &Account{Mint: mint, Owner: owner}, false, nil
		}
		return nil, false, errors.Wrap(err, "failed to get token account")
	}
	return account, true, nil
}

func (p *Program) save(ctx context.Context, tx ledger.Tx, account *Account, exists bool) error {
	key := AccountKey(account.Mint, account.Owner)
	if exists {
		return errors.WithStack(ledger.Update(ctx, tx, key, account))
	}
	return errors.WithStack(ledger.Create(ctx, tx, key, account))
}
