package tokenledger

import (
	"context"
	"math"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/internal/store/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mint  = types.MintID("utility")
	alice = types.Identity("alice")
	bob   = types.Identity("bob")
)

func withTx(t *testing.T, s ledger.Store, fn func(ctx context.Context, tx ledger.Tx) error) error {
	t.Helper()
	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func balance(t *testing.T, s ledger.Store, owner types.Identity) uint64 {
	t.Helper()
	b, err := New().BalanceOf(context.Background(), s, mint, owner)
	require.NoError(t, err)
	return b
}

func TestMintAndTransfer(t *testing.T) {
	s := inmem.New()
	p := New()

	assert.Zero(t, balance(t, s, alice))

	require.NoError(t, withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		if err := p.Mint(ctx, tx, mint, alice, 1_000); err != nil {
			return err
		}
		return p.Mint(ctx, tx, mint, alice, 500)
	}))
	assert.Equal(t, uint64(1_500), balance(t, s, alice))

	require.NoError(t, withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		return p.Transfer(ctx, tx, mint, alice, bob, 600)
	}))
	assert.Equal(t, uint64(900), balance(t, s, alice))
	assert.Equal(t, uint64(600), balance(t, s, bob))

	accounts, err := p.Accounts(context.Background(), s, mint)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, alice, accounts[0].Owner)
	assert.Equal(t, bob, accounts[1].Owner)
}

func TestTransferInsufficientFunds(t *testing.T) {
	s := inmem.New()
	p := New()

	err := withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		return p.Transfer(ctx, tx, mint, alice, bob, 1)
	})
	assert.ErrorIs(t, err, errs.InsufficientFunds)

	require.NoError(t, withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		return p.Mint(ctx, tx, mint, alice, 10)
	}))
	err = withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		return p.Transfer(ctx, tx, mint, alice, bob, 11)
	})
	assert.ErrorIs(t, err, errs.InsufficientFunds)
	assert.Equal(t, uint64(10), balance(t, s, alice))
	assert.Zero(t, balance(t, s, bob))
}

func TestMintOverflow(t *testing.T) {
	s := inmem.New()
	p := New()

	require.NoError(t, withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		return p.Mint(ctx, tx, mint, alice, math.MaxUint64)
	}))
	err := withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		return p.Mint(ctx, tx, mint, alice, 1)
	})
	assert.ErrorIs(t, err, errs.ArithmeticOverflow)
}

func TestTransferToSelfAndZero(t *testing.T) {
	s := inmem.New()
	p := New()

	err := withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		return p.Transfer(ctx, tx, mint, alice, alice, 100)
	})
	assert.ErrorIs(t, err, errs.InsufficientFunds, "self transfer needs a funded account")

	require.NoError(t, withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		if err := p.Mint(ctx, tx, mint, alice, 100); err != nil {
			return err
		}
		if err := p.Transfer(ctx, tx, mint, alice, alice, 100); err != nil {
			return err
		}
		return p.Transfer(ctx, tx, mint, alice, bob, 0)
	}))
	assert.Equal(t, uint64(100), balance(t, s, alice))
	assert.Zero(t, balance(t, s, bob))

	err = withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		return p.Transfer(ctx, tx, mint, alice, alice, 101)
	})
	assert.ErrorIs(t, err, errs.InsufficientFunds)

	err = withTx(t, s, func(ctx context.Context, tx ledger.Tx) error {
		return p.Transfer(ctx, tx, mint, "", bob, 1)
	})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}
