// Package storetest holds behaviour checks shared by every ledger.Store backend.
package storetest

import (
	"context"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises the ledger.Store contract against a fresh store returned by newStore.
func Run(t *testing.T, newStore func(t *testing.T) ledger.Store) {
	t.Run("CreateGetCommit", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		key := ledger.DeriveKey(ledger.NamespaceProvider, "alice")

		tx, err := s.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Create(ctx, key, []byte("v1")))

		value, err := tx.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), value)

		_, err = s.Get(ctx, key)
		assert.ErrorIs(t, err, errs.NotFound, "uncommitted write must not be visible outside the transaction")

		require.NoError(t, tx.Commit(ctx))
		require.NoError(t, tx.Rollback(ctx), "rollback after commit is a no-op")

		value, err = s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), value)
	})

	t.Run("RollbackDiscardsWrites", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		key := ledger.DeriveKey(ledger.NamespaceListing, "bob", "1")

		tx, err := s.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Create(ctx, key, []byte("listing")))
		require.NoError(t, tx.Rollback(ctx))

		_, err = s.Get(ctx, key)
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("CreateDuplicate", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		key := ledger.DeriveKey(ledger.NamespaceVote, "1", "carol")

		tx, err := s.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Create(ctx, key, []byte("yes")))
		assert.ErrorIs(t, tx.Create(ctx, key, []byte("no")), errs.DuplicateKey)
		require.NoError(t, tx.Commit(ctx))

		tx, err = s.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()
		assert.ErrorIs(t, tx.Create(ctx, key, []byte("no")), errs.DuplicateKey)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		tx, err := s.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()
		assert.ErrorIs(t, tx.Update(ctx, ledger.DeriveKey(ledger.NamespaceProposal, "9"), []byte("x")), errs.NotFound)
	})

	t.Run("UpdateExisting", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		key := ledger.DeriveKey(ledger.NamespaceCounter, "proposal")

		tx, err := s.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Create(ctx, key, []byte("1")))
		require.NoError(t, tx.Commit(ctx))

		tx, err = s.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Update(ctx, key, []byte("2")))
		require.NoError(t, tx.Commit(ctx))

		value, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), value)
	})

	t.Run("ScanPrefix", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		tx, err := s.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Create(ctx, ledger.DeriveKey(ledger.NamespaceVote, "1", "b"), []byte("b")))
		require.NoError(t, tx.Create(ctx, ledger.DeriveKey(ledger.NamespaceVote, "1", "a"), []byte("a")))
		require.NoError(t, tx.Create(ctx, ledger.DeriveKey(ledger.NamespaceVote, "10", "a"), []byte("other")))
		require.NoError(t, tx.Create(ctx, ledger.DeriveKey(ledger.NamespaceProposal, "1"), []byte("p")))
		require.NoError(t, tx.Commit(ctx))

		records, err := s.Scan(ctx, ledger.Prefix(ledger.NamespaceVote, "1"))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, ledger.DeriveKey(ledger.NamespaceVote, "1", "a"), records[0].Key)
		assert.Equal(t, []byte("a"), records[0].Value)
		assert.Equal(t, ledger.DeriveKey(ledger.NamespaceVote, "1", "b"), records[1].Key)

		records, err = s.Scan(ctx, ledger.Prefix(ledger.NamespaceVote))
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("ScanSeesPendingWrites", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		tx, err := s.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()
		require.NoError(t, tx.Create(ctx, ledger.DeriveKey(ledger.NamespaceGrant, "buyer", "1"), []byte("g")))

		records, err := tx.Scan(ctx, ledger.Prefix(ledger.NamespaceGrant, "buyer"))
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("NextSequence", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		for want := uint64(1); want <= 3; want++ {
			tx, err := s.Begin(ctx)
			require.NoError(t, err)
			got, err := ledger.NextSequence(ctx, tx, "proposal")
			require.NoError(t, err)
			require.NoError(t, tx.Commit(ctx))
			assert.Equal(t, want, got)
		}

		// a rolled back increment is not observed
		tx, err := s.Begin(ctx)
		require.NoError(t, err)
		_, err = ledger.NextSequence(ctx, tx, "proposal")
		require.NoError(t, err)
		require.NoError(t, tx.Rollback(ctx))

		tx, err = s.Begin(ctx)
		require.NoError(t, err)
		got, err := ledger.NextSequence(ctx, tx, "proposal")
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))
		assert.Equal(t, uint64(4), got)
	})
}
