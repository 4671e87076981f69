package inmem

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) ledger.Store {
		return New()
	})
}

func TestBeginWaitsForOpenTransaction(t *testing.T) {
	ctx := context.Background()
	s := New()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)

	timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = s.Begin(timeoutCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, tx.Rollback(ctx))

	tx, err = s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))
}

func TestConcurrentCounters(t *testing.T) {
	ctx := context.Background()
	s := New()

	const workers = 16
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := s.Begin(ctx)
			if !assert.NoError(t, err) {
				return
			}
			_, err = ledger.NextSequence(ctx, tx, "proposal")
			assert.NoError(t, err)
			assert.NoError(t, tx.Commit(ctx))
		}()
	}
	wg.Wait()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()
	next, err := ledger.NextSequence(ctx, tx, "proposal")
	require.NoError(t, err)
	assert.Equal(t, uint64(workers+1), next)
}

func TestClosed(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Close())

	_, err := s.Begin(ctx)
	assert.ErrorIs(t, err, errs.Closed)
	_, err = s.Get(ctx, ledger.DeriveKey(ledger.NamespaceProvider, "x"))
	assert.ErrorIs(t, err, errs.Closed)
}
