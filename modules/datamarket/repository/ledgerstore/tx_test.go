package ledgerstore

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/internal/store/inmem"
	"github.com/gaze-network/bodydfi-ledger/internal/tokenledger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollback(t *testing.T) {
	store := inmem.New()
	t.Cleanup(func() { _ = store.Close() })
	repo := NewRepository(store, tokenledger.New())

	var buf bytes.Buffer
	ctx := logger.NewContext(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	tx, err := repo.BeginDatamarketTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))
	require.NoError(t, tx.Rollback(ctx), "rollback without an active transaction is a no-op")
	assert.Empty(t, buf.String(), "a successful rollback is not logged")

	// the store's write token was released
	tx, err = repo.BeginDatamarketTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
}
