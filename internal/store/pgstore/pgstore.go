// Package pgstore is a ledger.Store backed by a PostgreSQL table.
// Transactions run at SERIALIZABLE isolation, so a lost race surfaces as errs.Conflict.
package pgstore

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/internal/postgres"
	"github.com/jackc/pgx/v5"
)

const (
	getQuery    = `SELECT "value" FROM "ledger_records" WHERE "key" = $1`
	scanQuery   = `SELECT "key", "value" FROM "ledger_records" WHERE starts_with("key", $1) ORDER BY "key"`
	createQuery = `INSERT INTO "ledger_records" ("key", "namespace", "value") VALUES ($1, $2, $3) ON CONFLICT ("key") DO NOTHING`
	updateQuery = `UPDATE "ledger_records" SET "value" = $2, "updated_at" = NOW() WHERE "key" = $1`
)

var _ ledger.Store = (*Store)(nil)

type Store struct {
	db postgres.TxQueryable
}

func New(db postgres.TxQueryable) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key ledger.Key) ([]byte, error) {
	return get(ctx, s.db, key)
}

func (s *Store) Scan(ctx context.Context, prefix ledger.Key) ([]ledger.Record, error) {
	return scan(ctx, s.db, prefix)
}

func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	pgTx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	return &tx{tx: pgTx}, nil
}

// Close is a no-op. The connection pool is owned and closed by the caller.
func (s *Store) Close() error {
	return nil
}

type tx struct {
	tx pgx.Tx
}

func (t *tx) Get(ctx context.Context, key ledger.Key) ([]byte, error) {
	return get(ctx, t.tx, key)
}

func (t *tx) Scan(ctx context.Context, prefix ledger.Key) ([]ledger.Record, error) {
	return scan(ctx, t.tx, prefix)
}

func (t *tx) Create(ctx context.Context, key ledger.Key, value []byte) error {
	tag, err := t.tx.Exec(ctx, createQuery, key.String(), string(key.Namespace()), value)
	if err != nil {
		return mapError(err, "failed to create key %q", key)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.DuplicateKey, "key %q", key)
	}
	return nil
}

func (t *tx) Update(ctx context.Context, key ledger.Key, value []byte) error {
	tag, err := t.tx.Exec(ctx, updateQuery, key.String(), value)
	if err != nil {
		return mapError(err, "failed to update key %q", key)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.NotFound, "key %q", key)
	}
	return nil
}

func (t *tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return mapError(err, "failed to commit transaction")
	}
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return errors.Wrap(err, "failed to rollback transaction")
	}
	return nil
}

func get(ctx context.Context, db postgres.Queryable, key ledger.Key) ([]byte, error) {
	var value []byte
	if err := db.QueryRow(ctx, getQuery, key.String()).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "key %q", key)
		}
		return nil, mapError(err, "failed to get key %q", key)
	}
	return value, nil
}

func scan(ctx context.Context, db postgres.Queryable, prefix ledger.Key) ([]ledger.Record, error) {
	rows, err := db.Query(ctx, scanQuery, prefix.String())
	if err != nil {
		return nil, mapError(err, "failed to scan prefix %q", prefix)
	}
	defer rows.Close()

	var records []ledger.Record
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		records = append(records, ledger.Record{Key: ledger.Key(key), Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "failed to scan prefix %q", prefix)
	}
	return records, nil
}

func mapError(err error, format string, args ...any) error {
	if postgres.IsRetryable(err) {
		return errors.Wrapf(errs.Conflict, format+": %v", append(args, err)...)
	}
	return errors.Wrapf(err, format, args...)
}
