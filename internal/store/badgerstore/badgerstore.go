// Package badgerstore is a ledger.Store backed by an embedded Badger database.
package badgerstore

import (
	"context"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
)

type Config struct {
	Path       string `mapstructure:"path"`
	SyncWrites bool   `mapstructure:"sync_writes"`
}

var _ ledger.Store = (*Store)(nil)

type Store struct {
	db     *badger.DB
	closed atomic.Bool
}

func New(ctx context.Context, conf Config) (*Store, error) {
	if conf.Path == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "badger path is required")
	}
	opts := badger.DefaultOptions(conf.Path).
		WithSyncWrites(conf.SyncWrites).
		WithTruncate(true).
		WithLogger(newLogger(ctx))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open badger database at %q", conf.Path)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(_ context.Context, key ledger.Key) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		v, err := get(txn, key)
		value = v
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return value, nil
}

func (s *Store) Scan(_ context.Context, prefix ledger.Key) ([]ledger.Record, error) {
	var records []ledger.Record
	err := s.db.View(func(txn *badger.Txn) error {
		r, err := scan(txn, prefix)
		records = r
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}

func (s *Store) Begin(context.Context) (ledger.Tx, error) {
	if s.closed.Load() {
		return nil, errors.WithStack(errs.Closed)
	}
	return &tx{txn: s.db.NewTransaction(true)}, nil
}

func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return errors.WithStack(s.db.Close())
}

type tx struct {
	txn  *badger.Txn
	done bool
}

func (t *tx) Get(_ context.Context, key ledger.Key) ([]byte, error) {
	if t.done {
		return nil, errors.WithStack(errs.Closed)
	}
	return get(t.txn, key)
}

func (t *tx) Scan(_ context.Context, prefix ledger.Key) ([]ledger.Record, error) {
	if t.done {
		return nil, errors.WithStack(errs.Closed)
	}
	return scan(t.txn, prefix)
}

func (t *tx) Create(ctx context.Context, key ledger.Key, value []byte) error {
	_, err := t.Get(ctx, key)
	switch {
	case err == nil:
		return errors.Wrapf(errs.DuplicateKey, "key %q", key)
	case !errors.Is(err, errs.NotFound):
		return errors.WithStack(err)
	}
	return errors.Wrapf(t.txn.Set(key.Bytes(), value), "failed to set key %q", key)
}

func (t *tx) Update(ctx context.Context, key ledger.Key, value []byte) error {
	if _, err := t.Get(ctx, key); err != nil {
		return errors.WithStack(err)
	}
	return errors.Wrapf(t.txn.Set(key.Bytes(), value), "failed to set key %q", key)
}

func (t *tx) Commit(context.Context) error {
	if t.done {
		return errors.WithStack(errs.Closed)
	}
	t.done = true
	if err := t.txn.Commit(); err != nil {
		if errors.Is(err, badger.ErrConflict) {
			return errors.Wrap(errs.Conflict, err.Error())
		}
		return errors.Wrap(err, "failed to commit badger transaction")
	}
	return nil
}

func (t *tx) Rollback(context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.txn.Discard()
	return nil
}

func get(txn *badger.Txn, key ledger.Key) ([]byte, error) {
	item, err := txn.Get(key.Bytes())
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, errors.Wrapf(errs.NotFound, "key %q", key)
		}
		return nil, errors.Wrapf(err, "failed to get key %q", key)
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read value of key %q", key)
	}
	return value, nil
}

func scan(txn *badger.Txn, prefix ledger.Key) ([]ledger.Record, error) {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	var records []ledger.Record
	p := prefix.Bytes()
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		item := it.Item()
		value, err := item.ValueCopy(nil)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read value of key %q", item.Key())
		}
		records = append(records, ledger.Record{
			Key:   ledger.Key(item.KeyCopy(nil)),
			Value: value,
		})
	}
	return records, nil
}
