// Package inmem is a ledger.Store kept entirely in process memory.
// Write transactions are serialized: Begin blocks until the previous transaction has finished.
package inmem

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/samber/lo"
)

var _ ledger.Store = (*Store)(nil)

type Store struct {
	mu     sync.RWMutex // guards records
	writer chan struct{} // single write transaction token
	closed bool

	records map[ledger.Key][]byte
}

func New() *Store {
	s := &Store{
		writer:  make(chan struct{}, 1),
		records: make(map[ledger.Key][]byte),
	}
	s.writer <- struct{}{}
	return s
}

func (s *Store) Get(_ context.Context, key ledger.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, errors.WithStack(errs.Closed)
	}
	value, ok := s.records[key]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "key %q", key)
	}
	return slices.Clone(value), nil
}

func (s *Store) Scan(_ context.Context, prefix ledger.Key) ([]ledger.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, errors.WithStack(errs.Closed)
	}
	return scan(s.records, nil, prefix), nil
}

// Begin waits for the write token, so at most one transaction is open at a time.
func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	select {
	case <-s.writer:
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "waiting for write transaction")
	}

	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		s.writer <- struct{}{}
		return nil, errors.WithStack(errs.Closed)
	}

	return &tx{
		store:  s,
		writes: make(map[ledger.Key][]byte),
	}, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Len returns the number of committed records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

type tx struct {
	store  *Store
	writes map[ledger.Key][]byte
	done   bool
}

func (t *tx) Get(ctx context.Context, key ledger.Key) ([]byte, error) {
	if t.done {
		return nil, errors.WithStack(errs.Closed)
	}
	if value, ok := t.writes[key]; ok {
		return slices.Clone(value), nil
	}
	return t.store.Get(ctx, key)
}

func (t *tx) Scan(_ context.Context, prefix ledger.Key) ([]ledger.Record, error) {
	if t.done {
		return nil, errors.WithStack(errs.Closed)
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return scan(t.store.records, t.writes, prefix), nil
}

func (t *tx) exists(ctx context.Context, key ledger.Key) (bool, error) {
	_, err := t.Get(ctx, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errs.NotFound):
		return false, nil
	default:
		return false, errors.WithStack(err)
	}
}

func (t *tx) Create(ctx context.Context, key ledger.Key, value []byte) error {
	exists, err := t.exists(ctx, key)
	if err != nil {
		return errors.WithStack(err)
	}
	if exists {
		return errors.Wrapf(errs.DuplicateKey, "key %q", key)
	}
	t.writes[key] = slices.Clone(value)
	return nil
}

func (t *tx) Update(ctx context.Context, key ledger.Key, value []byte) error {
	exists, err := t.exists(ctx, key)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists {
		return errors.Wrapf(errs.NotFound, "key %q", key)
	}
	t.writes[key] = slices.Clone(value)
	return nil
}

func (t *tx) Commit(context.Context) error {
	if t.done {
		return errors.WithStack(errs.Closed)
	}
	t.store.mu.Lock()
	for key, value := range t.writes {
		t.store.records[key] = value
	}
	t.store.mu.Unlock()
	t.release()
	return nil
}

func (t *tx) Rollback(context.Context) error {
	if t.done {
		return nil
	}
	t.release()
	return nil
}

func (t *tx) release() {
	t.done = true
	t.writes = nil
	t.store.writer <- struct{}{}
}

// scan merges committed records with pending writes, which take precedence.
func scan(records, writes map[ledger.Key][]byte, prefix ledger.Key) []ledger.Record {
	merged := make(map[ledger.Key][]byte)
	for _, m := range []map[ledger.Key][]byte{records, writes} {
		for key, value := range m {
			if strings.HasPrefix(string(key), string(prefix)) {
				merged[key] = value
			}
		}
	}
	keys := lo.Keys(merged)
	slices.Sort(keys)
	return lo.Map(keys, func(key ledger.Key, _ int) ledger.Record {
		return ledger.Record{Key: key, Value: slices.Clone(merged[key])}
	})
}
