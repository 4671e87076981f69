package ledger

import "context"

// Record is a raw key/value pair as held by a Store.
type Record struct {
	Key   Key
	Value []byte
}

type Reader interface {
	// Get returns the value stored under key. Returns errs.NotFound if the key is absent.
	Get(ctx context.Context, key Key) ([]byte, error)

	// Scan returns every record whose key starts with prefix, ordered by key.
	Scan(ctx context.Context, prefix Key) ([]Record, error)
}

// Tx is an atomic unit of work. Either every write made through it is committed, or none is.
type Tx interface {
	Reader

	// Create stores value under key. Returns errs.DuplicateKey if the key already exists.
	Create(ctx context.Context, key Key, value []byte) error

	// Update replaces the value under key. Returns errs.NotFound if the key is absent.
	Update(ctx context.Context, key Key, value []byte) error

	// Commit makes the writes visible. Returns errs.Conflict if a concurrent transaction won the race.
	Commit(ctx context.Context) error

	// Rollback discards the writes. It is safe to call Rollback after Commit, in which case it does nothing.
	Rollback(ctx context.Context) error
}

// Store is the keyed record store every operation reads and writes through.
type Store interface {
	Reader

	// Begin starts a read-write transaction.
	Begin(ctx context.Context) (Tx, error)

	Close() error
}
