package ledger

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/pkg/safemath"
)

// Counter is a persistent monotonically increasing sequence.
type Counter struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

// NextSequence increments the named counter inside tx and returns the new value.
// A counter that was never used starts at 0, so the first value returned is 1.
func NextSequence(ctx context.Context, tx Tx, name string) (uint64, error) {
	key := DeriveKey(NamespaceCounter, name)

	counter, err := Get[Counter](ctx, tx, key)
	if err != nil && !errors.Is(err, errs.NotFound) {
		return 0, errors.Wrapf(err, "failed to read counter %q", name)
	}
	exists := err == nil
	if !exists {
		counter = &Counter{Name: name}
	}

	next, err := safemath.Add(counter.Value, 1)
	if err != nil {
		return 0, errors.Wrapf(err, "counter %q", name)
	}
	counter.Value = next

	if exists {
		err = Update(ctx, tx, key, counter)
	} else {
		err = Create(ctx, tx, key, counter)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "failed to write counter %q", name)
	}
	return next, nil
}
