package ledger

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Get reads and decodes the record under key. Returns errs.NotFound if the key is absent.
func Get[T any](ctx context.Context, r Reader, key Key) (*T, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	v := new(T)
	if err := Unmarshal(raw, v); err != nil {
		return nil, errors.Wrapf(err, "record %q", key)
	}
	return v, nil
}

// Create encodes v and stores it under key. Returns errs.DuplicateKey if the key already exists.
func Create(ctx context.Context, tx Tx, key Key, v any) error {
	raw, err := Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "record %q", key)
	}
	return errors.WithStack(tx.Create(ctx, key, raw))
}

// Update encodes v and replaces the record under key. Returns errs.NotFound if the key is absent.
func Update(ctx context.Context, tx Tx, key Key, v any) error {
	raw, err := Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "record %q", key)
	}
	return errors.WithStack(tx.Update(ctx, key, raw))
}

// List decodes every record under prefix, ordered by key.
func List[T any](ctx context.Context, r Reader, prefix Key) ([]*T, error) {
	records, err := r.Scan(ctx, prefix)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	result := make([]*T, 0, len(records))
	for _, record := range records {
		v := new(T)
		if err := Unmarshal(record.Value, v); err != nil {
			return nil, errors.Wrapf(err, "record %q", record.Key)
		}
		result = append(result, v)
	}
	return result, nil
}
