// Package safemath provides overflow-checked integer arithmetic.
// Every function reports overflow as errs.ArithmeticOverflow instead of wrapping.
package safemath

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/uint128"
)

// Add returns a + b.
func Add(a, b uint64) (uint64, error) {
	sum, overflow := uint128.From64(a).AddOverflow(uint128.From64(b))
	if overflow || sum.Hi != 0 {
		return 0, errors.Wrapf(errs.ArithmeticOverflow, "%d + %d", a, b)
	}
	return sum.Lo, nil
}

// Sub returns a - b.
func Sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errors.Wrapf(errs.ArithmeticOverflow, "%d - %d", a, b)
	}
	return a - b, nil
}

// Mul returns a * b.
func Mul(a, b uint64) (uint64, error) {
	product, overflow := uint128.From64(a).MulOverflow(uint128.From64(b))
	if overflow || product.Hi != 0 {
		return 0, errors.Wrapf(errs.ArithmeticOverflow, "%d * %d", a, b)
	}
	return product.Lo, nil
}

// MulDiv returns a * b / c with truncation. The intermediate product must fit in 64 bits,
// so the result matches a checked multiply followed by a checked divide.
func MulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, errors.Wrap(errs.ArithmeticOverflow, "division by zero")
	}
	product, err := Mul(a, b)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return product / c, nil
}

// AddInt64 returns a + b for signed values such as unix timestamps.
func AddInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errors.Wrapf(errs.ArithmeticOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}

// SubInt64 returns a - b for signed values such as unix timestamps.
func SubInt64(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, errors.Wrapf(errs.ArithmeticOverflow, "%d - %d", a, b)
	}
	return a - b, nil
}

// AddDuration returns ts + d where d is an unsigned number of seconds.
func AddDuration(ts int64, d uint64) (int64, error) {
	if d > math.MaxInt64 {
		return 0, errors.Wrapf(errs.ArithmeticOverflow, "duration %d", d)
	}
	return AddInt64(ts, int64(d))
}
