// Package decimals converts between integer token units and human-readable decimal amounts.
package decimals

import (
	"math"
	"math/big"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

const (
	DefaultDivPrecision = 36

	// MaxDecimals is the highest number of decimals a mint may declare.
	MaxDecimals = 19
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

// MustFromString convert string to decimal.Decimal. Panic if error
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// PowerOfTen returns 10^n.
func PowerOfTen[T constraints.Integer](n T) decimal.Decimal {
	return decimal.New(1, int32(n))
}

// FromUnits renders an integer amount of base units as a decimal amount of whole tokens.
func FromUnits[T constraints.Unsigned](units T, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(units)), -int32(decimals))
}

// FromUint128 is like FromUnits for values wider than 64 bits.
func FromUint128(units uint128.Uint128, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(units.Big(), -int32(decimals))
}

// ToUnits parses a decimal amount of whole tokens into base units.
// The amount must be non-negative, fit in uint64 and carry no more fractional digits than decimals.
func ToUnits(amount string, decimals uint8) (uint64, error) {
	if decimals > MaxDecimals {
		return 0, errors.Wrapf(errs.InvalidArgument, "decimals %d exceeds %d", decimals, MaxDecimals)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errors.Wrapf(errs.InvalidArgument, "invalid amount %q", amount)
	}
	if d.IsNegative() {
		return 0, errors.Wrapf(errs.InvalidArgument, "negative amount %q", amount)
	}
	scaled := d.Mul(PowerOfTen(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount %q has more than %d decimals", amount, decimals)
	}
	units := scaled.BigInt()
	if !units.IsUint64() {
		return 0, errors.Wrapf(errs.ArithmeticOverflow, "amount %q exceeds %d units", amount, uint64(math.MaxUint64))
	}
	return units.Uint64(), nil
}
