package safemath

import (
	"math"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	sum, err := Add(math.MaxUint64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), sum)

	_, err = Add(math.MaxUint64, 1)
	assert.ErrorIs(t, err, errs.ArithmeticOverflow)
}

func TestSub(t *testing.T) {
	diff, err := Sub(10, 10)
	require.NoError(t, err)
	assert.Zero(t, diff)

	_, err = Sub(1, 2)
	assert.ErrorIs(t, err, errs.ArithmeticOverflow)
}

func TestMulDiv(t *testing.T) {
	testcases := []struct {
		name     string
		a, b, c  uint64
		expected uint64
		err      error
	}{
		{"provider_share", 1000, 70, 100, 700, nil},
		{"truncates", 99, 15, 100, 14, nil},
		{"zero", 0, 70, 100, 0, nil},
		{"product_overflows", math.MaxUint64 / 10, 70, 100, 0, errs.ArithmeticOverflow},
		{"division_by_zero", 1, 1, 0, 0, errs.ArithmeticOverflow},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := MulDiv(tc.a, tc.b, tc.c)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestSignedArithmetic(t *testing.T) {
	v, err := SubInt64(1300, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(300), v)

	_, err = SubInt64(math.MinInt64, 1)
	assert.ErrorIs(t, err, errs.ArithmeticOverflow)

	_, err = AddInt64(math.MaxInt64, 1)
	assert.ErrorIs(t, err, errs.ArithmeticOverflow)

	v, err = AddDuration(1000, 259_200)
	require.NoError(t, err)
	assert.Equal(t, int64(260_200), v)

	_, err = AddDuration(1, math.MaxUint64)
	assert.ErrorIs(t, err, errs.ArithmeticOverflow)
}
