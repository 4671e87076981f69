package datamarket

import (
	"fmt"
	"math"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateReputation(t *testing.T) {
	testcases := []struct {
		count         uint64
		avg           uint8
		quality       uint8
		expectedAvg   uint8
		expectedScore uint16
		err           error
	}{
		{count: 0, avg: 0, quality: 2, expectedAvg: 2, expectedScore: 100},
		{count: 0, avg: 0, quality: 4, expectedAvg: 4, expectedScore: 120},
		{count: 1, avg: 0, quality: 2, expectedAvg: 1, expectedScore: 92},
		{count: 2, avg: 1, quality: 4, expectedAvg: 2, expectedScore: 104},
		{count: 9, avg: 3, quality: 0, expectedAvg: 2, expectedScore: 118},   // 27/10
		{count: 10, avg: 4, quality: 4, expectedAvg: 4, expectedScore: 140},  // 20 + 120
		{count: 99, avg: 4, quality: 4, expectedAvg: 4, expectedScore: 184},  // 20 + 44 + 120
		{count: 100, avg: 4, quality: 4, expectedAvg: 4, expectedScore: 185}, // 65 + 120
		{count: 1_000_000, avg: 4, quality: 4, expectedAvg: 4, expectedScore: 1000},
		{count: 3, avg: 2, quality: 5, err: errs.InvalidQualityScore},
		{count: math.MaxUint64, avg: 4, quality: 4, err: errs.ArithmeticOverflow},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("count_%d_avg_%d_quality_%d", tc.count, tc.avg, tc.quality), func(t *testing.T) {
			provider := entity.DataProvider{
				UserID:          "user",
				SubmissionCount: tc.count,
				AvgQualityScore: tc.avg,
				ReputationScore: BaseReputationScore,
			}
			updated, err := UpdateReputation(provider, tc.quality)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedAvg, updated.AvgQualityScore)
			assert.Equal(t, tc.expectedScore, updated.ReputationScore)
			assert.Equal(t, tc.count, updated.SubmissionCount, "count is left to the caller")
			assert.Equal(t, BaseReputationScore, provider.ReputationScore, "input must not be modified")
		})
	}
}

func TestUpdateReputationBounds(t *testing.T) {
	for count := uint64(0); count < 2_000; count += 37 {
		for avg := uint8(0); avg <= MaxQualityScore; avg++ {
			for quality := uint8(0); quality <= MaxQualityScore; quality++ {
				updated, err := UpdateReputation(entity.DataProvider{SubmissionCount: count, AvgQualityScore: avg}, quality)
				require.NoError(t, err)
				assert.LessOrEqual(t, updated.AvgQualityScore, MaxQualityScore)
				assert.LessOrEqual(t, updated.ReputationScore, MaxReputationScore)
			}
		}
	}
}
