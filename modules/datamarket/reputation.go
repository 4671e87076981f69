package datamarket

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/safemath"
)

// UpdateReputation folds quality into the provider's average quality and recomputes its reputation.
// The average is weighted by the provider's current submission count, so callers must increment
// the count before or after the call as their flow requires. The given state is not modified.
func UpdateReputation(provider entity.DataProvider, quality uint8) (*entity.DataProvider, error) {
	if quality > MaxQualityScore {
		return nil, errors.Wrapf(errs.InvalidQualityScore, "quality score %d", quality)
	}

	count := provider.SubmissionCount
	avg := uint64(quality)
	if count > 0 {
		weighted, err := safemath.Mul(uint64(provider.AvgQualityScore), count)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if weighted, err = safemath.Add(weighted, uint64(quality)); err != nil {
			return nil, errors.WithStack(err)
		}
		divisor, err := safemath.Add(count, 1)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		avg = weighted / divisor
	}

	reputation, err := safemath.Add(consistencyFactor(count), qualityFactor(avg))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	provider.AvgQualityScore = uint8(avg)
	provider.ReputationScore = uint16(min(reputation, uint64(MaxReputationScore)))
	return &provider, nil
}

// consistencyFactor rewards early submissions the most and flattens as the count grows.
func consistencyFactor(count uint64) uint64 {
	switch {
	case count < 10:
		return count * 2
	case count < 100:
		return 20 + (count-10)/2
	default:
		return 65 + (count-100)/10
	}
}

// qualityFactor maps an average quality of 0-4 onto 80-120 points.
func qualityFactor(avg uint64) uint64 {
	return 80 + avg*10
}
