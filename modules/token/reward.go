package token

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/token/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/safemath"
)

// RewardAmount applies the quality multiplier to base.
func RewardAmount(base uint64, quality uint8) (uint64, error) {
	if base == 0 {
		return 0, errors.WithStack(errs.InvalidRewardAmount)
	}
	if quality > MaxQualityScore {
		return 0, errors.Wrapf(errs.InvalidQualityScore, "quality score %d", quality)
	}
	amount, err := safemath.MulDiv(base, QualityMultipliers[quality], BaseRewardMultiplier)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return amount, nil
}

// Reward computes the mint state after rewarding base at the given quality and the amount to issue.
// The given state is not modified.
func Reward(mint entity.TokenMintState, base uint64, quality uint8, now int64) (*entity.TokenMintState, uint64, error) {
	if base == 0 {
		return nil, 0, errors.WithStack(errs.InvalidRewardAmount)
	}
	if quality > MaxQualityScore {
		return nil, 0, errors.Wrapf(errs.InvalidQualityScore, "quality score %d", quality)
	}

	elapsed, err := safemath.SubInt64(now, mint.LastMintTime)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	if elapsed < mint.MintCooldown {
		return nil, 0, errors.Wrapf(errs.CooldownActive, "%d seconds remaining", mint.MintCooldown-elapsed)
	}

	minted, err := RewardAmount(base, quality)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	circulating, err := safemath.Add(mint.CirculatingSupply, minted)
	if err != nil {
		return nil, 0, errors.Wrapf(errs.MintingCapExceeded, "circulating supply %d + %d overflows", mint.CirculatingSupply, minted)
	}
	if mint.MintCap > 0 && circulating > mint.MintCap {
		return nil, 0, errors.Wrapf(errs.MintingCapExceeded, "circulating supply %d + %d exceeds cap %d", mint.CirculatingSupply, minted, mint.MintCap)
	}

	mint.CirculatingSupply = circulating
	mint.LastMintTime = now
	return &mint, minted, nil
}
