package datamarket

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/config"
)

// Settings are the parsed datamarket configuration.
type Settings struct {
	Fees        FeeConfig
	Validators  []types.Identity
	UtilityMint types.MintID // purchases fail with errs.Unsupported while empty
}

func NewSettings(conf config.Config) (Settings, error) {
	policy, err := ParseFeePolicy(conf.FeePolicy)
	if err != nil {
		return Settings{}, errors.WithStack(err)
	}
	fees := FeeConfig{Policy: policy}
	if conf.PlatformTreasury != "" {
		if fees.PlatformTreasury, err = types.ParseIdentity(conf.PlatformTreasury); err != nil {
			return Settings{}, errors.Wrap(err, "invalid platform treasury")
		}
	}
	if conf.HolderPool != "" {
		if fees.HolderPool, err = types.ParseIdentity(conf.HolderPool); err != nil {
			return Settings{}, errors.Wrap(err, "invalid holder pool")
		}
	}
	if err := fees.Validate(); err != nil {
		return Settings{}, errors.WithStack(err)
	}

	validators := make([]types.Identity, 0, len(conf.Validators))
	for _, v := range conf.Validators {
		validator, err := types.ParseIdentity(v)
		if err != nil {
			return Settings{}, errors.Wrapf(err, "invalid validator %q", v)
		}
		validators = append(validators, validator)
	}

	return Settings{
		Fees:        fees,
		Validators:  validators,
		UtilityMint: types.MintID(conf.UtilityMint),
	}, nil
}
