package governance

import (
	"github.com/gaze-network/bodydfi-ledger/modules/governance/config"
	"github.com/samber/lo"
)

// Rules are the thresholds proposals are held to.
type Rules struct {
	MinTokensToPropose  uint64
	DefaultVotingPeriod uint64
}

func DefaultRules() Rules {
	return Rules{
		MinTokensToPropose:  MinTokensToPropose,
		DefaultVotingPeriod: DefaultVotingPeriod,
	}
}

// NewRules applies the configured overrides. A zero value keeps the default.
func NewRules(conf config.Config) Rules {
	return Rules{
		MinTokensToPropose:  lo.Ternary(conf.MinTokensToPropose > 0, conf.MinTokensToPropose, MinTokensToPropose),
		DefaultVotingPeriod: lo.Ternary(conf.DefaultVotingPeriod > 0, conf.DefaultVotingPeriod, DefaultVotingPeriod),
	}
}
