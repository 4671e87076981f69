package governance

import (
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/config"
)

type Settings struct {
	Rules          Rules
	GovernanceMint types.MintID // proposals and votes fail with errs.Unsupported while empty
}

func NewSettings(conf config.Config) Settings {
	return Settings{
		Rules:          NewRules(conf),
		GovernanceMint: types.MintID(conf.GovernanceMint),
	}
}
