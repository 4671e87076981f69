package governance

const (
	Version = "v0.1.0"

	// MinTokensToPropose is the governance balance a proposer must hold, in base units.
	MinTokensToPropose uint64 = 1_000_000_000

	// DefaultVotingPeriod replaces a zero voting period, in seconds.
	DefaultVotingPeriod uint64 = 259_200

	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
)
