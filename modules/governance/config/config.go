package config

type Config struct {
	// GovernanceMint is the mint whose balances weigh proposals and votes.
	GovernanceMint      string `mapstructure:"governance_mint"`
	MinTokensToPropose  uint64 `mapstructure:"min_tokens_to_propose"`  // 0 keeps the default
	DefaultVotingPeriod uint64 `mapstructure:"default_voting_period"` // seconds, 0 keeps the default
}
