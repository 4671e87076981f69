package config

type Config struct {
	// UtilityMint is the mint rewards are issued from when a request does not name one.
	UtilityMint string `mapstructure:"utility_mint"`
}
