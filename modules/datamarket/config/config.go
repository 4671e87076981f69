package config

type Config struct {
	// FeePolicy is `provider-only` (default) or `three-way`.
	FeePolicy        string   `mapstructure:"fee_policy"`
	PlatformTreasury string   `mapstructure:"platform_treasury"` // required by `three-way`
	HolderPool       string   `mapstructure:"holder_pool"`       // required by `three-way`
	Validators       []string `mapstructure:"validators"`        // identities allowed to score submissions
	UtilityMint      string   `mapstructure:"utility_mint"`      // mint access purchases are paid in
}
