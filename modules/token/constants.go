package token

const (
	Version = "v0.1.0"

	// DefaultDecimals is used when a mint is initialized without explicit decimals.
	DefaultDecimals uint8 = 9

	// UtilityMintCooldown is the minimum number of seconds between two rewards of a utility mint.
	UtilityMintCooldown int64 = 3600

	// DefaultGovernanceTotalSupply is one billion whole tokens at DefaultDecimals.
	DefaultGovernanceTotalSupply uint64 = 1_000_000_000_000_000_000

	// BaseRewardMultiplier is the denominator of QualityMultipliers.
	BaseRewardMultiplier uint64 = 100
)

// QualityMultipliers scales a reward by data quality score, 0.8x to 1.2x over BaseRewardMultiplier.
var QualityMultipliers = [...]uint64{80, 90, 100, 110, 120}

// MaxQualityScore is the highest valid data quality score.
const MaxQualityScore = uint8(len(QualityMultipliers) - 1)
