package datamarket

const (
	Version = "v0.1.0"

	// BaseReputationScore is the reputation of a newly registered provider.
	BaseReputationScore uint16 = 100

	// MaxReputationScore caps the reputation score.
	MaxReputationScore uint16 = 1000

	// MaxQualityScore is the highest quality a validator can assign.
	MaxQualityScore uint8 = 4

	// PendingQualityScore stands in for the quality of a submission until it is validated.
	PendingQualityScore uint8 = 2

	// SubmissionRateLimit is the minimum number of seconds between two submissions of a provider.
	SubmissionRateLimit int64 = 300
)

// Fee split of an access purchase, in percent of the listing price.
const (
	PlatformFeePercentage    uint64 = 15
	TokenHolderFeePercentage uint64 = 15
	ProviderFeePercentage    uint64 = 70
	PercentageDenominator    uint64 = 100
)
