package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested record is not found.
	NotFound = ErrorKind("Not Found")

	// InternalError is returned when internal logic got an unexpected error.
	InternalError = ErrorKind("Internal Error")

	// SomethingWentWrong is returned when something went wrong without a more specific kind.
	SomethingWentWrong = ErrorKind("Something Went Wrong")

	// InvalidArgument is returned when an argument is malformed or missing.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature or backend is not supported.
	Unsupported = ErrorKind("Unsupported")

	// Closed is returned when the resource has been closed.
	Closed = ErrorKind("Closed")

	// Conflict is returned when a transaction lost a race against a concurrent writer.
	// The operation had no effect and may be resubmitted.
	Conflict = ErrorKind("Transaction Conflict")
)

// Input validation errors.
const (
	InvalidDeviceClass  = ErrorKind("invalid device class")
	InvalidDataType     = ErrorKind("invalid data type")
	InvalidTimestamp    = ErrorKind("invalid timestamp")
	InvalidQualityScore = ErrorKind("invalid quality score")
	InvalidListing      = ErrorKind("invalid listing parameters")
	InvalidProposalType = ErrorKind("invalid proposal type")
	InvalidRewardAmount = ErrorKind("invalid reward amount")
)

// Authorization errors.
const (
	InvalidAuthority          = ErrorKind("invalid authority")
	InsufficientVotingBalance = ErrorKind("insufficient voting balance")
	InvalidMint               = ErrorKind("invalid mint")
)

// Temporal errors. The caller may resubmit once the window has passed.
const (
	RateLimitExceeded  = ErrorKind("rate limit exceeded")
	CooldownActive     = ErrorKind("minting cooldown active")
	VotingPeriodEnded  = ErrorKind("voting period ended")
	VotingPeriodActive = ErrorKind("voting period still active")
)

// State errors.
const (
	DuplicateKey           = ErrorKind("record already exists")
	DuplicateSubmission    = ErrorKind("data hash already submitted")
	AccessAlreadyPurchased = ErrorKind("access already purchased")
	AlreadyVoted           = ErrorKind("already voted")
	AlreadyValidated       = ErrorKind("submission already validated")
	ListingInactive        = ErrorKind("listing inactive")
	InvalidProposal        = ErrorKind("invalid proposal state")
	InsufficientFunds      = ErrorKind("insufficient funds")
)

// Arithmetic errors.
const (
	ArithmeticOverflow = ErrorKind("arithmetic overflow")
	MintingCapExceeded = ErrorKind("minting cap exceeded")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
