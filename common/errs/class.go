package errs

import "github.com/cockroachdb/errors"

// Class groups error kinds by how a caller should react to them.
type Class int

const (
	ClassUnknown Class = iota
	ClassInput
	ClassAuthorization
	ClassTemporal
	ClassState
	ClassArithmetic
)

var classes = map[Class][]ErrorKind{
	ClassInput: {
		InvalidArgument, InvalidDeviceClass, InvalidDataType, InvalidTimestamp,
		InvalidQualityScore, InvalidListing, InvalidProposalType, InvalidRewardAmount,
	},
	ClassAuthorization: {InvalidAuthority, InsufficientVotingBalance, InvalidMint},
	ClassTemporal:      {RateLimitExceeded, CooldownActive, VotingPeriodEnded, VotingPeriodActive},
	ClassState: {
		NotFound, Conflict, DuplicateKey, DuplicateSubmission, AccessAlreadyPurchased,
		AlreadyVoted, AlreadyValidated, ListingInactive, InvalidProposal, InsufficientFunds,
	},
	ClassArithmetic: {ArithmeticOverflow, MintingCapExceeded},
}

// ClassOf returns the class of the first known error kind found in err's chain.
func ClassOf(err error) Class {
	if err == nil {
		return ClassUnknown
	}
	for class, kinds := range classes {
		for _, kind := range kinds {
			if errors.Is(err, kind) {
				return class
			}
		}
	}
	return ClassUnknown
}

// operational kinds belong to no class.
var operational = []ErrorKind{InternalError, SomethingWentWrong, Unsupported, Closed}

// KindOf returns the first known error kind found in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return "", false
	}
	for _, kinds := range classes {
		for _, kind := range kinds {
			if errors.Is(err, kind) {
				return kind, true
			}
		}
	}
	for _, kind := range operational {
		if errors.Is(err, kind) {
			return kind, true
		}
	}
	return "", false
}

func (c Class) String() string {
	switch c {
	case ClassInput:
		return "input"
	case ClassAuthorization:
		return "authorization"
	case ClassTemporal:
		return "temporal"
	case ClassState:
		return "state"
	case ClassArithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}
