package entity

import (
	"github.com/gaze-network/bodydfi-ledger/core/types"
)

type ProposalType uint8

const (
	ProposalTypeParameterChange ProposalType = iota
	ProposalTypeFundAllocation
	ProposalTypeDataStandards
	ProposalTypeNewFeature
)

func (p ProposalType) IsValid() bool {
	return p <= ProposalTypeNewFeature
}

func (p ProposalType) String() string {
	switch p {
	case ProposalTypeParameterChange:
		return "parameter_change"
	case ProposalTypeFundAllocation:
		return "fund_allocation"
	case ProposalTypeDataStandards:
		return "data_standards"
	case ProposalTypeNewFeature:
		return "new_feature"
	default:
		return "unknown"
	}
}

// ProposalStatus moves Active -> Passed | Rejected, then Passed -> Executed.
type ProposalStatus uint8

const (
	ProposalStatusActive ProposalStatus = iota
	ProposalStatusPassed
	ProposalStatusRejected
	ProposalStatusExecuted
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusActive:
		return "active"
	case ProposalStatusPassed:
		return "passed"
	case ProposalStatusRejected:
		return "rejected"
	case ProposalStatusExecuted:
		return "executed"
	default:
		return "unknown"
	}
}

type Proposal struct {
	ID            uint64         `json:"id"`
	Proposer      types.Identity `json:"proposer"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ProposalType  ProposalType   `json:"proposal_type"`
	CreatedAt     int64          `json:"created_at"`
	VotingEndTime int64          `json:"voting_end_time"`
	YesVotes      uint64         `json:"yes_votes"`
	NoVotes       uint64         `json:"no_votes"`
	Status        ProposalStatus `json:"status"`
	Executed      bool           `json:"executed"`
}

type Vote struct {
	Voter      types.Identity `json:"voter"`
	ProposalID uint64         `json:"proposal_id"`
	VoteFor    bool           `json:"vote_for"`
	Weight     uint64         `json:"weight"`
	CastAt     int64          `json:"cast_at"`
}
