package governance

import (
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
)

type ProposalCreatedEvent struct {
	ProposalID    uint64              `json:"proposal_id"`
	Proposer      types.Identity      `json:"proposer"`
	Title         string              `json:"title"`
	ProposalType  entity.ProposalType `json:"proposal_type"`
	VotingEndTime int64               `json:"voting_end_time"`
}

func (ProposalCreatedEvent) EventName() string { return "ProposalCreated" }

type VoteCastEvent struct {
	ProposalID uint64         `json:"proposal_id"`
	Voter      types.Identity `json:"voter"`
	VoteFor    bool           `json:"vote_for"`
	Weight     uint64         `json:"weight"`
}

func (VoteCastEvent) EventName() string { return "VoteCast" }

type ProposalFinalizedEvent struct {
	ProposalID uint64 `json:"proposal_id"`
	YesVotes   uint64 `json:"yes_votes"`
	NoVotes    uint64 `json:"no_votes"`
	Passed     bool   `json:"passed"`
}

func (ProposalFinalizedEvent) EventName() string { return "ProposalFinalized" }

func newProposalFinalizedEvent(proposal *entity.Proposal) ProposalFinalizedEvent {
	return ProposalFinalizedEvent{
		ProposalID: proposal.ID,
		YesVotes:   proposal.YesVotes,
		NoVotes:    proposal.NoVotes,
		Passed:     proposal.Status == entity.ProposalStatusPassed,
	}
}

type ProposalExecutedEvent struct {
	ProposalID uint64 `json:"proposal_id"`
	ExecutedAt int64  `json:"executed_at"`
}

func (ProposalExecutedEvent) EventName() string { return "ProposalExecuted" }
