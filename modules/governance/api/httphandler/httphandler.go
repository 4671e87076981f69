package httphandler

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/governance"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/usecase"
)

type HttpHandler struct {
	processor *governance.Processor
	usecase   *usecase.Usecase
}

func New(processor *governance.Processor, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		processor: processor,
		usecase:   usecase,
	}
}

func parseProposalID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.WithPublicMessage(errors.Wrapf(errs.InvalidArgument, "'id' must be a positive integer, got %q", raw), "validation error")
	}
	return id, nil
}

type proposalResult struct {
	Id               uint64 `json:"id"`
	Proposer         string `json:"proposer"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	ProposalType     uint8  `json:"proposalType"`
	ProposalTypeName string `json:"proposalTypeName"`
	CreatedAt        int64  `json:"createdAt"`
	VotingEndTime    int64  `json:"votingEndTime"`
	YesVotes         uint64 `json:"yesVotes"`
	NoVotes          uint64 `json:"noVotes"`
	Status           string `json:"status"`
	Executed         bool   `json:"executed"`
}

func mapProposal(proposal *entity.Proposal) proposalResult {
	return proposalResult{
		Id:               proposal.ID,
		Proposer:         proposal.Proposer.String(),
		Title:            proposal.Title,
		Description:      proposal.Description,
		ProposalType:     uint8(proposal.ProposalType),
		ProposalTypeName: proposal.ProposalType.String(),
		CreatedAt:        proposal.CreatedAt,
		VotingEndTime:    proposal.VotingEndTime,
		YesVotes:         proposal.YesVotes,
		NoVotes:          proposal.NoVotes,
		Status:           proposal.Status.String(),
		Executed:         proposal.Executed,
	}
}

type voteResult struct {
	Voter      string `json:"voter"`
	ProposalId uint64 `json:"proposalId"`
	VoteFor    bool   `json:"voteFor"`
	Weight     uint64 `json:"weight"`
	CastAt     int64  `json:"castAt"`
}

func mapVote(vote *entity.Vote) voteResult {
	return voteResult{
		Voter:      vote.Voter.String(),
		ProposalId: vote.ProposalID,
		VoteFor:    vote.VoteFor,
		Weight:     vote.Weight,
		CastAt:     vote.CastAt,
	}
}
