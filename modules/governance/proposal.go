package governance

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/safemath"
)

type CreateProposalParams struct {
	Proposer     types.Identity
	Title        string
	Description  string
	ProposalType entity.ProposalType
	VotingPeriod uint64 // seconds, 0 selects the default
}

// CreateProposal opens voting on a new proposal. balance is the proposer's governance balance.
func CreateProposal(rules Rules, params CreateProposalParams, id uint64, balance uint64, now int64) (*entity.Proposal, error) {
	if balance < rules.MinTokensToPropose {
		return nil, errors.Wrapf(errs.InsufficientVotingBalance, "balance %d, required %d", balance, rules.MinTokensToPropose)
	}
	if !params.ProposalType.IsValid() {
		return nil, errors.Wrapf(errs.InvalidProposalType, "proposal type %d", params.ProposalType)
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "title is required")
	}
	if len(params.Title) > MaxTitleLength {
		return nil, errors.Wrapf(errs.InvalidArgument, "title exceeds %d bytes", MaxTitleLength)
	}
	if len(params.Description) > MaxDescriptionLength {
		return nil, errors.Wrapf(errs.InvalidArgument, "description exceeds %d bytes", MaxDescriptionLength)
	}

	period := params.VotingPeriod
	if period == 0 {
		period = rules.DefaultVotingPeriod
	}
	end, err := safemath.AddDuration(now, period)
	if err != nil {
		return nil, errors.Wrap(err, "voting end time")
	}

	return &entity.Proposal{
		ID:            id,
		Proposer:      params.Proposer,
		Title:         params.Title,
		Description:   params.Description,
		ProposalType:  params.ProposalType,
		CreatedAt:     now,
		VotingEndTime: end,
		Status:        entity.ProposalStatusActive,
	}, nil
}

// Finalize settles an active proposal. A tie rejects it.
func Finalize(proposal entity.Proposal) *entity.Proposal {
	if proposal.YesVotes > proposal.NoVotes {
		proposal.Status = entity.ProposalStatusPassed
	} else {
		proposal.Status = entity.ProposalStatusRejected
	}
	return &proposal
}

// FinalizeProposal settles a proposal whose voting period is over.
func FinalizeProposal(proposal entity.Proposal, now int64) (*entity.Proposal, error) {
	if proposal.Status != entity.ProposalStatusActive {
		return nil, errors.Wrapf(errs.InvalidProposal, "proposal %d is %s", proposal.ID, proposal.Status)
	}
	if now < proposal.VotingEndTime {
		return nil, errors.Wrapf(errs.VotingPeriodActive, "voting ends at %d", proposal.VotingEndTime)
	}
	return Finalize(proposal), nil
}

func ExecuteProposal(proposal entity.Proposal) (*entity.Proposal, error) {
	if proposal.Status != entity.ProposalStatusPassed || proposal.Executed {
		return nil, errors.Wrapf(errs.InvalidProposal, "proposal %d is %s", proposal.ID, proposal.Status)
	}
	proposal.Executed = true
	proposal.Status = entity.ProposalStatusExecuted
	return &proposal, nil
}
