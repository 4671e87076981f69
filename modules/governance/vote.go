package governance

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/safemath"
)

type CastVoteResult struct {
	Proposal *entity.Proposal
	Vote     *entity.Vote

	// Finalized is set when the vote landed at the end of the voting period and settled the proposal.
	Finalized bool
}

// CastVote adds balance to the chosen tally. Whether voter already voted is left to the ledger.
func CastVote(proposal entity.Proposal, voter types.Identity, voteFor bool, balance uint64, now int64) (*CastVoteResult, error) {
	if proposal.Status != entity.ProposalStatusActive {
		return nil, errors.Wrapf(errs.InvalidProposal, "proposal %d is %s", proposal.ID, proposal.Status)
	}
	if balance == 0 {
		return nil, errors.Wrap(errs.InsufficientVotingBalance, "voter holds no governance tokens")
	}
	if now > proposal.VotingEndTime {
		return nil, errors.Wrapf(errs.VotingPeriodEnded, "voting ended at %d", proposal.VotingEndTime)
	}

	var err error
	if voteFor {
		proposal.YesVotes, err = safemath.Add(proposal.YesVotes, balance)
	} else {
		proposal.NoVotes, err = safemath.Add(proposal.NoVotes, balance)
	}
	if err != nil {
		return nil, errors.Wrap(err, "vote tally")
	}

	result := &CastVoteResult{
		Proposal: &proposal,
		Vote: &entity.Vote{
			Voter:      voter,
			ProposalID: proposal.ID,
			VoteFor:    voteFor,
			Weight:     balance,
			CastAt:     now,
		},
	}
	if now >= proposal.VotingEndTime {
		result.Proposal = Finalize(proposal)
		result.Finalized = true
	}
	return result, nil
}
