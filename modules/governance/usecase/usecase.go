package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/datagateway"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
)

type Usecase struct {
	governanceDg datagateway.GovernanceDataGateway
}

func New(governanceDg datagateway.GovernanceDataGateway) *Usecase {
	return &Usecase{
		governanceDg: governanceDg,
	}
}

func (u *Usecase) GetProposal(ctx context.Context, id uint64) (*entity.Proposal, error) {
	proposal, err := u.governanceDg.GetProposal(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get proposal")
	}
	return proposal, nil
}

func (u *Usecase) GetProposals(ctx context.Context) ([]*entity.Proposal, error) {
	proposals, err := u.governanceDg.GetProposals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get proposals")
	}
	return proposals, nil
}

func (u *Usecase) GetVote(ctx context.Context, voter types.Identity, proposalID uint64) (*entity.Vote, error) {
	vote, err := u.governanceDg.GetVote(ctx, voter, proposalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get vote")
	}
	return vote, nil
}
