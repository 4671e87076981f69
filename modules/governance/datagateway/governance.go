package datagateway

import (
	"context"

	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
)

type GovernanceDataGateway interface {
	GovernanceReaderDataGateway

	// BeginGovernanceTx returns a new GovernanceDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginGovernanceTx(ctx context.Context) (GovernanceDataGatewayWithTx, error)
}

type GovernanceDataGatewayWithTx interface {
	GovernanceReaderDataGateway
	GovernanceWriterDataGateway
	Tx
}

type GovernanceReaderDataGateway interface {
	GetProposal(ctx context.Context, id uint64) (*entity.Proposal, error)
	// GetProposals returns every proposal ordered by id.
	GetProposals(ctx context.Context) ([]*entity.Proposal, error)
	GetVote(ctx context.Context, voter types.Identity, proposalID uint64) (*entity.Vote, error)
	// GetBalance returns the governance weight of owner. An account that never received tokens has a zero balance.
	GetBalance(ctx context.Context, mintID types.MintID, owner types.Identity) (uint64, error)
}

type GovernanceWriterDataGateway interface {
	// NextProposalID draws the next id from the persistent proposal counter. The first id is 1.
	NextProposalID(ctx context.Context) (uint64, error)
	CreateProposal(ctx context.Context, proposal *entity.Proposal) error
	UpdateProposal(ctx context.Context, proposal *entity.Proposal) error
	// CreateVote returns errs.DuplicateKey if voter already voted on the proposal.
	CreateVote(ctx context.Context, vote *entity.Vote) error
}
