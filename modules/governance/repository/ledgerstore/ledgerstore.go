package ledgerstore

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/datagateway"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
)

var _ datagateway.GovernanceDataGateway = (*Repository)(nil)

// ProposalSequence names the counter proposal ids are drawn from.
const ProposalSequence = "proposal"

type Repository struct {
	store  ledger.Store
	tokens ledger.TokenProgram
	tx     ledger.Tx
}

func NewRepository(store ledger.Store, tokens ledger.TokenProgram) *Repository {
	return &Repository{
		store:  store,
		tokens: tokens,
	}
}

// proposal ids are zero-padded so that a prefix scan returns proposals in id order.
func formatProposalID(id uint64) string {
	return fmt.Sprintf("%020d", id)
}

func ProposalKey(id uint64) ledger.Key {
	return ledger.DeriveKey(ledger.NamespaceProposal, formatProposalID(id))
}

func VoteKey(voter types.Identity, proposalID uint64) ledger.Key {
	return ledger.DeriveKey(ledger.NamespaceVote, voter.String(), formatProposalID(proposalID))
}

func (r *Repository) reader() ledger.Reader {
	if r.tx != nil {
		return r.tx
	}
	return r.store
}

func (r *Repository) writer() (ledger.Tx, error) {
	if r.tx == nil {
		return nil, errors.Wrap(errs.InternalError, "write requires a transaction")
	}
	return r.tx, nil
}

func (r *Repository) GetProposal(ctx context.Context, id uint64) (*entity.Proposal, error) {
	proposal, err := ledger.Get[entity.Proposal](ctx, r.reader(), ProposalKey(id))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get proposal %d", id)
	}
	return proposal, nil
}

func (r *Repository) GetProposals(ctx context.Context) ([]*entity.Proposal, error) {
	proposals, err := ledger.List[entity.Proposal](ctx, r.reader(), ledger.Prefix(ledger.NamespaceProposal))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list proposals")
	}
	return proposals, nil
}

func (r *Repository) GetVote(ctx context.Context, voter types.Identity, proposalID uint64) (*entity.Vote, error) {
	vote, err := ledger.Get[entity.Vote](ctx, r.reader(), VoteKey(voter, proposalID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get vote of %q on proposal %d", voter, proposalID)
	}
	return vote, nil
}

func (r *Repository) GetBalance(ctx context.Context, mintID types.MintID, owner types.Identity) (uint64, error) {
	balance, err := r.tokens.BalanceOf(ctx, r.reader(), mintID, owner)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return balance, nil
}

func (r *Repository) NextProposalID(ctx context.Context) (uint64, error) {
	tx, err := r.writer()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	id, err := ledger.NextSequence(ctx, tx, ProposalSequence)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return id, nil
}

func (r *Repository) CreateProposal(ctx context.Context, proposal *entity.Proposal) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	if err := ledger.Create(ctx, tx, ProposalKey(proposal.ID), proposal); err != nil {
		return errors.Wrapf(err, "failed to create proposal %d", proposal.ID)
	}
	return nil
}

func (r *Repository) UpdateProposal(ctx context.Context, proposal *entity.Proposal) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	if err := ledger.Update(ctx, tx, ProposalKey(proposal.ID), proposal); err != nil {
		return errors.Wrapf(err, "failed to update proposal %d", proposal.ID)
	}
	return nil
}

func (r *Repository) CreateVote(ctx context.Context, vote *entity.Vote) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	if err := ledger.Create(ctx, tx, VoteKey(vote.Voter, vote.ProposalID), vote); err != nil {
		return errors.Wrapf(err, "failed to create vote of %q on proposal %d", vote.Voter, vote.ProposalID)
	}
	return nil
}
