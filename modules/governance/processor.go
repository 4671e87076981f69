package governance

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/datagateway"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
)

type Processor struct {
	governanceDg datagateway.GovernanceDataGateway
	settings     Settings
	clock        ledger.Clock
	emitter      ledger.Emitter
}

func NewProcessor(governanceDg datagateway.GovernanceDataGateway, settings Settings, clock ledger.Clock, emitter ledger.Emitter) *Processor {
	return &Processor{
		governanceDg: governanceDg,
		settings:     settings,
		clock:        clock,
		emitter:      emitter,
	}
}

// execute runs fn in a single transaction and emits the returned events once it has committed.
func (p *Processor) execute(ctx context.Context, fn func(dgTx datagateway.GovernanceDataGatewayWithTx) ([]ledger.Event, error)) error {
	dgTx, err := p.governanceDg.BeginGovernanceTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := dgTx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback transaction", slogx.Error(err))
		}
	}()

	events, err := fn(dgTx)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := dgTx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	p.emitter.Emit(ctx, events...)
	return nil
}

func (p *Processor) governanceMint() (types.MintID, error) {
	if p.settings.GovernanceMint == "" {
		return "", errors.Wrap(errs.Unsupported, "no governance mint is configured")
	}
	return p.settings.GovernanceMint, nil
}

func (p *Processor) CreateProposal(ctx context.Context, auth ledger.Authorization, params CreateProposalParams) (*entity.Proposal, error) {
	if !auth.Controls(params.Proposer) {
		return nil, errors.Wrap(errs.InvalidAuthority, "caller does not control proposer")
	}
	mint, err := p.governanceMint()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	now := p.clock.Now()

	var proposal *entity.Proposal
	err = p.execute(ctx, func(dgTx datagateway.GovernanceDataGatewayWithTx) ([]ledger.Event, error) {
		balance, err := dgTx.GetBalance(ctx, mint, params.Proposer)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get proposer balance")
		}
		id, err := dgTx.NextProposalID(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		proposal, err = CreateProposal(p.settings.Rules, params, id, balance, now)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.CreateProposal(ctx, proposal); err != nil {
			return nil, errors.WithStack(err)
		}
		return []ledger.Event{ProposalCreatedEvent{
			ProposalID:    proposal.ID,
			Proposer:      proposal.Proposer,
			Title:         proposal.Title,
			ProposalType:  proposal.ProposalType,
			VotingEndTime: proposal.VotingEndTime,
		}}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return proposal, nil
}

type CastVoteParams struct {
	Voter      types.Identity
	ProposalID uint64
	VoteFor    bool
}

// CastVote weighs the vote by the voter's governance balance. A vote cast exactly at the end of
// the voting period also finalizes the proposal.
func (p *Processor) CastVote(ctx context.Context, auth ledger.Authorization, params CastVoteParams) (*CastVoteResult, error) {
	if !auth.Controls(params.Voter) {
		return nil, errors.Wrap(errs.InvalidAuthority, "caller does not control voter")
	}
	mint, err := p.governanceMint()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	now := p.clock.Now()

	var result *CastVoteResult
	err = p.execute(ctx, func(dgTx datagateway.GovernanceDataGatewayWithTx) ([]ledger.Event, error) {
		proposal, err := dgTx.GetProposal(ctx, params.ProposalID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		balance, err := dgTx.GetBalance(ctx, mint, params.Voter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get voter balance")
		}

		result, err = CastVote(*proposal, params.Voter, params.VoteFor, balance, now)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.CreateVote(ctx, result.Vote); err != nil {
			if errors.Is(err, errs.DuplicateKey) {
				return nil, errors.Wrapf(errs.AlreadyVoted, "proposal %d", params.ProposalID)
			}
			return nil, errors.WithStack(err)
		}
		if err := dgTx.UpdateProposal(ctx, result.Proposal); err != nil {
			return nil, errors.WithStack(err)
		}

		var events []ledger.Event
		if result.Finalized {
			events = append(events, newProposalFinalizedEvent(result.Proposal))
		}
		events = append(events, VoteCastEvent{
			ProposalID: result.Vote.ProposalID,
			Voter:      result.Vote.Voter,
			VoteFor:    result.Vote.VoteFor,
			Weight:     result.Vote.Weight,
		})
		return events, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return result, nil
}

// FinalizeProposal settles a proposal after its voting period. Anyone may call it.
func (p *Processor) FinalizeProposal(ctx context.Context, id uint64) (*entity.Proposal, error) {
	now := p.clock.Now()

	var proposal *entity.Proposal
	err := p.execute(ctx, func(dgTx datagateway.GovernanceDataGatewayWithTx) ([]ledger.Event, error) {
		current, err := dgTx.GetProposal(ctx, id)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		proposal, err = FinalizeProposal(*current, now)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.UpdateProposal(ctx, proposal); err != nil {
			return nil, errors.WithStack(err)
		}
		return []ledger.Event{newProposalFinalizedEvent(proposal)}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return proposal, nil
}

// ExecuteProposal marks a passed proposal as executed. Anyone may call it, at most once per proposal.
func (p *Processor) ExecuteProposal(ctx context.Context, id uint64) (*entity.Proposal, error) {
	now := p.clock.Now()

	var proposal *entity.Proposal
	err := p.execute(ctx, func(dgTx datagateway.GovernanceDataGatewayWithTx) ([]ledger.Event, error) {
		current, err := dgTx.GetProposal(ctx, id)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		proposal, err = ExecuteProposal(*current)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.UpdateProposal(ctx, proposal); err != nil {
			return nil, errors.WithStack(err)
		}
		return []ledger.Event{ProposalExecutedEvent{
			ProposalID: proposal.ID,
			ExecutedAt: now,
		}}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return proposal, nil
}
