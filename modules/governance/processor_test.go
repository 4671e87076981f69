package governance

import (
	"context"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/ledger/mocks"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/internal/store/inmem"
	"github.com/gaze-network/bodydfi-ledger/internal/tokenledger"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/repository/ledgerstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	proposer types.Identity = "proposer"
	alice    types.Identity = "alice"
	bob      types.Identity = "bob"
	carol    types.Identity = "carol"
	nobody   types.Identity = "nobody"

	governanceMintID types.MintID = "gbdfi"

	startTime int64 = 1_700_000_000
)

type testEnv struct {
	store     *inmem.Store
	tokens    *tokenledger.Program
	repo      *ledgerstore.Repository
	processor *Processor
	clock     *ledger.ManualClock
	events    *ledger.Recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := inmem.New()
	t.Cleanup(func() { _ = store.Close() })

	tokens := tokenledger.New()
	repo := ledgerstore.NewRepository(store, tokens)
	clock := ledger.NewManualClock(startTime)
	events := ledger.NewRecorder()
	env := &testEnv{
		store:  store,
		tokens: tokens,
		repo:   repo,
		processor: NewProcessor(repo, Settings{
			Rules:          DefaultRules(),
			GovernanceMint: governanceMintID,
		}, clock, events),
		clock:  clock,
		events: events,
	}
	env.fund(t, proposer, MinTokensToPropose)
	env.fund(t, alice, 600)
	env.fund(t, bob, 400)
	env.fund(t, carol, 200)
	return env
}

func (e *testEnv) fund(t *testing.T, to types.Identity, amount uint64) {
	t.Helper()
	ctx := context.Background()
	tx, err := e.store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, e.tokens.Mint(ctx, tx, governanceMintID, to, amount))
	require.NoError(t, tx.Commit(ctx))
}

func (e *testEnv) propose(t *testing.T, period uint64) *entity.Proposal {
	t.Helper()
	proposal, err := e.processor.CreateProposal(context.Background(), ledger.SignedBy(proposer), CreateProposalParams{
		Proposer:     proposer,
		Title:        "Adopt FHIR export",
		ProposalType: entity.ProposalTypeDataStandards,
		VotingPeriod: period,
	})
	require.NoError(t, err)
	return proposal
}

func (e *testEnv) vote(voter types.Identity, id uint64, voteFor bool) (*CastVoteResult, error) {
	return e.processor.CastVote(context.Background(), ledger.SignedBy(voter), CastVoteParams{
		Voter:      voter,
		ProposalID: id,
		VoteFor:    voteFor,
	})
}

func TestCreateProposalProcessor(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first := env.propose(t, 0)
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, startTime+int64(DefaultVotingPeriod), first.VotingEndTime)
	assert.Equal(t, []ledger.Event{ProposalCreatedEvent{
		ProposalID:    1,
		Proposer:      proposer,
		Title:         "Adopt FHIR export",
		ProposalType:  entity.ProposalTypeDataStandards,
		VotingEndTime: first.VotingEndTime,
	}}, env.events.Events())

	// same second, distinct id
	second := env.propose(t, 0)
	assert.Equal(t, uint64(2), second.ID)

	_, err := env.processor.CreateProposal(ctx, ledger.SignedBy(alice), CreateProposalParams{
		Proposer: alice,
		Title:    "Too small",
	})
	assert.ErrorIs(t, err, errs.InsufficientVotingBalance)

	_, err = env.processor.CreateProposal(ctx, ledger.SignedBy(proposer), CreateProposalParams{
		Proposer:     proposer,
		Title:        "Unknown",
		ProposalType: 9,
	})
	assert.ErrorIs(t, err, errs.InvalidProposalType)

	_, err = env.processor.CreateProposal(ctx, ledger.SignedBy(alice), CreateProposalParams{
		Proposer: proposer,
		Title:    "Forged",
	})
	assert.ErrorIs(t, err, errs.InvalidAuthority)

	// failed creations do not consume ids
	third := env.propose(t, 0)
	assert.Equal(t, uint64(3), third.ID)

	proposals, err := env.repo.GetProposals(ctx)
	require.NoError(t, err)
	require.Len(t, proposals, 3)
	for i, proposal := range proposals {
		assert.Equal(t, uint64(i+1), proposal.ID)
	}
}

func TestCastVoteProcessor(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	proposal := env.propose(t, 3600)

	_, err := env.vote(alice, proposal.ID, true)
	require.NoError(t, err)
	env.events.Reset()
	result, err := env.vote(bob, proposal.ID, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), result.Proposal.YesVotes)
	assert.Equal(t, uint64(400), result.Proposal.NoVotes)
	assert.Equal(t, []ledger.Event{VoteCastEvent{ProposalID: proposal.ID, Voter: bob, VoteFor: false, Weight: 400}}, env.events.Events())

	_, err = env.vote(alice, proposal.ID, false)
	assert.ErrorIs(t, err, errs.AlreadyVoted)

	_, err = env.vote(nobody, proposal.ID, true)
	assert.ErrorIs(t, err, errs.InsufficientVotingBalance)

	_, err = env.vote(alice, 99, true)
	assert.ErrorIs(t, err, errs.NotFound)

	_, err = env.processor.CastVote(ctx, ledger.SignedBy(bob), CastVoteParams{Voter: carol, ProposalID: proposal.ID})
	assert.ErrorIs(t, err, errs.InvalidAuthority)

	vote, err := env.repo.GetVote(ctx, alice, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), vote.Weight)
	assert.True(t, vote.VoteFor)

	stored, err := env.repo.GetProposal(ctx, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), stored.YesVotes)
	assert.Equal(t, uint64(400), stored.NoVotes)
}

func TestCastVoteAtDeadline(t *testing.T) {
	env := newTestEnv(t)
	proposal := env.propose(t, 3600)
	_, err := env.vote(alice, proposal.ID, true)
	require.NoError(t, err)

	env.clock.Set(proposal.VotingEndTime)
	env.events.Reset()
	result, err := env.vote(bob, proposal.ID, false)
	require.NoError(t, err)
	assert.True(t, result.Finalized)
	assert.Equal(t, entity.ProposalStatusPassed, result.Proposal.Status)
	assert.Equal(t, []ledger.Event{
		ProposalFinalizedEvent{ProposalID: proposal.ID, YesVotes: 600, NoVotes: 400, Passed: true},
		VoteCastEvent{ProposalID: proposal.ID, Voter: bob, VoteFor: false, Weight: 400},
	}, env.events.Events())

	_, err = env.vote(carol, proposal.ID, false)
	assert.ErrorIs(t, err, errs.InvalidProposal)
}

func TestCastVoteAfterDeadline(t *testing.T) {
	env := newTestEnv(t)
	proposal := env.propose(t, 3600)

	env.clock.Set(proposal.VotingEndTime + 1)
	_, err := env.vote(alice, proposal.ID, true)
	assert.ErrorIs(t, err, errs.VotingPeriodEnded)

	_, err = env.repo.GetVote(context.Background(), alice, proposal.ID)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestFinalizeAndExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("passed proposal executes once", func(t *testing.T) {
		env := newTestEnv(t)
		proposal := env.propose(t, 3600)
		_, err := env.vote(alice, proposal.ID, true)
		require.NoError(t, err)

		_, err = env.processor.FinalizeProposal(ctx, proposal.ID)
		assert.ErrorIs(t, err, errs.VotingPeriodActive)
		_, err = env.processor.ExecuteProposal(ctx, proposal.ID)
		assert.ErrorIs(t, err, errs.InvalidProposal)

		env.clock.Set(proposal.VotingEndTime)
		env.events.Reset()
		finalized, err := env.processor.FinalizeProposal(ctx, proposal.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ProposalStatusPassed, finalized.Status)
		assert.Equal(t, []ledger.Event{
			ProposalFinalizedEvent{ProposalID: proposal.ID, YesVotes: 600, Passed: true},
		}, env.events.Events())

		_, err = env.processor.FinalizeProposal(ctx, proposal.ID)
		assert.ErrorIs(t, err, errs.InvalidProposal)

		env.clock.Advance(10)
		env.events.Reset()
		executed, err := env.processor.ExecuteProposal(ctx, proposal.ID)
		require.NoError(t, err)
		assert.True(t, executed.Executed)
		assert.Equal(t, entity.ProposalStatusExecuted, executed.Status)
		assert.Equal(t, []ledger.Event{
			ProposalExecutedEvent{ProposalID: proposal.ID, ExecutedAt: proposal.VotingEndTime + 10},
		}, env.events.Events())

		_, err = env.processor.ExecuteProposal(ctx, proposal.ID)
		assert.ErrorIs(t, err, errs.InvalidProposal)
	})

	t.Run("tie is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		proposal := env.propose(t, 3600)
		_, err := env.vote(bob, proposal.ID, true)
		require.NoError(t, err)
		_, err = env.vote(carol, proposal.ID, false)
		require.NoError(t, err)
		env.fund(t, nobody, 200)
		_, err = env.vote(nobody, proposal.ID, false)
		require.NoError(t, err)

		env.clock.Set(proposal.VotingEndTime + 100)
		finalized, err := env.processor.FinalizeProposal(ctx, proposal.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ProposalStatusRejected, finalized.Status)

		_, err = env.processor.ExecuteProposal(ctx, proposal.ID)
		assert.ErrorIs(t, err, errs.InvalidProposal)
	})
}

func TestGovernanceMintRequired(t *testing.T) {
	env := newTestEnv(t)
	env.processor.settings.GovernanceMint = ""

	_, err := env.processor.CreateProposal(context.Background(), ledger.SignedBy(proposer), CreateProposalParams{
		Proposer: proposer,
		Title:    "No mint",
	})
	assert.ErrorIs(t, err, errs.Unsupported)

	_, err = env.vote(alice, 1, true)
	assert.ErrorIs(t, err, errs.Unsupported)
}

func TestEventsEmittedAfterCommit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	emitter := mocks.NewEmitter(t)
	env.processor.emitter = emitter

	emitter.EXPECT().Emit(mock.Anything, ProposalCreatedEvent{
		ProposalID:    1,
		Proposer:      proposer,
		Title:         "Adopt FHIR export",
		ProposalType:  entity.ProposalTypeDataStandards,
		VotingEndTime: startTime + 3600,
	}).Return().Once()
	env.propose(t, 3600)

	// rolled back operations emit nothing
	_, err := env.processor.CreateProposal(ctx, ledger.SignedBy(alice), CreateProposalParams{Proposer: alice, Title: "Too small"})
	require.ErrorIs(t, err, errs.InsufficientVotingBalance)
	_, err = env.processor.FinalizeProposal(ctx, 1)
	require.ErrorIs(t, err, errs.VotingPeriodActive)
}
