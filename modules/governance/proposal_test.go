package governance

import (
	"math"
	"strings"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/config"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProposal(t *testing.T) {
	const now int64 = 1_700_000_000
	rules := DefaultRules()
	params := CreateProposalParams{
		Proposer:     "proposer",
		Title:        "Raise listing fee",
		ProposalType: entity.ProposalTypeParameterChange,
	}

	proposal, err := CreateProposal(rules, params, 7, MinTokensToPropose, now)
	require.NoError(t, err)
	assert.Equal(t, &entity.Proposal{
		ID:            7,
		Proposer:      "proposer",
		Title:         "Raise listing fee",
		ProposalType:  entity.ProposalTypeParameterChange,
		CreatedAt:     now,
		VotingEndTime: now + int64(DefaultVotingPeriod),
		Status:        entity.ProposalStatusActive,
	}, proposal)

	custom := params
	custom.VotingPeriod = 60
	proposal, err = CreateProposal(rules, custom, 8, MinTokensToPropose, now)
	require.NoError(t, err)
	assert.Equal(t, now+60, proposal.VotingEndTime)

	testcases := []struct {
		name    string
		modify  func(p *CreateProposalParams)
		balance uint64
		err     error
	}{
		{"balance below threshold", func(p *CreateProposalParams) {}, MinTokensToPropose - 1, errs.InsufficientVotingBalance},
		{"balance checked before type", func(p *CreateProposalParams) { p.ProposalType = 4 }, 0, errs.InsufficientVotingBalance},
		{"unknown type", func(p *CreateProposalParams) { p.ProposalType = 4 }, MinTokensToPropose, errs.InvalidProposalType},
		{"empty title", func(p *CreateProposalParams) { p.Title = " " }, MinTokensToPropose, errs.InvalidArgument},
		{"long title", func(p *CreateProposalParams) { p.Title = strings.Repeat("t", MaxTitleLength+1) }, MinTokensToPropose, errs.InvalidArgument},
		{"long description", func(p *CreateProposalParams) { p.Description = strings.Repeat("d", MaxDescriptionLength+1) }, MinTokensToPropose, errs.InvalidArgument},
		{"end time overflow", func(p *CreateProposalParams) { p.VotingPeriod = math.MaxInt64 }, MinTokensToPropose, errs.ArithmeticOverflow},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			p := params
			tc.modify(&p)
			_, err := CreateProposal(rules, p, 1, tc.balance, now)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewRules(t *testing.T) {
	assert.Equal(t, DefaultRules(), NewRules(config.Config{}))
	assert.Equal(t, Rules{MinTokensToPropose: 5, DefaultVotingPeriod: 10}, NewRules(config.Config{
		MinTokensToPropose:  5,
		DefaultVotingPeriod: 10,
	}))
}

func TestFinalize(t *testing.T) {
	testcases := []struct {
		name     string
		yes, no  uint64
		expected entity.ProposalStatus
	}{
		{"majority yes", 10, 9, entity.ProposalStatusPassed},
		{"majority no", 9, 10, entity.ProposalStatusRejected},
		{"tie", 10, 10, entity.ProposalStatusRejected},
		{"no votes", 0, 0, entity.ProposalStatusRejected},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			proposal := entity.Proposal{YesVotes: tc.yes, NoVotes: tc.no}
			assert.Equal(t, tc.expected, Finalize(proposal).Status)
		})
	}
}

func TestFinalizeProposal(t *testing.T) {
	proposal := entity.Proposal{ID: 1, VotingEndTime: 1000, YesVotes: 1}

	_, err := FinalizeProposal(proposal, 999)
	assert.ErrorIs(t, err, errs.VotingPeriodActive)

	finalized, err := FinalizeProposal(proposal, 1000)
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusPassed, finalized.Status)

	_, err = FinalizeProposal(*finalized, 2000)
	assert.ErrorIs(t, err, errs.InvalidProposal)
}

func TestExecuteProposal(t *testing.T) {
	_, err := ExecuteProposal(entity.Proposal{Status: entity.ProposalStatusActive})
	assert.ErrorIs(t, err, errs.InvalidProposal)

	_, err = ExecuteProposal(entity.Proposal{Status: entity.ProposalStatusRejected})
	assert.ErrorIs(t, err, errs.InvalidProposal)

	executed, err := ExecuteProposal(entity.Proposal{Status: entity.ProposalStatusPassed})
	require.NoError(t, err)
	assert.True(t, executed.Executed)
	assert.Equal(t, entity.ProposalStatusExecuted, executed.Status)

	_, err = ExecuteProposal(*executed)
	assert.ErrorIs(t, err, errs.InvalidProposal)

	_, err = ExecuteProposal(entity.Proposal{Status: entity.ProposalStatusPassed, Executed: true})
	assert.ErrorIs(t, err, errs.InvalidProposal)
}
