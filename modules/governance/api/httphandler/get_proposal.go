package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type (
	getProposalsResponse = common.HttpResponse[[]proposalResult]
	getVoteResponse      = common.HttpResponse[voteResult]
)

func (h *HttpHandler) GetProposal(ctx *fiber.Ctx) (err error) {
	id, err := parseProposalID(ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	proposal, err := h.usecase.GetProposal(ctx.UserContext(), id)
	if err != nil {
		return errors.Wrap(err, "error during GetProposal")
	}

	result := mapProposal(proposal)
	return errors.WithStack(ctx.JSON(proposalResponse{Result: &result}))
}

func (h *HttpHandler) GetProposals(ctx *fiber.Ctx) (err error) {
	proposals, err := h.usecase.GetProposals(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetProposals")
	}
	result := lo.Map(proposals, func(proposal *entity.Proposal, _ int) proposalResult {
		return mapProposal(proposal)
	})
	return errors.WithStack(ctx.JSON(getProposalsResponse{Result: &result}))
}

func (h *HttpHandler) GetVote(ctx *fiber.Ctx) (err error) {
	id, err := parseProposalID(ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	voter, err := types.ParseIdentity(ctx.Params("voter"))
	if err != nil {
		return errs.WithPublicMessage(err, "validation error: 'voter' is not a valid identity")
	}

	vote, err := h.usecase.GetVote(ctx.UserContext(), voter, id)
	if err != nil {
		return errors.Wrap(err, "error during GetVote")
	}

	result := mapVote(vote)
	return errors.WithStack(ctx.JSON(getVoteResponse{Result: &result}))
}
