package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/modules/governance"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
)

type castVoteRequest struct {
	VoteFor bool `json:"voteFor"`
}

type castVoteResult struct {
	Vote      voteResult     `json:"vote"`
	Proposal  proposalResult `json:"proposal"`
	Finalized bool           `json:"finalized"`
}

type castVoteResponse = common.HttpResponse[castVoteResult]

func (h *HttpHandler) CastVote(ctx *fiber.Ctx) (err error) {
	id, err := parseProposalID(ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	var req castVoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	result, err := h.processor.CastVote(userCtx, requestcontext.GetAuthorization(userCtx), governance.CastVoteParams{
		Voter:      requestcontext.GetSigner(userCtx),
		ProposalID: id,
		VoteFor:    req.VoteFor,
	})
	if err != nil {
		return errors.Wrap(err, "error during CastVote")
	}

	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(castVoteResponse{
		Result: &castVoteResult{
			Vote:      mapVote(result.Vote),
			Proposal:  mapProposal(result.Proposal),
			Finalized: result.Finalized,
		},
	}))
}
