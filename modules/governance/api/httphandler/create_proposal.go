package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/governance"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
)

type createProposalRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProposalType uint8  `json:"proposalType"`
	VotingPeriod uint64 `json:"votingPeriod"` // seconds, 0 selects the default
}

func (r *createProposalRequest) Validate() error {
	var errList []error
	if r.Title == "" {
		errList = append(errList, errors.New("'title' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type proposalResponse = common.HttpResponse[proposalResult]

// CreateProposal opens a proposal on behalf of the request signer.
func (h *HttpHandler) CreateProposal(ctx *fiber.Ctx) (err error) {
	var req createProposalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	proposal, err := h.processor.CreateProposal(userCtx, requestcontext.GetAuthorization(userCtx), governance.CreateProposalParams{
		Proposer:     requestcontext.GetSigner(userCtx),
		Title:        req.Title,
		Description:  req.Description,
		ProposalType: entity.ProposalType(req.ProposalType),
		VotingPeriod: req.VotingPeriod,
	})
	if err != nil {
		return errors.Wrap(err, "error during CreateProposal")
	}

	result := mapProposal(proposal)
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(proposalResponse{Result: &result}))
}

func (h *HttpHandler) FinalizeProposal(ctx *fiber.Ctx) (err error) {
	id, err := parseProposalID(ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	proposal, err := h.processor.FinalizeProposal(ctx.UserContext(), id)
	if err != nil {
		return errors.Wrap(err, "error during FinalizeProposal")
	}

	result := mapProposal(proposal)
	return errors.WithStack(ctx.JSON(proposalResponse{Result: &result}))
}

func (h *HttpHandler) ExecuteProposal(ctx *fiber.Ctx) (err error) {
	id, err := parseProposalID(ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	proposal, err := h.processor.ExecuteProposal(ctx.UserContext(), id)
	if err != nil {
		return errors.Wrap(err, "error during ExecuteProposal")
	}

	result := mapProposal(proposal)
	return errors.WithStack(ctx.JSON(proposalResponse{Result: &result}))
}
