package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gofiber/fiber/v2"
)

type submissionResponse = common.HttpResponse[submissionResult]

func (h *HttpHandler) GetProvider(ctx *fiber.Ctx) (err error) {
	id, err := pathParam("id", ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	provider, err := h.usecase.GetProvider(ctx.UserContext(), id)
	if err != nil {
		return errors.Wrap(err, "error during GetProvider")
	}

	result := mapProvider(provider)
	return errors.WithStack(ctx.JSON(providerResponse{Result: &result}))
}

func (h *HttpHandler) GetSubmission(ctx *fiber.Ctx) (err error) {
	hash, err := pathParam("hash", ctx.Params("hash"))
	if err != nil {
		return errors.WithStack(err)
	}

	submission, err := h.usecase.GetSubmission(ctx.UserContext(), hash)
	if err != nil {
		return errors.Wrap(err, "error during GetSubmission")
	}

	result := mapSubmission(submission)
	return errors.WithStack(ctx.JSON(submissionResponse{Result: &result}))
}
