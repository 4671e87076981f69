package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
)

type validateDataRequest struct {
	QualityScore uint8 `json:"qualityScore"`
}

type validateDataResponse = common.HttpResponse[submitDataResult]

func (h *HttpHandler) ValidateData(ctx *fiber.Ctx) (err error) {
	hash, err := pathParam("hash", ctx.Params("hash"))
	if err != nil {
		return errors.WithStack(err)
	}
	var req validateDataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	result, err := h.processor.ValidateData(userCtx, requestcontext.GetAuthorization(userCtx), datamarket.ValidateDataParams{
		ContentHash:  hash,
		QualityScore: req.QualityScore,
	})
	if err != nil {
		return errors.Wrap(err, "error during ValidateData")
	}

	return errors.WithStack(ctx.JSON(validateDataResponse{
		Result: &submitDataResult{
			Submission: mapSubmission(result.Submission),
			Provider:   mapProvider(result.Provider),
		},
	}))
}
