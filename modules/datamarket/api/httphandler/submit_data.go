package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
)

type submitDataRequest struct {
	ProviderId          string `json:"providerId"`
	ContentHash         string `json:"contentHash"`
	DataType            uint8  `json:"dataType"`
	CollectionTimestamp int64  `json:"collectionTimestamp"`
	Metadata            string `json:"metadata"`
}

func (r *submitDataRequest) Validate() error {
	var errList []error
	if r.ProviderId == "" {
		errList = append(errList, errors.New("'providerId' is required"))
	}
	if r.ContentHash == "" {
		errList = append(errList, errors.New("'contentHash' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type submitDataResult struct {
	Submission submissionResult `json:"submission"`
	Provider   providerResult   `json:"provider"`
}

type submitDataResponse = common.HttpResponse[submitDataResult]

func (h *HttpHandler) SubmitData(ctx *fiber.Ctx) (err error) {
	var req submitDataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	result, err := h.processor.SubmitData(userCtx, requestcontext.GetAuthorization(userCtx), datamarket.SubmitDataParams{
		ProviderID:          req.ProviderId,
		ContentHash:         req.ContentHash,
		DataType:            entity.DataType(req.DataType),
		CollectionTimestamp: req.CollectionTimestamp,
		Metadata:            req.Metadata,
	})
	if err != nil {
		return errors.Wrap(err, "error during SubmitData")
	}

	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(submitDataResponse{
		Result: &submitDataResult{
			Submission: mapSubmission(result.Submission),
			Provider:   mapProvider(result.Provider),
		},
	}))
}
