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

type registerProviderRequest struct {
	UserId      string `json:"userId"`
	DeviceClass uint8  `json:"deviceClass"`
}

func (r *registerProviderRequest) Validate() error {
	var errList []error
	if r.UserId == "" {
		errList = append(errList, errors.New("'userId' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type providerResponse = common.HttpResponse[providerResult]

// RegisterProvider registers the request signer as a data provider.
func (h *HttpHandler) RegisterProvider(ctx *fiber.Ctx) (err error) {
	var req registerProviderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	provider, err := h.processor.RegisterProvider(userCtx, requestcontext.GetAuthorization(userCtx), datamarket.RegisterProviderParams{
		Owner:       requestcontext.GetSigner(userCtx),
		UserID:      req.UserId,
		DeviceClass: entity.DeviceClass(req.DeviceClass),
	})
	if err != nil {
		return errors.Wrap(err, "error during RegisterProvider")
	}

	result := mapProvider(provider)
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(providerResponse{Result: &result}))
}
