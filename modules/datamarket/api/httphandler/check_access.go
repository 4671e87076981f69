package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gofiber/fiber/v2"
)

type checkAccessResult struct {
	Grant  grantResult `json:"grant"`
	Active bool        `json:"active"`
}

type checkAccessResponse = common.HttpResponse[checkAccessResult]

func (h *HttpHandler) CheckAccess(ctx *fiber.Ctx) (err error) {
	rawBuyer, err := pathParam("buyer", ctx.Params("buyer"))
	if err != nil {
		return errors.WithStack(err)
	}
	buyer, err := types.ParseIdentity(rawBuyer)
	if err != nil {
		return errs.WithPublicMessage(err, "validation error: 'buyer' is not a valid identity")
	}
	listingID, err := pathParam("listing", ctx.Params("listing"))
	if err != nil {
		return errors.WithStack(err)
	}

	status, err := h.processor.CheckAccess(ctx.UserContext(), buyer, listingID)
	if err != nil {
		return errors.Wrap(err, "error during CheckAccess")
	}

	return errors.WithStack(ctx.JSON(checkAccessResponse{
		Result: &checkAccessResult{
			Grant:  mapGrant(status.Grant),
			Active: status.Active,
		},
	}))
}
