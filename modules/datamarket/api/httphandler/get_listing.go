package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getListingsRequest struct {
	IncludeInactive bool `query:"includeInactive"`
}

type getListingsResponse = common.HttpResponse[[]listingResult]

func (h *HttpHandler) GetListing(ctx *fiber.Ctx) (err error) {
	id, err := pathParam("id", ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.usecase.GetListing(ctx.UserContext(), id)
	if err != nil {
		return errors.Wrap(err, "error during GetListing")
	}

	result := mapListing(listing)
	return errors.WithStack(ctx.JSON(listingResponse{Result: &result}))
}

func (h *HttpHandler) GetListings(ctx *fiber.Ctx) (err error) {
	var req getListingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}

	listings, err := h.usecase.GetListings(ctx.UserContext(), req.IncludeInactive)
	if err != nil {
		return errors.Wrap(err, "error during GetListings")
	}

	result := lo.Map(listings, func(listing *entity.DataListing, _ int) listingResult {
		return mapListing(listing)
	})
	return errors.WithStack(ctx.JSON(getListingsResponse{Result: &result}))
}
