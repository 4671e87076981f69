package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type createListingRequest struct {
	ProviderId     string  `json:"providerId"`
	ListingId      string  `json:"listingId"`
	DataTypes      []uint8 `json:"dataTypes"`
	PricePerAccess uint64  `json:"pricePerAccess"`
	AccessPeriod   uint64  `json:"accessPeriod"` // seconds
	Description    string  `json:"description"`
}

func (r *createListingRequest) Validate() error {
	var errList []error
	if r.ProviderId == "" {
		errList = append(errList, errors.New("'providerId' is required"))
	}
	if r.ListingId == "" {
		errList = append(errList, errors.New("'listingId' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type listingResponse = common.HttpResponse[listingResult]

func (h *HttpHandler) CreateListing(ctx *fiber.Ctx) (err error) {
	var req createListingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	listing, err := h.processor.CreateListing(userCtx, requestcontext.GetAuthorization(userCtx), datamarket.CreateListingParams{
		ProviderID: req.ProviderId,
		ListingID:  req.ListingId,
		DataTypes: lo.Map(req.DataTypes, func(t uint8, _ int) entity.DataType {
			return entity.DataType(t)
		}),
		PricePerAccess: req.PricePerAccess,
		AccessPeriod:   req.AccessPeriod,
		Description:    req.Description,
	})
	if err != nil {
		return errors.Wrap(err, "error during CreateListing")
	}

	result := mapListing(listing)
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(listingResponse{Result: &result}))
}

func (h *HttpHandler) DeactivateListing(ctx *fiber.Ctx) (err error) {
	id, err := pathParam("id", ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	listing, err := h.processor.DeactivateListing(userCtx, requestcontext.GetAuthorization(userCtx), id)
	if err != nil {
		return errors.Wrap(err, "error during DeactivateListing")
	}

	result := mapListing(listing)
	return errors.WithStack(ctx.JSON(listingResponse{Result: &result}))
}
