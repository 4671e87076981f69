package httphandler

import (
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/token/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getMintRequest struct {
	Id string `params:"id"`
}

func (r *getMintRequest) Validate() error {
	id, err := url.PathUnescape(r.Id)
	if err != nil {
		return errs.WithPublicMessage(errors.Wrap(errs.InvalidArgument, "malformed id"), "validation error")
	}
	r.Id = id
	if r.Id == "" {
		return errs.NewPublicError("validation error: 'id' is required")
	}
	return nil
}

type (
	getMintResponse  = common.HttpResponse[mintResult]
	getMintsResponse = common.HttpResponse[[]mintResult]
)

func (h *HttpHandler) GetMint(ctx *fiber.Ctx) (err error) {
	var req getMintRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	mint, err := h.usecase.GetMint(ctx.UserContext(), types.MintID(req.Id))
	if err != nil {
		return errors.Wrap(err, "error during GetMint")
	}

	result := mapMint(mint)
	return errors.WithStack(ctx.JSON(getMintResponse{Result: &result}))
}

func (h *HttpHandler) GetMints(ctx *fiber.Ctx) (err error) {
	mints, err := h.usecase.GetMints(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetMints")
	}
	result := lo.Map(mints, func(mint *entity.TokenMintState, _ int) mintResult {
		return mapMint(mint)
	})
	return errors.WithStack(ctx.JSON(getMintsResponse{Result: &result}))
}
