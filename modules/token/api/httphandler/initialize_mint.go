package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/token"
	"github.com/gaze-network/bodydfi-ledger/pkg/decimals"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
)

type initializeMintRequest struct {
	MintId      string `json:"mintId"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Uri         string `json:"uri"`
	Decimals    *uint8 `json:"decimals"`
	TotalSupply uint64 `json:"totalSupply"` // governance mints only
}

func (r initializeMintRequest) Validate() error {
	var errList []error
	if r.MintId == "" {
		errList = append(errList, errors.New("'mintId' is required"))
	}
	if r.Symbol == "" {
		errList = append(errList, errors.New("'symbol' is required"))
	}
	if r.Decimals != nil && *r.Decimals > decimals.MaxDecimals {
		errList = append(errList, errors.Errorf("'decimals' must be at most %d", decimals.MaxDecimals))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

func (r initializeMintRequest) params(authority types.Identity) token.InitializeMintParams {
	return token.InitializeMintParams{
		MintID:    types.MintID(r.MintId),
		Authority: authority,
		Name:      r.Name,
		Symbol:    r.Symbol,
		URI:       r.Uri,
		Decimals:  r.Decimals,
	}
}

type initializeMintResponse = common.HttpResponse[mintResult]

func (h *HttpHandler) InitializeUtilityMint(ctx *fiber.Ctx) (err error) {
	var req initializeMintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	mint, err := h.processor.InitializeUtilityMint(userCtx, requestcontext.GetAuthorization(userCtx), req.params(requestcontext.GetSigner(userCtx)))
	if err != nil {
		return errors.Wrap(err, "error during InitializeUtilityMint")
	}

	result := mapMint(mint)
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(initializeMintResponse{Result: &result}))
}

func (h *HttpHandler) InitializeGovernanceMint(ctx *fiber.Ctx) (err error) {
	var req initializeMintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	mint, err := h.processor.InitializeGovernanceMint(userCtx, requestcontext.GetAuthorization(userCtx), req.params(requestcontext.GetSigner(userCtx)), req.TotalSupply)
	if err != nil {
		return errors.Wrap(err, "error during InitializeGovernanceMint")
	}

	result := mapMint(mint)
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(initializeMintResponse{Result: &result}))
}
