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

type transferRequest struct {
	MintId        string `json:"mintId"`
	To            string `json:"to"`
	Amount        uint64 `json:"amount"`
	AmountDecimal string `json:"amountDecimal"` // whole tokens, used when amount is 0
}

func (r *transferRequest) Validate() error {
	var errList []error
	if r.MintId == "" {
		errList = append(errList, errors.New("'mintId' is required"))
	}
	if _, err := types.ParseIdentity(r.To); err != nil {
		errList = append(errList, errors.Errorf("'to' is not a valid identity: %v", err))
	}
	if r.Amount == 0 && r.AmountDecimal == "" {
		errList = append(errList, errors.New("'amount' or 'amountDecimal' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type transferResult struct {
	MintId        string `json:"mintId"`
	From          string `json:"from"`
	To            string `json:"to"`
	Amount        uint64 `json:"amount"`
	AmountDecimal string `json:"amountDecimal"`
}

type transferResponse = common.HttpResponse[transferResult]

func (h *HttpHandler) Transfer(ctx *fiber.Ctx) (err error) {
	var req transferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	mint, err := h.usecase.GetMint(userCtx, types.MintID(req.MintId))
	if err != nil {
		return errors.Wrap(err, "error during GetMint")
	}

	amount := req.Amount
	if amount == 0 {
		amount, err = decimals.ToUnits(req.AmountDecimal, mint.Decimals)
		if err != nil {
			return errs.WithPublicMessage(err, "invalid 'amountDecimal'")
		}
	}

	from := requestcontext.GetSigner(userCtx)
	if err := h.processor.Transfer(userCtx, requestcontext.GetAuthorization(userCtx), token.TransferParams{
		MintID: mint.MintID,
		From:   from,
		To:     types.Identity(req.To),
		Amount: amount,
	}); err != nil {
		return errors.Wrap(err, "error during Transfer")
	}

	return errors.WithStack(ctx.JSON(transferResponse{
		Result: &transferResult{
			MintId:        mint.MintID.String(),
			From:          from.String(),
			To:            req.To,
			Amount:        amount,
			AmountDecimal: decimals.FromUnits(amount, mint.Decimals).String(),
		},
	}))
}
