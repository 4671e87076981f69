package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/pkg/decimals"
	"github.com/gofiber/fiber/v2"
)

type getBalanceRequest struct {
	Mint  string `params:"mint"`
	Owner string `params:"owner"`
}

func (r *getBalanceRequest) Validate() error {
	var errList []error
	if r.Mint == "" {
		errList = append(errList, errors.New("'mint' is required"))
	}
	if _, err := types.ParseIdentity(r.Owner); err != nil {
		errList = append(errList, errors.Errorf("'owner' is not a valid identity: %v", err))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type balanceResult struct {
	MintId         string `json:"mintId"`
	Owner          string `json:"owner"`
	Symbol         string `json:"symbol"`
	Decimals       uint8  `json:"decimals"`
	Balance        uint64 `json:"balance"`
	BalanceDecimal string `json:"balanceDecimal"`
}

type getBalanceResponse = common.HttpResponse[balanceResult]

func (h *HttpHandler) GetBalance(ctx *fiber.Ctx) (err error) {
	var req getBalanceRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	balance, err := h.usecase.GetBalance(ctx.UserContext(), types.MintID(req.Mint), types.Identity(req.Owner))
	if err != nil {
		return errors.Wrap(err, "error during GetBalance")
	}

	return errors.WithStack(ctx.JSON(getBalanceResponse{
		Result: &balanceResult{
			MintId:         balance.Mint.MintID.String(),
			Owner:          balance.Owner.String(),
			Symbol:         balance.Mint.Symbol,
			Decimals:       balance.Mint.Decimals,
			Balance:        balance.Balance,
			BalanceDecimal: decimals.FromUnits(balance.Balance, balance.Mint.Decimals).String(),
		},
	}))
}
