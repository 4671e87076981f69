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

type rewardProviderRequest struct {
	MintId           string `json:"mintId"` // defaults to the configured utility mint
	Provider         string `json:"provider"`
	BaseAmount       uint64 `json:"baseAmount"`
	DataQualityScore uint8  `json:"dataQualityScore"`
}

func (r *rewardProviderRequest) Validate() error {
	var errList []error
	if r.MintId == "" {
		errList = append(errList, errors.New("'mintId' is required"))
	}
	if _, err := types.ParseIdentity(r.Provider); err != nil {
		errList = append(errList, errors.Errorf("'provider' is not a valid identity: %v", err))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type rewardProviderResult struct {
	Mint          mintResult `json:"mint"`
	Provider      string     `json:"provider"`
	Amount        uint64     `json:"amount"`
	AmountDecimal string     `json:"amountDecimal"`
}

type rewardProviderResponse = common.HttpResponse[rewardProviderResult]

func (h *HttpHandler) RewardProvider(ctx *fiber.Ctx) (err error) {
	var req rewardProviderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if req.MintId == "" {
		req.MintId = h.conf.UtilityMint
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	result, err := h.processor.RewardProvider(userCtx, requestcontext.GetAuthorization(userCtx), token.RewardProviderParams{
		MintID:           types.MintID(req.MintId),
		Provider:         types.Identity(req.Provider),
		BaseAmount:       req.BaseAmount,
		DataQualityScore: req.DataQualityScore,
	})
	if err != nil {
		return errors.Wrap(err, "error during RewardProvider")
	}

	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(rewardProviderResponse{
		Result: &rewardProviderResult{
			Mint:          mapMint(result.Mint),
			Provider:      req.Provider,
			Amount:        result.Amount,
			AmountDecimal: decimals.FromUnits(result.Amount, result.Mint.Decimals).String(),
		},
	}))
}
