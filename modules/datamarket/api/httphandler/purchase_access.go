package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type payoutResult struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type purchaseAccessResult struct {
	Grant           grantResult    `json:"grant"`
	PlatformFee     uint64         `json:"platformFee"`
	TokenHolderFee  uint64         `json:"tokenHolderFee"`
	ProviderShare   uint64         `json:"providerShare"`
	Payouts         []payoutResult `json:"payouts"`
	PurchaseCount   uint64         `json:"purchaseCount"`
	ProviderRewards uint64         `json:"providerRewards"`
}

type purchaseAccessResponse = common.HttpResponse[purchaseAccessResult]

// PurchaseAccess buys access to a listing for the request signer.
func (h *HttpHandler) PurchaseAccess(ctx *fiber.Ctx) (err error) {
	id, err := pathParam("id", ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	userCtx := ctx.UserContext()
	result, err := h.processor.PurchaseAccess(userCtx, requestcontext.GetAuthorization(userCtx), datamarket.PurchaseAccessParams{
		Buyer:     requestcontext.GetSigner(userCtx),
		ListingID: id,
	})
	if err != nil {
		return errors.Wrap(err, "error during PurchaseAccess")
	}

	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(purchaseAccessResponse{
		Result: &purchaseAccessResult{
			Grant:          mapGrant(result.Grant),
			PlatformFee:    result.Shares.Platform,
			TokenHolderFee: result.Shares.TokenHolders,
			ProviderShare:  result.Shares.Provider,
			Payouts: lo.Map(result.Payouts, func(p datamarket.Payout, _ int) payoutResult {
				return payoutResult{To: p.To.String(), Amount: p.Amount}
			}),
			PurchaseCount:   result.Listing.PurchaseCount,
			ProviderRewards: result.Provider.TotalRewards,
		},
	}))
}
