package datamarket

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/safemath"
)

// FeePolicy decides where the platform and token holder shares of a purchase go.
type FeePolicy string

const (
	// FeePolicyProviderOnly transfers only the provider share. The buyer keeps the rest.
	FeePolicyProviderOnly FeePolicy = "provider-only"

	// FeePolicyThreeWay also pays the platform treasury and the holder pool.
	// The truncation remainder goes to the provider, so the payouts add up to the price.
	FeePolicyThreeWay FeePolicy = "three-way"
)

func ParseFeePolicy(s string) (FeePolicy, error) {
	switch policy := FeePolicy(strings.ToLower(strings.TrimSpace(s))); policy {
	case "", FeePolicyProviderOnly:
		return FeePolicyProviderOnly, nil
	case FeePolicyThreeWay:
		return policy, nil
	default:
		return "", errors.Wrapf(errs.Unsupported, "fee policy %q", s)
	}
}

type FeeShares struct {
	Platform     uint64
	TokenHolders uint64
	Provider     uint64
}

// FeeSplit divides total by the fixed percentages. Each share truncates, so the shares
// may add up to less than total.
func FeeSplit(total uint64) (FeeShares, error) {
	platform, err := safemath.MulDiv(total, PlatformFeePercentage, PercentageDenominator)
	if err != nil {
		return FeeShares{}, errors.Wrap(err, "platform fee")
	}
	holders, err := safemath.MulDiv(total, TokenHolderFeePercentage, PercentageDenominator)
	if err != nil {
		return FeeShares{}, errors.Wrap(err, "token holder fee")
	}
	provider, err := safemath.MulDiv(total, ProviderFeePercentage, PercentageDenominator)
	if err != nil {
		return FeeShares{}, errors.Wrap(err, "provider amount")
	}
	return FeeShares{
		Platform:     platform,
		TokenHolders: holders,
		Provider:     provider,
	}, nil
}

type FeeConfig struct {
	Policy           FeePolicy
	PlatformTreasury types.Identity
	HolderPool       types.Identity
}

func (c FeeConfig) Validate() error {
	if c.Policy == FeePolicyThreeWay && (c.PlatformTreasury.IsZero() || c.HolderPool.IsZero()) {
		return errors.Wrap(errs.InvalidArgument, "three-way fee policy requires a platform treasury and a holder pool")
	}
	return nil
}

type Payout struct {
	To     types.Identity
	Amount uint64
}

// Payouts returns the transfers a buyer makes for a purchase of total under the policy.
// The provider payout is always first.
func (c FeeConfig) Payouts(total uint64, shares FeeShares, provider types.Identity) ([]Payout, error) {
	if c.Policy != FeePolicyThreeWay {
		return []Payout{{To: provider, Amount: shares.Provider}}, nil
	}
	fees, err := safemath.Add(shares.Platform, shares.TokenHolders)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	providerAmount, err := safemath.Sub(total, fees)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return []Payout{
		{To: provider, Amount: providerAmount},
		{To: c.PlatformTreasury, Amount: shares.Platform},
		{To: c.HolderPool, Amount: shares.TokenHolders},
	}, nil
}

type PurchaseResult struct {
	Listing  *entity.DataListing
	Provider *entity.DataProvider
	Grant    *entity.DataAccessGrant
	Shares   FeeShares
	Payouts  []Payout
}

// PurchaseAccess grants buyer access to listing from now for the listing's access period.
func PurchaseAccess(fees FeeConfig, buyer types.Identity, listing entity.DataListing, provider entity.DataProvider, now int64) (*PurchaseResult, error) {
	if !listing.Active {
		return nil, errors.Wrapf(errs.ListingInactive, "listing %q", listing.ListingID)
	}
	if buyer.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "buyer is required")
	}

	total := listing.PricePerAccess
	shares, err := FeeSplit(total)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	payouts, err := fees.Payouts(total, shares, provider.Owner)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	expiresAt, err := safemath.AddDuration(now, listing.AccessPeriod)
	if err != nil {
		return nil, errors.Wrap(err, "access expiry")
	}
	if listing.PurchaseCount, err = safemath.Add(listing.PurchaseCount, 1); err != nil {
		return nil, errors.Wrap(err, "purchase count")
	}
	// total rewards track what the provider was actually paid
	if provider.TotalRewards, err = safemath.Add(provider.TotalRewards, payouts[0].Amount); err != nil {
		return nil, errors.Wrap(err, "total rewards")
	}

	return &PurchaseResult{
		Listing:  &listing,
		Provider: &provider,
		Grant: &entity.DataAccessGrant{
			Buyer:       buyer,
			ListingID:   listing.ListingID,
			PurchasedAt: now,
			ExpiresAt:   expiresAt,
			AmountPaid:  total,
			Valid:       true,
		},
		Shares:  shares,
		Payouts: payouts,
	}, nil
}
