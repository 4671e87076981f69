package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/samber/lo"
)

func (u *Usecase) GetListing(ctx context.Context, listingID string) (*entity.DataListing, error) {
	listing, err := u.datamarketDg.GetListing(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listing")
	}
	return listing, nil
}

// GetListings returns listings ordered by listing id. Inactive listings are skipped unless includeInactive is set.
func (u *Usecase) GetListings(ctx context.Context, includeInactive bool) ([]*entity.DataListing, error) {
	listings, err := u.datamarketDg.GetListings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listings")
	}
	if includeInactive {
		return listings, nil
	}
	return lo.Filter(listings, func(listing *entity.DataListing, _ int) bool {
		return listing.Active
	}), nil
}
