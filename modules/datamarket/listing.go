package datamarket

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
)

type CreateListingParams struct {
	ProviderID     string
	ListingID      string
	DataTypes      []entity.DataType
	PricePerAccess uint64
	AccessPeriod   uint64 // seconds
	Description    string
}

// CreateListing returns a new active listing of provider's data.
func CreateListing(provider entity.DataProvider, params CreateListingParams, now int64) (*entity.DataListing, error) {
	if len(params.DataTypes) == 0 {
		return nil, errors.Wrap(errs.InvalidDataType, "listing must include at least one data type")
	}
	for _, dataType := range params.DataTypes {
		if !dataType.IsValid() {
			return nil, errors.Wrapf(errs.InvalidDataType, "data type %d", dataType)
		}
	}
	if params.PricePerAccess == 0 {
		return nil, errors.Wrap(errs.InvalidListing, "price per access must be positive")
	}
	if params.AccessPeriod == 0 {
		return nil, errors.Wrap(errs.InvalidListing, "access period must be positive")
	}
	if strings.TrimSpace(params.ListingID) == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "listing id is required")
	}

	return &entity.DataListing{
		ListingID:      params.ListingID,
		ProviderID:     provider.UserID,
		Provider:       provider.Owner,
		DataTypes:      append([]entity.DataType(nil), params.DataTypes...),
		PricePerAccess: params.PricePerAccess,
		AccessPeriod:   params.AccessPeriod,
		Description:    params.Description,
		CreatedAt:      now,
		Active:         true,
	}, nil
}

// DeactivateListing stops further purchases of listing. Grants already bought stay valid.
func DeactivateListing(listing entity.DataListing) (*entity.DataListing, error) {
	if !listing.Active {
		return nil, errors.Wrapf(errs.ListingInactive, "listing %q", listing.ListingID)
	}
	listing.Active = false
	return &listing, nil
}
