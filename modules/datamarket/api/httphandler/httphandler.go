package httphandler

import (
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/usecase"
	"github.com/samber/lo"
)

type HttpHandler struct {
	processor *datamarket.Processor
	usecase   *usecase.Usecase
}

func New(processor *datamarket.Processor, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		processor: processor,
		usecase:   usecase,
	}
}

// pathParam unescapes a route parameter and requires it to be non-empty.
func pathParam(name, raw string) (string, error) {
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", errs.WithPublicMessage(errors.Wrapf(errs.InvalidArgument, "malformed '%s'", name), "validation error")
	}
	if value == "" {
		return "", errs.NewPublicError("validation error: '" + name + "' is required")
	}
	return value, nil
}

type providerResult struct {
	UserId             string `json:"userId"`
	Owner              string `json:"owner"`
	DeviceClass        uint8  `json:"deviceClass"`
	DeviceClassName    string `json:"deviceClassName"`
	SubmissionCount    uint64 `json:"submissionCount"`
	LastSubmissionTime int64  `json:"lastSubmissionTime"` // unix timestamp
	TotalRewards       uint64 `json:"totalRewards"`
	AvgQualityScore    uint8  `json:"avgQualityScore"`
	ReputationScore    uint16 `json:"reputationScore"`
}

func mapProvider(provider *entity.DataProvider) providerResult {
	return providerResult{
		UserId:             provider.UserID,
		Owner:              provider.Owner.String(),
		DeviceClass:        uint8(provider.DeviceClass),
		DeviceClassName:    provider.DeviceClass.String(),
		SubmissionCount:    provider.SubmissionCount,
		LastSubmissionTime: provider.LastSubmissionTime,
		TotalRewards:       provider.TotalRewards,
		AvgQualityScore:    provider.AvgQualityScore,
		ReputationScore:    provider.ReputationScore,
	}
}

type submissionResult struct {
	ContentHash         string `json:"contentHash"`
	ProviderId          string `json:"providerId"`
	Provider            string `json:"provider"`
	DataType            uint8  `json:"dataType"`
	DataTypeName        string `json:"dataTypeName"`
	CollectionTimestamp int64  `json:"collectionTimestamp"`
	Metadata            string `json:"metadata"`
	QualityScore        uint8  `json:"qualityScore"`
	Validated           bool   `json:"validated"`
}

func mapSubmission(submission *entity.DataSubmission) submissionResult {
	return submissionResult{
		ContentHash:         submission.ContentHash,
		ProviderId:          submission.ProviderID,
		Provider:            submission.Provider.String(),
		DataType:            uint8(submission.DataType),
		DataTypeName:        submission.DataType.String(),
		CollectionTimestamp: submission.CollectionTimestamp,
		Metadata:            submission.Metadata,
		QualityScore:        submission.QualityScore,
		Validated:           submission.Validated,
	}
}

type listingResult struct {
	ListingId      string   `json:"listingId"`
	ProviderId     string   `json:"providerId"`
	Provider       string   `json:"provider"`
	DataTypes      []uint8  `json:"dataTypes"`
	DataTypeNames  []string `json:"dataTypeNames"`
	PricePerAccess uint64   `json:"pricePerAccess"`
	AccessPeriod   uint64   `json:"accessPeriod"` // seconds
	Description    string   `json:"description"`
	PurchaseCount  uint64   `json:"purchaseCount"`
	CreatedAt      int64    `json:"createdAt"`
	Active         bool     `json:"active"`
}

func mapListing(listing *entity.DataListing) listingResult {
	return listingResult{
		ListingId:  listing.ListingID,
		ProviderId: listing.ProviderID,
		Provider:   listing.Provider.String(),
		DataTypes: lo.Map(listing.DataTypes, func(t entity.DataType, _ int) uint8 {
			return uint8(t)
		}),
		DataTypeNames: lo.Map(listing.DataTypes, func(t entity.DataType, _ int) string {
			return t.String()
		}),
		PricePerAccess: listing.PricePerAccess,
		AccessPeriod:   listing.AccessPeriod,
		Description:    listing.Description,
		PurchaseCount:  listing.PurchaseCount,
		CreatedAt:      listing.CreatedAt,
		Active:         listing.Active,
	}
}

type grantResult struct {
	Buyer       string `json:"buyer"`
	ListingId   string `json:"listingId"`
	PurchasedAt int64  `json:"purchasedAt"`
	ExpiresAt   int64  `json:"expiresAt"`
	AmountPaid  uint64 `json:"amountPaid"`
	Valid       bool   `json:"valid"`
}

func mapGrant(grant *entity.DataAccessGrant) grantResult {
	return grantResult{
		Buyer:       grant.Buyer.String(),
		ListingId:   grant.ListingID,
		PurchasedAt: grant.PurchasedAt,
		ExpiresAt:   grant.ExpiresAt,
		AmountPaid:  grant.AmountPaid,
		Valid:       grant.Valid,
	}
}
