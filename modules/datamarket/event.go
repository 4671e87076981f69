package datamarket

import (
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
)

type ProviderRegisteredEvent struct {
	Owner       types.Identity     `json:"owner"`
	UserID      string             `json:"user_id"`
	DeviceClass entity.DeviceClass `json:"device_class"`
}

func (ProviderRegisteredEvent) EventName() string { return "ProviderRegistered" }

type DataSubmittedEvent struct {
	Provider    types.Identity  `json:"provider"`
	ContentHash string          `json:"data_hash"`
	DataType    entity.DataType `json:"data_type"`
	Timestamp   int64           `json:"timestamp"`
}

func (DataSubmittedEvent) EventName() string { return "DataSubmitted" }

type DataValidatedEvent struct {
	Validator       types.Identity `json:"validator"`
	Provider        types.Identity `json:"provider"`
	ContentHash     string         `json:"data_hash"`
	QualityScore    uint8          `json:"quality_score"`
	ReputationScore uint16         `json:"reputation_score"`
}

func (DataValidatedEvent) EventName() string { return "DataValidated" }

type DataListingCreatedEvent struct {
	Provider       types.Identity `json:"provider"`
	ListingID      string         `json:"listing_id"`
	PricePerAccess uint64         `json:"price_per_access"`
	AccessPeriod   uint64         `json:"access_period"`
}

func (DataListingCreatedEvent) EventName() string { return "DataListingCreated" }

type DataListingDeactivatedEvent struct {
	Provider  types.Identity `json:"provider"`
	ListingID string         `json:"listing_id"`
}

func (DataListingDeactivatedEvent) EventName() string { return "DataListingDeactivated" }

type DataAccessPurchasedEvent struct {
	Buyer      types.Identity `json:"buyer"`
	Provider   types.Identity `json:"provider"`
	ListingID  string         `json:"listing_id"`
	AmountPaid uint64         `json:"amount_paid"`
	ExpiresAt  int64          `json:"expires_at"`
}

func (DataAccessPurchasedEvent) EventName() string { return "DataAccessPurchased" }
