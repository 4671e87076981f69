package entity

import (
	"github.com/gaze-network/bodydfi-ledger/core/types"
)

type DeviceClass uint8

const (
	DeviceClassSensor DeviceClass = iota
	DeviceClassPro
	DeviceClassMedical
)

func (d DeviceClass) IsValid() bool {
	return d <= DeviceClassMedical
}

func (d DeviceClass) String() string {
	switch d {
	case DeviceClassSensor:
		return "sensor"
	case DeviceClassPro:
		return "pro"
	case DeviceClassMedical:
		return "medical"
	default:
		return "unknown"
	}
}

type DataType uint8

const (
	DataTypeMotion DataType = iota
	DataTypeBiometric
	DataTypePressure
	DataTypeMuscle
	DataTypeMedical
)

func (d DataType) IsValid() bool {
	return d <= DataTypeMedical
}

func (d DataType) String() string {
	switch d {
	case DataTypeMotion:
		return "motion"
	case DataTypeBiometric:
		return "biometric"
	case DataTypePressure:
		return "pressure"
	case DataTypeMuscle:
		return "muscle"
	case DataTypeMedical:
		return "medical"
	default:
		return "unknown"
	}
}

type DataProvider struct {
	UserID             string         `json:"user_id"`
	Owner              types.Identity `json:"owner"`
	DeviceClass        DeviceClass    `json:"device_class"`
	SubmissionCount    uint64         `json:"submission_count"`
	LastSubmissionTime int64          `json:"last_submission_time"`
	TotalRewards       uint64         `json:"total_rewards"`
	AvgQualityScore    uint8          `json:"avg_quality_score"` // 0-4
	ReputationScore    uint16         `json:"reputation_score"`  // 0-1000
}

type DataSubmission struct {
	ContentHash         string         `json:"content_hash"`
	ProviderID          string         `json:"provider_id"`
	Provider            types.Identity `json:"provider"`
	DataType            DataType       `json:"data_type"`
	CollectionTimestamp int64          `json:"collection_timestamp"`
	Metadata            string         `json:"metadata"`
	QualityScore        uint8          `json:"quality_score"`
	Validated           bool           `json:"validated"`
}

type DataListing struct {
	ListingID      string         `json:"listing_id"`
	ProviderID     string         `json:"provider_id"`
	Provider       types.Identity `json:"provider"`
	DataTypes      []DataType     `json:"data_types"`
	PricePerAccess uint64         `json:"price_per_access"`
	AccessPeriod   uint64         `json:"access_period"` // seconds
	Description    string         `json:"description"`
	PurchaseCount  uint64         `json:"purchase_count"`
	CreatedAt      int64          `json:"created_at"`
	Active         bool           `json:"active"`
}

// DataAccessGrant proves a buyer paid for a listing. It expires at read time, never by a write.
type DataAccessGrant struct {
	Buyer       types.Identity `json:"buyer"`
	ListingID   string         `json:"listing_id"`
	PurchasedAt int64          `json:"purchased_at"`
	ExpiresAt   int64          `json:"expires_at"`
	AmountPaid  uint64         `json:"amount_paid"`
	Valid       bool           `json:"valid"`
}

// IsActive reports whether the grant still gives access at now.
func (g DataAccessGrant) IsActive(now int64) bool {
	return g.Valid && now <= g.ExpiresAt
}
