package datagateway

import (
	"context"

	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
)

type DatamarketDataGateway interface {
	DatamarketReaderDataGateway

	// BeginDatamarketTx returns a new DatamarketDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginDatamarketTx(ctx context.Context) (DatamarketDataGatewayWithTx, error)
}

type DatamarketDataGatewayWithTx interface {
	DatamarketReaderDataGateway
	DatamarketWriterDataGateway
	Tx
}

type DatamarketReaderDataGateway interface {
	// GetProvider returns errs.NotFound if no provider is registered under userID.
	GetProvider(ctx context.Context, userID string) (*entity.DataProvider, error)
	GetSubmission(ctx context.Context, contentHash string) (*entity.DataSubmission, error)
	GetListing(ctx context.Context, listingID string) (*entity.DataListing, error)
	// GetListings returns every listing ordered by listing id, including inactive ones.
	GetListings(ctx context.Context) ([]*entity.DataListing, error)
	GetAccessGrant(ctx context.Context, buyer types.Identity, listingID string) (*entity.DataAccessGrant, error)
}

type DatamarketWriterDataGateway interface {
	// Create* methods return errs.DuplicateKey if the record already exists.

	CreateProvider(ctx context.Context, provider *entity.DataProvider) error
	UpdateProvider(ctx context.Context, provider *entity.DataProvider) error
	CreateSubmission(ctx context.Context, submission *entity.DataSubmission) error
	UpdateSubmission(ctx context.Context, submission *entity.DataSubmission) error
	CreateListing(ctx context.Context, listing *entity.DataListing) error
	UpdateListing(ctx context.Context, listing *entity.DataListing) error
	CreateAccessGrant(ctx context.Context, grant *entity.DataAccessGrant) error

	// Transfer moves utility tokens. Returns errs.InsufficientFunds if from cannot cover amount.
	Transfer(ctx context.Context, mintID types.MintID, from, to types.Identity, amount uint64) error
}
