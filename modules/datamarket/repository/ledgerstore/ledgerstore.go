package ledgerstore

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/datagateway"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
)

var _ datagateway.DatamarketDataGateway = (*Repository)(nil)

type Repository struct {
	store  ledger.Store
	tokens ledger.TokenProgram
	tx     ledger.Tx
}

func NewRepository(store ledger.Store, tokens ledger.TokenProgram) *Repository {
	return &Repository{
		store:  store,
		tokens: tokens,
	}
}

func ProviderKey(userID string) ledger.Key {
	return ledger.DeriveKey(ledger.NamespaceProvider, userID)
}

func SubmissionKey(contentHash string) ledger.Key {
	return ledger.DeriveKey(ledger.NamespaceSubmission, contentHash)
}

func ListingKey(listingID string) ledger.Key {
	return ledger.DeriveKey(ledger.NamespaceListing, listingID)
}

func AccessGrantKey(buyer types.Identity, listingID string) ledger.Key {
	return ledger.DeriveKey(ledger.NamespaceGrant, buyer.String(), listingID)
}

func (r *Repository) reader() ledger.Reader {
	if r.tx != nil {
		return r.tx
	}
	return r.store
}

func (r *Repository) writer() (ledger.Tx, error) {
	if r.tx == nil {
		return nil, errors.Wrap(errs.InternalError, "write requires a transaction")
	}
	return r.tx, nil
}

func (r *Repository) create(ctx context.Context, key ledger.Key, v any) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ledger.Create(ctx, tx, key, v))
}

func (r *Repository) update(ctx context.Context, key ledger.Key, v any) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ledger.Update(ctx, tx, key, v))
}

func (r *Repository) GetProvider(ctx context.Context, userID string) (*entity.DataProvider, error) {
	provider, err := ledger.Get[entity.DataProvider](ctx, r.reader(), ProviderKey(userID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get provider %q", userID)
	}
	return provider, nil
}

func (r *Repository) GetSubmission(ctx context.Context, contentHash string) (*entity.DataSubmission, error) {
	submission, err := ledger.Get[entity.DataSubmission](ctx, r.reader(), SubmissionKey(contentHash))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get submission %q", contentHash)
	}
	return submission, nil
}

func (r *Repository) GetListing(ctx context.Context, listingID string) (*entity.DataListing, error) {
	listing, err := ledger.Get[entity.DataListing](ctx, r.reader(), ListingKey(listingID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get listing %q", listingID)
	}
	return listing, nil
}

func (r *Repository) GetListings(ctx context.Context) ([]*entity.DataListing, error) {
	listings, err := ledger.List[entity.DataListing](ctx, r.reader(), ledger.Prefix(ledger.NamespaceListing))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}
	return listings, nil
}

func (r *Repository) GetAccessGrant(ctx context.Context, buyer types.Identity, listingID string) (*entity.DataAccessGrant, error) {
	grant, err := ledger.Get[entity.DataAccessGrant](ctx, r.reader(), AccessGrantKey(buyer, listingID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get access grant of %q to %q", buyer, listingID)
	}
	return grant, nil
}

func (r *Repository) CreateProvider(ctx context.Context, provider *entity.DataProvider) error {
	return errors.Wrapf(r.create(ctx, ProviderKey(provider.UserID), provider), "failed to create provider %q", provider.UserID)
}

func (r *Repository) UpdateProvider(ctx context.Context, provider *entity.DataProvider) error {
	return errors.Wrapf(r.update(ctx, ProviderKey(provider.UserID), provider), "failed to update provider %q", provider.UserID)
}

func (r *Repository) CreateSubmission(ctx context.Context, submission *entity.DataSubmission) error {
	return errors.Wrapf(r.create(ctx, SubmissionKey(submission.ContentHash), submission), "failed to create submission %q", submission.ContentHash)
}

func (r *Repository) UpdateSubmission(ctx context.Context, submission *entity.DataSubmission) error {
	return errors.Wrapf(r.update(ctx, SubmissionKey(submission.ContentHash), submission), "failed to update submission %q", submission.ContentHash)
}

func (r *Repository) CreateListing(ctx context.Context, listing *entity.DataListing) error {
	return errors.Wrapf(r.create(ctx, ListingKey(listing.ListingID), listing), "failed to create listing %q", listing.ListingID)
}

func (r *Repository) UpdateListing(ctx context.Context, listing *entity.DataListing) error {
	return errors.Wrapf(r.update(ctx, ListingKey(listing.ListingID), listing), "failed to update listing %q", listing.ListingID)
}

func (r *Repository) CreateAccessGrant(ctx context.Context, grant *entity.DataAccessGrant) error {
	return errors.Wrapf(r.create(ctx, AccessGrantKey(grant.Buyer, grant.ListingID), grant), "failed to create access grant of %q to %q", grant.Buyer, grant.ListingID)
}

func (r *Repository) Transfer(ctx context.Context, mintID types.MintID, from, to types.Identity, amount uint64) error {
	tx, err := r.writer()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.tokens.Transfer(ctx, tx, mintID, from, to, amount))
}
