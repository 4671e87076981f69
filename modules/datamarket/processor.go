package datamarket

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/datagateway"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
	"github.com/samber/lo"
)

type Processor struct {
	datamarketDg datagateway.DatamarketDataGateway
	settings     Settings
	clock        ledger.Clock
	emitter      ledger.Emitter
}

func NewProcessor(datamarketDg datagateway.DatamarketDataGateway, settings Settings, clock ledger.Clock, emitter ledger.Emitter) *Processor {
	return &Processor{
		datamarketDg: datamarketDg,
		settings:     settings,
		clock:        clock,
		emitter:      emitter,
	}
}

// execute runs fn in a single transaction and emits the returned events once it has committed.
func (p *Processor) execute(ctx context.Context, fn func(dgTx datagateway.DatamarketDataGatewayWithTx) ([]ledger.Event, error)) error {
	dgTx, err := p.datamarketDg.BeginDatamarketTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := dgTx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback transaction", slogx.Error(err))
		}
	}()

	events, err := fn(dgTx)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := dgTx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	p.emitter.Emit(ctx, events...)
	return nil
}

func (p *Processor) RegisterProvider(ctx context.Context, auth ledger.Authorization, params RegisterProviderParams) (*entity.DataProvider, error) {
	if !auth.Controls(params.Owner) {
		return nil, errors.Wrap(errs.InvalidAuthority, "caller does not control provider owner")
	}
	provider, err := RegisterProvider(params)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = p.execute(ctx, func(dgTx datagateway.DatamarketDataGatewayWithTx) ([]ledger.Event, error) {
		if err := dgTx.CreateProvider(ctx, provider); err != nil {
			return nil, errors.WithStack(err)
		}
		return []ledger.Event{ProviderRegisteredEvent{
			Owner:       provider.Owner,
			UserID:      provider.UserID,
			DeviceClass: provider.DeviceClass,
		}}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return provider, nil
}

type SubmitDataResult struct {
	Provider   *entity.DataProvider
	Submission *entity.DataSubmission
}

func (p *Processor) SubmitData(ctx context.Context, auth ledger.Authorization, params SubmitDataParams) (*SubmitDataResult, error) {
	now := p.clock.Now()

	var result SubmitDataResult
	err := p.execute(ctx, func(dgTx datagateway.DatamarketDataGatewayWithTx) ([]ledger.Event, error) {
		provider, err := dgTx.GetProvider(ctx, params.ProviderID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if !auth.Controls(provider.Owner) {
			return nil, errors.Wrap(errs.InvalidAuthority, "caller does not control provider owner")
		}

		updated, submission, err := SubmitData(*provider, params, now)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.CreateSubmission(ctx, submission); err != nil {
			if errors.Is(err, errs.DuplicateKey) {
				return nil, errors.Wrapf(errs.DuplicateSubmission, "content hash %q", submission.ContentHash)
			}
			return nil, errors.WithStack(err)
		}
		if err := dgTx.UpdateProvider(ctx, updated); err != nil {
			return nil, errors.WithStack(err)
		}

		result = SubmitDataResult{Provider: updated, Submission: submission}
		return []ledger.Event{DataSubmittedEvent{
			Provider:    updated.Owner,
			ContentHash: submission.ContentHash,
			DataType:    submission.DataType,
			Timestamp:   submission.CollectionTimestamp,
		}}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &result, nil
}

type ValidateDataParams struct {
	ContentHash  string
	QualityScore uint8
}

type ValidateDataResult struct {
	Provider   *entity.DataProvider
	Submission *entity.DataSubmission
}

// ValidateData scores a submission. Only a configured validator may score.
func (p *Processor) ValidateData(ctx context.Context, auth ledger.Authorization, params ValidateDataParams) (*ValidateDataResult, error) {
	validator, ok := lo.Find(p.settings.Validators, auth.Controls)
	if !ok {
		return nil, errors.Wrap(errs.InvalidAuthority, "caller is not a validator")
	}

	var result ValidateDataResult
	err := p.execute(ctx, func(dgTx datagateway.DatamarketDataGatewayWithTx) ([]ledger.Event, error) {
		submission, err := dgTx.GetSubmission(ctx, params.ContentHash)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		provider, err := dgTx.GetProvider(ctx, submission.ProviderID)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		validated, updated, err := ValidateData(*submission, *provider, params.QualityScore)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.UpdateSubmission(ctx, validated); err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.UpdateProvider(ctx, updated); err != nil {
			return nil, errors.WithStack(err)
		}

		result = ValidateDataResult{Provider: updated, Submission: validated}
		return []ledger.Event{DataValidatedEvent{
			Validator:       validator,
			Provider:        updated.Owner,
			ContentHash:     validated.ContentHash,
			QualityScore:    validated.QualityScore,
			ReputationScore: updated.ReputationScore,
		}}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &result, nil
}

func (p *Processor) CreateListing(ctx context.Context, auth ledger.Authorization, params CreateListingParams) (*entity.DataListing, error) {
	now := p.clock.Now()

	var listing *entity.DataListing
	err := p.execute(ctx, func(dgTx datagateway.DatamarketDataGatewayWithTx) ([]ledger.Event, error) {
		provider, err := dgTx.GetProvider(ctx, params.ProviderID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if !auth.Controls(provider.Owner) {
			return nil, errors.Wrap(errs.InvalidAuthority, "caller does not control provider owner")
		}

		listing, err = CreateListing(*provider, params, now)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.CreateListing(ctx, listing); err != nil {
			return nil, errors.WithStack(err)
		}
		return []ledger.Event{DataListingCreatedEvent{
			Provider:       listing.Provider,
			ListingID:      listing.ListingID,
			PricePerAccess: listing.PricePerAccess,
			AccessPeriod:   listing.AccessPeriod,
		}}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return listing, nil
}

func (p *Processor) DeactivateListing(ctx context.Context, auth ledger.Authorization, listingID string) (*entity.DataListing, error) {
	var listing *entity.DataListing
	err := p.execute(ctx, func(dgTx datagateway.DatamarketDataGatewayWithTx) ([]ledger.Event, error) {
		current, err := dgTx.GetListing(ctx, listingID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		provider, err := dgTx.GetProvider(ctx, current.ProviderID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if provider.Owner != current.Provider || !auth.Controls(provider.Owner) {
			return nil, errors.Wrap(errs.InvalidAuthority, "caller does not own the listing")
		}

		listing, err = DeactivateListing(*current)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.UpdateListing(ctx, listing); err != nil {
			return nil, errors.WithStack(err)
		}
		return []ledger.Event{DataListingDeactivatedEvent{
			Provider:  listing.Provider,
			ListingID: listing.ListingID,
		}}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return listing, nil
}

type PurchaseAccessParams struct {
	Buyer     types.Identity
	ListingID string
}

// PurchaseAccess pays for a listing in the utility token and grants the buyer access to it.
func (p *Processor) PurchaseAccess(ctx context.Context, auth ledger.Authorization, params PurchaseAccessParams) (*PurchaseResult, error) {
	if !auth.Controls(params.Buyer) {
		return nil, errors.Wrap(errs.InvalidAuthority, "caller does not control buyer")
	}
	if p.settings.UtilityMint == "" {
		return nil, errors.Wrap(errs.Unsupported, "no utility mint is configured for purchases")
	}
	now := p.clock.Now()

	var result *PurchaseResult
	err := p.execute(ctx, func(dgTx datagateway.DatamarketDataGatewayWithTx) ([]ledger.Event, error) {
		listing, err := dgTx.GetListing(ctx, params.ListingID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		provider, err := dgTx.GetProvider(ctx, listing.ProviderID)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		result, err = PurchaseAccess(p.settings.Fees, params.Buyer, *listing, *provider, now)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.CreateAccessGrant(ctx, result.Grant); err != nil {
			if errors.Is(err, errs.DuplicateKey) {
				return nil, errors.Wrapf(errs.AccessAlreadyPurchased, "listing %q", listing.ListingID)
			}
			return nil, errors.WithStack(err)
		}
		for _, payout := range result.Payouts {
			if payout.Amount == 0 {
				continue
			}
			if err := dgTx.Transfer(ctx, p.settings.UtilityMint, params.Buyer, payout.To, payout.Amount); err != nil {
				return nil, errors.Wrapf(err, "failed to pay %q", payout.To)
			}
		}
		if err := dgTx.UpdateListing(ctx, result.Listing); err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.UpdateProvider(ctx, result.Provider); err != nil {
			return nil, errors.WithStack(err)
		}

		return []ledger.Event{DataAccessPurchasedEvent{
			Buyer:      result.Grant.Buyer,
			Provider:   result.Provider.Owner,
			ListingID:  result.Grant.ListingID,
			AmountPaid: result.Grant.AmountPaid,
			ExpiresAt:  result.Grant.ExpiresAt,
		}}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return result, nil
}

type AccessStatus struct {
	Grant  *entity.DataAccessGrant
	Active bool
}

// CheckAccess reports whether buyer currently holds access to a listing.
// Returns errs.NotFound if buyer never purchased it.
func (p *Processor) CheckAccess(ctx context.Context, buyer types.Identity, listingID string) (*AccessStatus, error) {
	grant, err := p.datamarketDg.GetAccessGrant(ctx, buyer, listingID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &AccessStatus{
		Grant:  grant,
		Active: grant.IsActive(p.clock.Now()),
	}, nil
}
