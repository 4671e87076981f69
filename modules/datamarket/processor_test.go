package datamarket

import (
	"context"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/internal/store/inmem"
	"github.com/gaze-network/bodydfi-ledger/internal/tokenledger"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/repository/ledgerstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner     types.Identity = "owner"
	buyer     types.Identity = "buyer"
	validator types.Identity = "validator"
	stranger  types.Identity = "stranger"
	treasury  types.Identity = "treasury"
	pool      types.Identity = "pool"

	utilityMintID types.MintID = "bdfi"
	userID                     = "user-1"
	listingID                  = "listing-1"
)

type testEnv struct {
	store     *inmem.Store
	tokens    *tokenledger.Program
	repo      *ledgerstore.Repository
	processor *Processor
	clock     *ledger.ManualClock
	events    *ledger.Recorder
}

func newTestEnv(t *testing.T, fees FeeConfig) *testEnv {
	t.Helper()
	store := inmem.New()
	t.Cleanup(func() { _ = store.Close() })

	tokens := tokenledger.New()
	repo := ledgerstore.NewRepository(store, tokens)
	clock := ledger.NewManualClock(1000)
	events := ledger.NewRecorder()
	settings := Settings{
		Fees:        fees,
		Validators:  []types.Identity{validator},
		UtilityMint: utilityMintID,
	}
	return &testEnv{
		store:     store,
		tokens:    tokens,
		repo:      repo,
		processor: NewProcessor(repo, settings, clock, events),
		clock:     clock,
		events:    events,
	}
}

func (e *testEnv) registerProvider(t *testing.T) {
	t.Helper()
	_, err := e.processor.RegisterProvider(context.Background(), ledger.SignedBy(owner), RegisterProviderParams{
		Owner:       owner,
		UserID:      userID,
		DeviceClass: entity.DeviceClassSensor,
	})
	require.NoError(t, err)
}

func (e *testEnv) createListing(t *testing.T, price uint64) {
	t.Helper()
	_, err := e.processor.CreateListing(context.Background(), ledger.SignedBy(owner), CreateListingParams{
		ProviderID:     userID,
		ListingID:      listingID,
		DataTypes:      []entity.DataType{entity.DataTypeMotion},
		PricePerAccess: price,
		AccessPeriod:   3600,
		Description:    "gait data",
	})
	require.NoError(t, err)
}

func (e *testEnv) fund(t *testing.T, to types.Identity, amount uint64) {
	t.Helper()
	ctx := context.Background()
	tx, err := e.store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, e.tokens.Mint(ctx, tx, utilityMintID, to, amount))
	require.NoError(t, tx.Commit(ctx))
}

func (e *testEnv) balance(t *testing.T, holder types.Identity) uint64 {
	t.Helper()
	balance, err := e.tokens.BalanceOf(context.Background(), e.store, utilityMintID, holder)
	require.NoError(t, err)
	return balance
}

func (e *testEnv) submit(hash string) (*SubmitDataResult, error) {
	return e.processor.SubmitData(context.Background(), ledger.SignedBy(owner), SubmitDataParams{
		ProviderID:          userID,
		ContentHash:         hash,
		DataType:            entity.DataTypeBiometric,
		CollectionTimestamp: e.clock.Now() - 60,
	})
}

func TestRegisterProviderProcessor(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, FeeConfig{})
	env.registerProvider(t)

	assert.Equal(t, []ledger.Event{ProviderRegisteredEvent{
		Owner:       owner,
		UserID:      userID,
		DeviceClass: entity.DeviceClassSensor,
	}}, env.events.Events())

	provider, err := env.repo.GetProvider(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, BaseReputationScore, provider.ReputationScore)

	env.events.Reset()
	_, err = env.processor.RegisterProvider(ctx, ledger.SignedBy(owner), RegisterProviderParams{Owner: owner, UserID: userID})
	assert.ErrorIs(t, err, errs.DuplicateKey)

	_, err = env.processor.RegisterProvider(ctx, ledger.SignedBy(stranger), RegisterProviderParams{Owner: owner, UserID: "user-2"})
	assert.ErrorIs(t, err, errs.InvalidAuthority)

	_, err = env.processor.RegisterProvider(ctx, ledger.SignedBy(owner), RegisterProviderParams{Owner: owner, UserID: "user-2", DeviceClass: 3})
	assert.ErrorIs(t, err, errs.InvalidDeviceClass)
	assert.Empty(t, env.events.Events())
}

func TestSubmitDataRateLimit(t *testing.T) {
	env := newTestEnv(t, FeeConfig{})
	env.registerProvider(t)
	env.events.Reset()

	result, err := env.submit("hash-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.Provider.SubmissionCount)
	assert.Equal(t, uint16(92), result.Provider.ReputationScore)
	assert.Equal(t, []ledger.Event{DataSubmittedEvent{
		Provider:    owner,
		ContentHash: "hash-1",
		DataType:    entity.DataTypeBiometric,
		Timestamp:   940,
	}}, env.events.Events())

	env.clock.Set(1200)
	_, err = env.submit("hash-2")
	assert.ErrorIs(t, err, errs.RateLimitExceeded)

	env.clock.Set(1300)
	result, err = env.submit("hash-2")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), result.Provider.SubmissionCount)
	assert.Equal(t, int64(1300), result.Provider.LastSubmissionTime)

	provider, err := env.repo.GetProvider(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, result.Provider, provider)
}

func TestSubmitDataDuplicate(t *testing.T) {
	env := newTestEnv(t, FeeConfig{})
	env.registerProvider(t)

	_, err := env.submit("hash-1")
	require.NoError(t, err)

	env.clock.Advance(SubmissionRateLimit)
	_, err = env.submit("hash-1")
	assert.ErrorIs(t, err, errs.DuplicateSubmission)
	assert.NotErrorIs(t, err, errs.DuplicateKey)

	// nothing from the failed submission is persisted
	provider, err := env.repo.GetProvider(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), provider.SubmissionCount)
}

func TestSubmitDataAuthorization(t *testing.T) {
	env := newTestEnv(t, FeeConfig{})
	env.registerProvider(t)

	_, err := env.processor.SubmitData(context.Background(), ledger.SignedBy(stranger), SubmitDataParams{
		ProviderID:  userID,
		ContentHash: "hash-1",
	})
	assert.ErrorIs(t, err, errs.InvalidAuthority)

	_, err = env.processor.SubmitData(context.Background(), ledger.SignedBy(owner), SubmitDataParams{
		ProviderID:  "unknown",
		ContentHash: "hash-1",
	})
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestValidateDataProcessor(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, FeeConfig{})
	env.registerProvider(t)
	_, err := env.submit("hash-1")
	require.NoError(t, err)
	env.events.Reset()

	_, err = env.processor.ValidateData(ctx, ledger.SignedBy(owner), ValidateDataParams{ContentHash: "hash-1", QualityScore: 4})
	assert.ErrorIs(t, err, errs.InvalidAuthority)

	_, err = env.processor.ValidateData(ctx, ledger.SignedBy(validator), ValidateDataParams{ContentHash: "hash-1", QualityScore: 5})
	assert.ErrorIs(t, err, errs.InvalidQualityScore)

	result, err := env.processor.ValidateData(ctx, ledger.SignedBy(validator), ValidateDataParams{ContentHash: "hash-1", QualityScore: 4})
	require.NoError(t, err)
	assert.True(t, result.Submission.Validated)
	assert.Equal(t, uint16(102), result.Provider.ReputationScore)
	assert.Equal(t, []ledger.Event{DataValidatedEvent{
		Validator:       validator,
		Provider:        owner,
		ContentHash:     "hash-1",
		QualityScore:    4,
		ReputationScore: 102,
	}}, env.events.Events())

	_, err = env.processor.ValidateData(ctx, ledger.SignedBy(validator), ValidateDataParams{ContentHash: "hash-1", QualityScore: 1})
	assert.ErrorIs(t, err, errs.AlreadyValidated)

	_, err = env.processor.ValidateData(ctx, ledger.SignedBy(validator), ValidateDataParams{ContentHash: "missing", QualityScore: 1})
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestListingLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, FeeConfig{})
	env.registerProvider(t)

	_, err := env.processor.CreateListing(ctx, ledger.SignedBy(stranger), CreateListingParams{
		ProviderID:     userID,
		ListingID:      listingID,
		DataTypes:      []entity.DataType{entity.DataTypeMotion},
		PricePerAccess: 10,
		AccessPeriod:   10,
	})
	assert.ErrorIs(t, err, errs.InvalidAuthority)

	env.createListing(t, 1000)
	_, err = env.processor.CreateListing(ctx, ledger.SignedBy(owner), CreateListingParams{
		ProviderID:     userID,
		ListingID:      listingID,
		DataTypes:      []entity.DataType{entity.DataTypeMotion},
		PricePerAccess: 10,
		AccessPeriod:   10,
	})
	assert.ErrorIs(t, err, errs.DuplicateKey)

	_, err = env.processor.DeactivateListing(ctx, ledger.SignedBy(stranger), listingID)
	assert.ErrorIs(t, err, errs.InvalidAuthority)

	env.events.Reset()
	listing, err := env.processor.DeactivateListing(ctx, ledger.SignedBy(owner), listingID)
	require.NoError(t, err)
	assert.False(t, listing.Active)
	assert.Equal(t, []ledger.Event{DataListingDeactivatedEvent{Provider: owner, ListingID: listingID}}, env.events.Events())

	_, err = env.processor.DeactivateListing(ctx, ledger.SignedBy(owner), listingID)
	assert.ErrorIs(t, err, errs.ListingInactive)

	env.fund(t, buyer, 1000)
	_, err = env.processor.PurchaseAccess(ctx, ledger.SignedBy(buyer), PurchaseAccessParams{Buyer: buyer, ListingID: listingID})
	assert.ErrorIs(t, err, errs.ListingInactive)
	assert.Equal(t, uint64(1000), env.balance(t, buyer))
}

func TestPurchaseAccessProviderOnly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, FeeConfig{Policy: FeePolicyProviderOnly})
	env.registerProvider(t)
	env.createListing(t, 1000)
	env.fund(t, buyer, 5000)
	env.events.Reset()

	result, err := env.processor.PurchaseAccess(ctx, ledger.SignedBy(buyer), PurchaseAccessParams{Buyer: buyer, ListingID: listingID})
	require.NoError(t, err)
	assert.Equal(t, FeeShares{Platform: 150, TokenHolders: 150, Provider: 700}, result.Shares)
	assert.Equal(t, uint64(4300), env.balance(t, buyer))
	assert.Equal(t, uint64(700), env.balance(t, owner))

	listing, err := env.repo.GetListing(ctx, listingID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), listing.PurchaseCount)
	provider, err := env.repo.GetProvider(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, uint64(700), provider.TotalRewards)

	assert.Equal(t, []ledger.Event{DataAccessPurchasedEvent{
		Buyer:      buyer,
		Provider:   owner,
		ListingID:  listingID,
		AmountPaid: 1000,
		ExpiresAt:  1000 + 3600,
	}}, env.events.Events())

	_, err = env.processor.PurchaseAccess(ctx, ledger.SignedBy(buyer), PurchaseAccessParams{Buyer: buyer, ListingID: listingID})
	assert.ErrorIs(t, err, errs.AccessAlreadyPurchased)
	assert.Equal(t, uint64(4300), env.balance(t, buyer))

	env.clock.Set(1000 + 3600)
	status, err := env.processor.CheckAccess(ctx, buyer, listingID)
	require.NoError(t, err)
	assert.True(t, status.Active)

	env.clock.Advance(1)
	status, err = env.processor.CheckAccess(ctx, buyer, listingID)
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.True(t, status.Grant.Valid)

	_, err = env.processor.CheckAccess(ctx, stranger, listingID)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestPurchaseAccessThreeWay(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, FeeConfig{Policy: FeePolicyThreeWay, PlatformTreasury: treasury, HolderPool: pool})
	env.registerProvider(t)
	env.createListing(t, 999)
	env.fund(t, buyer, 5000)

	_, err := env.processor.PurchaseAccess(ctx, ledger.SignedBy(buyer), PurchaseAccessParams{Buyer: buyer, ListingID: listingID})
	require.NoError(t, err)

	assert.Equal(t, uint64(4001), env.balance(t, buyer))
	assert.Equal(t, uint64(701), env.balance(t, owner))
	assert.Equal(t, uint64(149), env.balance(t, treasury))
	assert.Equal(t, uint64(149), env.balance(t, pool))

	provider, err := env.repo.GetProvider(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, uint64(701), provider.TotalRewards)
}

func TestPurchaseAccessFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("insufficient funds leaves no grant", func(t *testing.T) {
		env := newTestEnv(t, FeeConfig{})
		env.registerProvider(t)
		env.createListing(t, 1000)
		env.fund(t, buyer, 100)
		env.events.Reset()

		_, err := env.processor.PurchaseAccess(ctx, ledger.SignedBy(buyer), PurchaseAccessParams{Buyer: buyer, ListingID: listingID})
		assert.ErrorIs(t, err, errs.InsufficientFunds)
		assert.Empty(t, env.events.Events())

		_, err = env.processor.CheckAccess(ctx, buyer, listingID)
		assert.ErrorIs(t, err, errs.NotFound)
		listing, err := env.repo.GetListing(ctx, listingID)
		require.NoError(t, err)
		assert.Zero(t, listing.PurchaseCount)
	})

	t.Run("unfunded provider cannot buy own listing", func(t *testing.T) {
		env := newTestEnv(t, FeeConfig{})
		env.registerProvider(t)
		env.createListing(t, 1000)
		env.events.Reset()

		_, err := env.processor.PurchaseAccess(ctx, ledger.SignedBy(owner), PurchaseAccessParams{Buyer: owner, ListingID: listingID})
		assert.ErrorIs(t, err, errs.InsufficientFunds)
		assert.Empty(t, env.events.Events())

		_, err = env.processor.CheckAccess(ctx, owner, listingID)
		assert.ErrorIs(t, err, errs.NotFound)
		provider, err := env.repo.GetProvider(ctx, userID)
		require.NoError(t, err)
		assert.Zero(t, provider.TotalRewards)
	})

	t.Run("funded provider buying own listing keeps balance", func(t *testing.T) {
		env := newTestEnv(t, FeeConfig{})
		env.registerProvider(t)
		env.createListing(t, 1000)
		env.fund(t, owner, 1000)

		_, err := env.processor.PurchaseAccess(ctx, ledger.SignedBy(owner), PurchaseAccessParams{Buyer: owner, ListingID: listingID})
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), env.balance(t, owner))
	})

	t.Run("buyer must sign", func(t *testing.T) {
		env := newTestEnv(t, FeeConfig{})
		_, err := env.processor.PurchaseAccess(ctx, ledger.SignedBy(stranger), PurchaseAccessParams{Buyer: buyer, ListingID: listingID})
		assert.ErrorIs(t, err, errs.InvalidAuthority)
	})

	t.Run("no utility mint", func(t *testing.T) {
		env := newTestEnv(t, FeeConfig{})
		env.processor.settings.UtilityMint = ""
		_, err := env.processor.PurchaseAccess(ctx, ledger.SignedBy(buyer), PurchaseAccessParams{Buyer: buyer, ListingID: listingID})
		assert.ErrorIs(t, err, errs.Unsupported)
	})

	t.Run("unknown listing", func(t *testing.T) {
		env := newTestEnv(t, FeeConfig{})
		_, err := env.processor.PurchaseAccess(ctx, ledger.SignedBy(buyer), PurchaseAccessParams{Buyer: buyer, ListingID: "missing"})
		assert.ErrorIs(t, err, errs.NotFound)
	})
}
