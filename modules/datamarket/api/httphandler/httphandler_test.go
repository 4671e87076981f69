package httphandler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/internal/store/inmem"
	"github.com/gaze-network/bodydfi-ledger/internal/tokenledger"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/repository/ledgerstore"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/usecase"
	"github.com/gaze-network/bodydfi-ledger/pkg/crypto"
	"github.com/gaze-network/bodydfi-ledger/pkg/errorhandler"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const utilityMintID types.MintID = "bdfi"

type signer struct {
	client   *crypto.Client
	identity types.Identity
}

func newSigner(t *testing.T) signer {
	t.Helper()
	client, err := crypto.Generate()
	require.NoError(t, err)
	return signer{client: client, identity: types.NewIdentity(client.PublicKey())}
}

type testApp struct {
	*fiber.App
	store  *inmem.Store
	tokens *tokenledger.Program
	clock  *ledger.ManualClock
}

func newTestApp(t *testing.T, validator types.Identity) *testApp {
	t.Helper()
	store := inmem.New()
	tokens := tokenledger.New()
	clock := ledger.NewManualClock(10_000)
	repo := ledgerstore.NewRepository(store, tokens)
	processor := datamarket.NewProcessor(repo, datamarket.Settings{
		Fees:        datamarket.FeeConfig{Policy: datamarket.FeePolicyProviderOnly},
		Validators:  []types.Identity{validator},
		UtilityMint: utilityMintID,
	}, clock, ledger.NewRecorder())

	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.NewHTTPErrorHandler()})
	app.Use(requestcontext.New(requestcontext.WithSigner()))
	require.NoError(t, New(processor, usecase.New(repo)).Mount(app))
	return &testApp{App: app, store: store, tokens: tokens, clock: clock}
}

func (a *testApp) fund(t *testing.T, to types.Identity, amount uint64) {
	t.Helper()
	ctx := context.Background()
	tx, err := a.store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, a.tokens.Mint(ctx, tx, utilityMintID, to, amount))
	require.NoError(t, tx.Commit(ctx))
}

func doRequest[T any](t *testing.T, app *testApp, method, path string, from *signer, body any) (int, common.HttpResponse[T]) {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if from != nil {
		signature, err := from.client.Sign(raw)
		require.NoError(t, err)
		req.Header.Set(requestcontext.HeaderIdentity, from.identity.String())
		req.Header.Set(requestcontext.HeaderSignature, signature)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result common.HttpResponse[T]
	if resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(respBody, &result), string(respBody))
	}
	return resp.StatusCode, result
}

func TestDatamarketRoutes(t *testing.T) {
	owner := newSigner(t)
	buyer := newSigner(t)
	validator := newSigner(t)
	app := newTestApp(t, validator.identity)

	status, provider := doRequest[providerResult](t, app, http.MethodPost, "/v1/datamarket/providers", &owner, registerProviderRequest{
		UserId:      "user-1",
		DeviceClass: 1,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, owner.identity.String(), provider.Result.Owner)
	assert.Equal(t, "pro", provider.Result.DeviceClassName)
	assert.Equal(t, uint16(100), provider.Result.ReputationScore)

	t.Run("unsigned register is forbidden", func(t *testing.T) {
		status, _ := doRequest[providerResult](t, app, http.MethodPost, "/v1/datamarket/providers", nil, registerProviderRequest{UserId: "user-2"})
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("submit and validate", func(t *testing.T) {
		status, submitted := doRequest[submitDataResult](t, app, http.MethodPost, "/v1/datamarket/submissions", &owner, submitDataRequest{
			ProviderId:          "user-1",
			ContentHash:         "QmHash1",
			DataType:            2,
			CollectionTimestamp: 9_000,
		})
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "pressure", submitted.Result.Submission.DataTypeName)
		assert.Equal(t, uint16(92), submitted.Result.Provider.ReputationScore)

		status, _ = doRequest[submitDataResult](t, app, http.MethodPost, "/v1/datamarket/submissions", &owner, submitDataRequest{
			ProviderId:  "user-1",
			ContentHash: "QmHash2",
		})
		assert.Equal(t, http.StatusTooManyRequests, status)

		path := "/v1/datamarket/submissions/QmHash1/validate"
		status, _ = doRequest[submitDataResult](t, app, http.MethodPost, path, &owner, validateDataRequest{QualityScore: 4})
		assert.Equal(t, http.StatusForbidden, status)

		status, validated := doRequest[submitDataResult](t, app, http.MethodPost, path, &validator, validateDataRequest{QualityScore: 4})
		require.Equal(t, http.StatusOK, status)
		assert.True(t, validated.Result.Submission.Validated)

		status, _ = doRequest[submitDataResult](t, app, http.MethodPost, path, &validator, validateDataRequest{QualityScore: 4})
		assert.Equal(t, http.StatusConflict, status)

		status, fetched := doRequest[submissionResult](t, app, http.MethodGet, "/v1/datamarket/submissions/QmHash1", nil, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, uint8(4), fetched.Result.QualityScore)
	})

	t.Run("listing and purchase", func(t *testing.T) {
		status, _ := doRequest[listingResult](t, app, http.MethodPost, "/v1/datamarket/listings", &owner, createListingRequest{
			ProviderId:     "user-1",
			ListingId:      "listing-1",
			DataTypes:      []uint8{0, 3},
			PricePerAccess: 0,
			AccessPeriod:   60,
		})
		assert.Equal(t, http.StatusBadRequest, status)

		status, listing := doRequest[listingResult](t, app, http.MethodPost, "/v1/datamarket/listings", &owner, createListingRequest{
			ProviderId:     "user-1",
			ListingId:      "listing-1",
			DataTypes:      []uint8{0, 3},
			PricePerAccess: 1000,
			AccessPeriod:   60,
		})
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, []string{"motion", "muscle"}, listing.Result.DataTypeNames)

		status, _ = doRequest[purchaseAccessResult](t, app, http.MethodPost, "/v1/datamarket/listings/listing-1/purchase", &buyer, nil)
		assert.Equal(t, http.StatusConflict, status, "buyer has no funds")

		app.fund(t, buyer.identity, 1000)
		status, purchase := doRequest[purchaseAccessResult](t, app, http.MethodPost, "/v1/datamarket/listings/listing-1/purchase", &buyer, nil)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, uint64(700), purchase.Result.ProviderShare)
		assert.Equal(t, uint64(1), purchase.Result.PurchaseCount)

		accessPath := "/v1/datamarket/access/" + buyer.identity.String() + "/listing-1"
		status, access := doRequest[checkAccessResult](t, app, http.MethodGet, accessPath, nil, nil)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, access.Result.Active)

		app.clock.Advance(61)
		status, access = doRequest[checkAccessResult](t, app, http.MethodGet, accessPath, nil, nil)
		require.Equal(t, http.StatusOK, status)
		assert.False(t, access.Result.Active)

		status, _ = doRequest[listingResult](t, app, http.MethodPost, "/v1/datamarket/listings/listing-1/deactivate", &buyer, nil)
		assert.Equal(t, http.StatusForbidden, status)

		status, _ = doRequest[listingResult](t, app, http.MethodPost, "/v1/datamarket/listings/listing-1/deactivate", &owner, nil)
		require.Equal(t, http.StatusOK, status)

		status, listings := doRequest[[]listingResult](t, app, http.MethodGet, "/v1/datamarket/listings", nil, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Empty(t, *listings.Result)

		status, listings = doRequest[[]listingResult](t, app, http.MethodGet, "/v1/datamarket/listings?includeInactive=true", nil, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, *listings.Result, 1)
	})

	t.Run("unknown provider", func(t *testing.T) {
		status, _ := doRequest[providerResult](t, app, http.MethodGet, "/v1/datamarket/providers/nobody", nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
