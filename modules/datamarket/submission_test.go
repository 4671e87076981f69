package datamarket

import (
	"testing"

	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T) entity.DataProvider {
	t.Helper()
	provider, err := RegisterProvider(RegisterProviderParams{
		Owner:       "owner",
		UserID:      "user-1",
		DeviceClass: entity.DeviceClassSensor,
	})
	require.NoError(t, err)
	return *provider
}

func TestRegisterProvider(t *testing.T) {
	provider := newProvider(t)
	assert.Equal(t, BaseReputationScore, provider.ReputationScore)
	assert.Zero(t, provider.SubmissionCount)
	assert.Zero(t, provider.LastSubmissionTime)
	assert.Zero(t, provider.TotalRewards)
	assert.Zero(t, provider.AvgQualityScore)

	for _, class := range []entity.DeviceClass{entity.DeviceClassPro, entity.DeviceClassMedical} {
		_, err := RegisterProvider(RegisterProviderParams{Owner: "owner", UserID: "user", DeviceClass: class})
		assert.NoError(t, err, class.String())
	}

	_, err := RegisterProvider(RegisterProviderParams{Owner: "owner", UserID: "user", DeviceClass: 3})
	assert.ErrorIs(t, err, errs.InvalidDeviceClass)

	_, err = RegisterProvider(RegisterProviderParams{Owner: "owner", DeviceClass: entity.DeviceClassSensor})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestSubmitData(t *testing.T) {
	params := SubmitDataParams{
		ProviderID:          "user-1",
		ContentHash:         "QmHash",
		DataType:            entity.DataTypeBiometric,
		CollectionTimestamp: 900,
		Metadata:            `{"hr":72}`,
	}

	t.Run("first submission", func(t *testing.T) {
		provider := newProvider(t)
		updated, submission, err := SubmitData(provider, params, 1000)
		require.NoError(t, err)

		assert.Equal(t, uint64(1), updated.SubmissionCount)
		assert.Equal(t, int64(1000), updated.LastSubmissionTime)
		assert.Equal(t, uint8(1), updated.AvgQualityScore)
		assert.Equal(t, uint16(92), updated.ReputationScore)

		assert.Equal(t, "QmHash", submission.ContentHash)
		assert.Equal(t, provider.Owner, submission.Provider)
		assert.Zero(t, submission.QualityScore)
		assert.False(t, submission.Validated)
	})

	t.Run("rate limit", func(t *testing.T) {
		provider := newProvider(t)
		provider.LastSubmissionTime = 1000

		_, _, err := SubmitData(provider, params, 1200)
		assert.ErrorIs(t, err, errs.RateLimitExceeded)

		_, _, err = SubmitData(provider, params, 1299)
		assert.ErrorIs(t, err, errs.RateLimitExceeded)

		_, _, err = SubmitData(provider, params, 1300)
		assert.NoError(t, err)
	})

	t.Run("validation order", func(t *testing.T) {
		provider := newProvider(t)
		provider.LastSubmissionTime = 1000

		invalid := params
		invalid.DataType = 5
		invalid.CollectionTimestamp = 2000
		_, _, err := SubmitData(provider, invalid, 1100)
		assert.ErrorIs(t, err, errs.InvalidDataType)

		invalid.DataType = entity.DataTypeMedical
		_, _, err = SubmitData(provider, invalid, 1100)
		assert.ErrorIs(t, err, errs.InvalidTimestamp)

		invalid.CollectionTimestamp = 1100
		_, _, err = SubmitData(provider, invalid, 1100)
		assert.ErrorIs(t, err, errs.RateLimitExceeded)
	})

	t.Run("empty hash", func(t *testing.T) {
		invalid := params
		invalid.ContentHash = " "
		_, _, err := SubmitData(newProvider(t), invalid, 1000)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestValidateData(t *testing.T) {
	provider := newProvider(t)
	provider, submission := func() (entity.DataProvider, entity.DataSubmission) {
		p, s, err := SubmitData(provider, SubmitDataParams{ContentHash: "QmHash", CollectionTimestamp: 1000}, 1000)
		require.NoError(t, err)
		return *p, *s
	}()

	validated, updated, err := ValidateData(submission, provider, 4)
	require.NoError(t, err)
	assert.True(t, validated.Validated)
	assert.Equal(t, uint8(4), validated.QualityScore)
	// (1*1 + 4) / 2 = 2 with the pending score still counted
	assert.Equal(t, uint8(2), updated.AvgQualityScore)
	assert.Equal(t, uint16(102), updated.ReputationScore)
	assert.Equal(t, provider.SubmissionCount, updated.SubmissionCount)

	_, _, err = ValidateData(*validated, *updated, 3)
	assert.ErrorIs(t, err, errs.AlreadyValidated)

	_, _, err = ValidateData(submission, provider, 5)
	assert.ErrorIs(t, err, errs.InvalidQualityScore)
}
