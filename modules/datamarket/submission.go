package datamarket

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/safemath"
)

type SubmitDataParams struct {
	ProviderID          string
	ContentHash         string
	DataType            entity.DataType
	CollectionTimestamp int64
	Metadata            string
}

// SubmitData records a submission for provider at now and scores it with PendingQualityScore.
// Uniqueness of the content hash is left to the ledger.
func SubmitData(provider entity.DataProvider, params SubmitDataParams, now int64) (*entity.DataProvider, *entity.DataSubmission, error) {
	if !params.DataType.IsValid() {
		return nil, nil, errors.Wrapf(errs.InvalidDataType, "data type %d", params.DataType)
	}
	if params.CollectionTimestamp > now {
		return nil, nil, errors.Wrapf(errs.InvalidTimestamp, "collected at %d, now %d", params.CollectionTimestamp, now)
	}
	elapsed, err := safemath.SubInt64(now, provider.LastSubmissionTime)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	if elapsed < SubmissionRateLimit {
		return nil, nil, errors.Wrapf(errs.RateLimitExceeded, "%d seconds remaining", SubmissionRateLimit-elapsed)
	}
	if strings.TrimSpace(params.ContentHash) == "" {
		return nil, nil, errors.Wrap(errs.InvalidArgument, "content hash is required")
	}

	provider.SubmissionCount, err = safemath.Add(provider.SubmissionCount, 1)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	provider.LastSubmissionTime = now

	updated, err := UpdateReputation(provider, PendingQualityScore)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return updated, &entity.DataSubmission{
		ContentHash:         params.ContentHash,
		ProviderID:          provider.UserID,
		Provider:            provider.Owner,
		DataType:            params.DataType,
		CollectionTimestamp: params.CollectionTimestamp,
		Metadata:            params.Metadata,
	}, nil
}

// ValidateData assigns the validated quality to submission and folds it into the provider's reputation
// a second time; the pending score from SubmitData stays counted.
func ValidateData(submission entity.DataSubmission, provider entity.DataProvider, quality uint8) (*entity.DataSubmission, *entity.DataProvider, error) {
	if quality > MaxQualityScore {
		return nil, nil, errors.Wrapf(errs.InvalidQualityScore, "quality score %d", quality)
	}
	if submission.Validated {
		return nil, nil, errors.Wrapf(errs.AlreadyValidated, "submission %q", submission.ContentHash)
	}

	updated, err := UpdateReputation(provider, quality)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	submission.QualityScore = quality
	submission.Validated = true
	return &submission, updated, nil
}
