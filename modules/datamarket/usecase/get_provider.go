package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
)

func (u *Usecase) GetProvider(ctx context.Context, userID string) (*entity.DataProvider, error) {
	provider, err := u.datamarketDg.GetProvider(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get provider")
	}
	return provider, nil
}

func (u *Usecase) GetSubmission(ctx context.Context, contentHash string) (*entity.DataSubmission, error) {
	submission, err := u.datamarketDg.GetSubmission(ctx, contentHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get submission")
	}
	return submission, nil
}
