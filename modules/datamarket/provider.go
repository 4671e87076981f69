package datamarket

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/internal/entity"
)

type RegisterProviderParams struct {
	Owner       types.Identity
	UserID      string
	DeviceClass entity.DeviceClass
}

// RegisterProvider returns a new provider with base reputation and no history.
func RegisterProvider(params RegisterProviderParams) (*entity.DataProvider, error) {
	if !params.DeviceClass.IsValid() {
		return nil, errors.Wrapf(errs.InvalidDeviceClass, "device class %d", params.DeviceClass)
	}
	if strings.TrimSpace(params.UserID) == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "user id is required")
	}
	if params.Owner.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "owner is required")
	}
	return &entity.DataProvider{
		UserID:          params.UserID,
		Owner:           params.Owner,
		DeviceClass:     params.DeviceClass,
		ReputationScore: BaseReputationScore,
	}, nil
}
