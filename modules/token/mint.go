package token

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/token/internal/entity"
	"github.com/samber/lo"
)

type InitializeMintParams struct {
	MintID    types.MintID
	Authority types.Identity
	Name      string
	Symbol    string
	URI       string
	Decimals  *uint8 // DefaultDecimals when nil
}

func (p InitializeMintParams) validate() error {
	var errList []error
	if strings.TrimSpace(p.MintID.String()) == "" {
		errList = append(errList, errors.New("mint id is required"))
	}
	if p.Authority.IsZero() {
		errList = append(errList, errors.New("authority is required"))
	}
	if p.Symbol == "" {
		errList = append(errList, errors.New("symbol is required"))
	}
	if err := errors.Join(errList...); err != nil {
		return errors.Wrap(errs.InvalidArgument, err.Error())
	}
	return nil
}

// NewUtilityMint returns the initial state of a reward mint: no supply, no cap and an hourly cooldown.
func NewUtilityMint(params InitializeMintParams) (*entity.TokenMintState, error) {
	if err := params.validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	return &entity.TokenMintState{
		MintID:         params.MintID,
		Authority:      params.Authority,
		Name:           params.Name,
		Symbol:         params.Symbol,
		URI:            params.URI,
		Decimals:       lo.FromPtrOr(params.Decimals, DefaultDecimals),
		IsUtilityToken: true,
		MintCooldown:   UtilityMintCooldown,
	}, nil
}

// NewGovernanceMint returns the state of a fixed-supply mint whose whole supply is issued at creation.
// A zero totalSupply selects DefaultGovernanceTotalSupply.
func NewGovernanceMint(params InitializeMintParams, totalSupply uint64) (*entity.TokenMintState, error) {
	if err := params.validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if totalSupply == 0 {
		totalSupply = DefaultGovernanceTotalSupply
	}
	return &entity.TokenMintState{
		MintID:            params.MintID,
		Authority:         params.Authority,
		Name:              params.Name,
		Symbol:            params.Symbol,
		URI:               params.URI,
		Decimals:          lo.FromPtrOr(params.Decimals, DefaultDecimals),
		TotalSupply:       totalSupply,
		CirculatingSupply: totalSupply,
		MintCap:           totalSupply,
	}, nil
}
