package token

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/core/types"
	"github.com/gaze-network/bodydfi-ledger/modules/token/datagateway"
	"github.com/gaze-network/bodydfi-ledger/modules/token/internal/entity"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
)

type Processor struct {
	tokenDg datagateway.TokenDataGateway
	clock   ledger.Clock
	emitter ledger.Emitter
}

func NewProcessor(tokenDg datagateway.TokenDataGateway, clock ledger.Clock, emitter ledger.Emitter) *Processor {
	return &Processor{
		tokenDg: tokenDg,
		clock:   clock,
		emitter: emitter,
	}
}

// execute runs fn in a single transaction and emits the returned events once it has committed.
func (p *Processor) execute(ctx context.Context, fn func(dgTx datagateway.TokenDataGatewayWithTx) ([]ledger.Event, error)) error {
	dgTx, err := p.tokenDg.BeginTokenTx(ctx)
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

func (p *Processor) InitializeUtilityMint(ctx context.Context, auth ledger.Authorization, params InitializeMintParams) (*entity.TokenMintState, error) {
	if !auth.Controls(params.Authority) {
		return nil, errors.Wrap(errs.InvalidAuthority, "caller does not control mint authority")
	}
	mint, err := NewUtilityMint(params)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := p.initializeMint(ctx, mint); err != nil {
		return nil, errors.WithStack(err)
	}
	return mint, nil
}

func (p *Processor) InitializeGovernanceMint(ctx context.Context, auth ledger.Authorization, params InitializeMintParams, totalSupply uint64) (*entity.TokenMintState, error) {
	if !auth.Controls(params.Authority) {
		return nil, errors.Wrap(errs.InvalidAuthority, "caller does not control mint authority")
	}
	mint, err := NewGovernanceMint(params, totalSupply)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := p.initializeMint(ctx, mint); err != nil {
		return nil, errors.WithStack(err)
	}
	return mint, nil
}

func (p *Processor) initializeMint(ctx context.Context, mint *entity.TokenMintState) error {
	err := p.execute(ctx, func(dgTx datagateway.TokenDataGatewayWithTx) ([]ledger.Event, error) {
		if err := dgTx.CreateMint(ctx, mint); err != nil {
			return nil, errors.WithStack(err)
		}
		if mint.CirculatingSupply > 0 {
			if err := dgTx.MintTo(ctx, mint.MintID, mint.Authority, mint.CirculatingSupply); err != nil {
				return nil, errors.Wrap(err, "failed to issue initial supply")
			}
		}
		return []ledger.Event{MintInitializedEvent{
			MintID:         mint.MintID,
			Authority:      mint.Authority,
			Name:           mint.Name,
			Symbol:         mint.Symbol,
			Decimals:       mint.Decimals,
			TotalSupply:    mint.TotalSupply,
			IsUtilityToken: mint.IsUtilityToken,
		}}, nil
	})
	return errors.WithStack(err)
}

type RewardProviderParams struct {
	MintID           types.MintID
	Provider         types.Identity
	BaseAmount       uint64
	DataQualityScore uint8
}

type RewardProviderResult struct {
	Mint   *entity.TokenMintState
	Amount uint64
}

// RewardProvider mints a quality-scaled reward to a provider. Only the mint authority may reward.
func (p *Processor) RewardProvider(ctx context.Context, auth ledger.Authorization, params RewardProviderParams) (*RewardProviderResult, error) {
	if params.Provider.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "provider is required")
	}
	now := p.clock.Now()

	var result RewardProviderResult
	err := p.execute(ctx, func(dgTx datagateway.TokenDataGatewayWithTx) ([]ledger.Event, error) {
		mint, err := dgTx.GetMint(ctx, params.MintID)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if !mint.IsUtilityToken {
			return nil, errors.Wrapf(errs.InvalidMint, "mint %q is not a utility token", mint.MintID)
		}
		if !auth.Controls(mint.Authority) {
			return nil, errors.Wrap(errs.InvalidAuthority, "caller does not control mint authority")
		}

		updated, amount, err := Reward(*mint, params.BaseAmount, params.DataQualityScore, now)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.UpdateMint(ctx, updated); err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.MintTo(ctx, updated.MintID, params.Provider, amount); err != nil {
			return nil, errors.Wrap(err, "failed to mint reward")
		}

		result = RewardProviderResult{Mint: updated, Amount: amount}
		return []ledger.Event{RewardEvent{
			MintID:           updated.MintID,
			Provider:         params.Provider,
			Amount:           amount,
			DataQualityScore: params.DataQualityScore,
			Timestamp:        now,
		}}, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &result, nil
}

type TransferParams struct {
	MintID types.MintID
	From   types.Identity
	To     types.Identity
	Amount uint64
}

func (p *Processor) Transfer(ctx context.Context, auth ledger.Authorization, params TransferParams) error {
	if !auth.Controls(params.From) {
		return errors.Wrap(errs.InvalidAuthority, "caller does not control source account")
	}
	if params.Amount == 0 {
		return errors.Wrap(errs.InvalidArgument, "amount must be positive")
	}
	if params.To.IsZero() {
		return errors.Wrap(errs.InvalidArgument, "destination is required")
	}

	err := p.execute(ctx, func(dgTx datagateway.TokenDataGatewayWithTx) ([]ledger.Event, error) {
		if _, err := dgTx.GetMint(ctx, params.MintID); err != nil {
			return nil, errors.WithStack(err)
		}
		if err := dgTx.Transfer(ctx, params.MintID, params.From, params.To, params.Amount); err != nil {
			return nil, errors.WithStack(err)
		}
		return []ledger.Event{TransferEvent{
			MintID: params.MintID,
			From:   params.From,
			To:     params.To,
			Amount: params.Amount,
		}}, nil
	})
	return errors.WithStack(err)
}
