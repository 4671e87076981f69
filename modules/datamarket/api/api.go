package api

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/internal/config"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/api/httphandler"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/repository/ledgerstore"
	"github.com/gaze-network/bodydfi-ledger/modules/datamarket/usecase"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
	"github.com/samber/do/v2"
)

// New wires the datamarket module over the shared ledger store.
func New(injector do.Injector) (common.APIHandler, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	store := do.MustInvoke[ledger.Store](injector)
	tokens := do.MustInvoke[ledger.TokenProgram](injector)
	clock := do.MustInvoke[ledger.Clock](injector)
	emitter := do.MustInvoke[ledger.Emitter](injector)

	settings, err := datamarket.NewSettings(conf.Datamarket)
	if err != nil {
		return nil, errors.Wrap(err, "invalid datamarket config")
	}
	if settings.UtilityMint == "" {
		logger.WarnContext(ctx, "No utility mint configured, access purchases are disabled")
	}

	repo := ledgerstore.NewRepository(store, tokens)
	processor := datamarket.NewProcessor(repo, settings, clock, emitter)
	handler := httphandler.New(processor, usecase.New(repo))

	logger.InfoContext(ctx, "Datamarket module initialized",
		slogx.String("fee_policy", string(settings.Fees.Policy)),
		slogx.Int("validators", len(settings.Validators)),
	)
	return handler, nil
}
