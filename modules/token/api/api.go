package api

import (
	"context"

	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/internal/config"
	"github.com/gaze-network/bodydfi-ledger/modules/token"
	"github.com/gaze-network/bodydfi-ledger/modules/token/api/httphandler"
	"github.com/gaze-network/bodydfi-ledger/modules/token/repository/ledgerstore"
	"github.com/gaze-network/bodydfi-ledger/modules/token/usecase"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/samber/do/v2"
)

// New wires the token module over the shared ledger store.
func New(injector do.Injector) (common.APIHandler, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	store := do.MustInvoke[ledger.Store](injector)
	tokens := do.MustInvoke[ledger.TokenProgram](injector)
	clock := do.MustInvoke[ledger.Clock](injector)
	emitter := do.MustInvoke[ledger.Emitter](injector)

	repo := ledgerstore.NewRepository(store, tokens)
	processor := token.NewProcessor(repo, clock, emitter)
	handler := httphandler.New(conf.Token, processor, usecase.New(repo))

	logger.InfoContext(ctx, "Token module initialized")
	return handler, nil
}
