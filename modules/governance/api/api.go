package api

import (
	"context"

	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/internal/config"
	"github.com/gaze-network/bodydfi-ledger/modules/governance"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/api/httphandler"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/repository/ledgerstore"
	"github.com/gaze-network/bodydfi-ledger/modules/governance/usecase"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
	"github.com/samber/do/v2"
)

// New wires the governance module over the shared ledger store.
func New(injector do.Injector) (common.APIHandler, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	store := do.MustInvoke[ledger.Store](injector)
	tokens := do.MustInvoke[ledger.TokenProgram](injector)
	clock := do.MustInvoke[ledger.Clock](injector)
	emitter := do.MustInvoke[ledger.Emitter](injector)

	settings := governance.NewSettings(conf.Governance)
	if settings.GovernanceMint == "" {
		logger.WarnContext(ctx, "No governance mint configured, proposals and votes are disabled")
	}

	repo := ledgerstore.NewRepository(store, tokens)
	processor := governance.NewProcessor(repo, settings, clock, emitter)
	handler := httphandler.New(processor, usecase.New(repo))

	logger.InfoContext(ctx, "Governance module initialized",
		slogx.Uint64("min_tokens_to_propose", settings.Rules.MinTokensToPropose),
		slogx.Uint64("default_voting_period", settings.Rules.DefaultVotingPeriod),
	)
	return handler, nil
}
