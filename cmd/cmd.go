package cmd

import (
	"context"
	"log/slog"

	"github.com/gaze-network/bodydfi-ledger/core/constants"
	"github.com/gaze-network/bodydfi-ledger/internal/config"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:          constants.AppName,
	Long:         `BodyDFi ledger: wearable data provider registry, data marketplace, governance and token minting`,
	SilenceUsage: true,
}

func init() {
	var configFile string

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g.  `./config.yaml`")
	flags.String("store", "", "ledger store backend, E.g. `memory`, `badger` or `postgres`")

	// Bind flags to configuration
	config.BindPFlag("store.backend", flags.Lookup("store"))

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		// Initialize configuration
		config := config.Parse(configFile)

		// Initialize logger
		if err := logger.Init(config.Logger); err != nil {
			logger.Panic("Failed to initialize logger: %v", slogx.Error(err), slog.Any("config", config.Logger))
		}
	})
}

func Execute(ctx context.Context) {
	// Register sub-commands
	cmd.AddCommand(
		NewVersionCommand(),
		NewRunCommand(),
		NewMigrateCommand(),
		NewExportCommand(),
		NewGenerateKeypairCommand(),
	)

	// Execute command
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.PanicContext(ctx, "Failed to execute root command", slogx.Error(err))
	}
}
