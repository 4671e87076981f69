package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common"
	"github.com/gaze-network/bodydfi-ledger/core/constants"
	"github.com/gaze-network/bodydfi-ledger/core/ledger"
	"github.com/gaze-network/bodydfi-ledger/internal/config"
	"github.com/gaze-network/bodydfi-ledger/internal/store"
	"github.com/gaze-network/bodydfi-ledger/internal/tokenledger"
	datamarketapi "github.com/gaze-network/bodydfi-ledger/modules/datamarket/api"
	governanceapi "github.com/gaze-network/bodydfi-ledger/modules/governance/api"
	tokenapi "github.com/gaze-network/bodydfi-ledger/modules/token/api"
	"github.com/gaze-network/bodydfi-ledger/pkg/automaxprocs"
	"github.com/gaze-network/bodydfi-ledger/pkg/errorhandler"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestlogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Register Modules
var Modules = do.Package(
	do.LazyNamed(common.ModuleToken.String(), tokenapi.New),
	do.LazyNamed(common.ModuleDataMarket.String(), datamarketapi.New),
	do.LazyNamed(common.ModuleGovernance.String(), governanceapi.New),
)

func NewRunCommand() *cobra.Command {
	// Create command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start bodydfi ledger API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return runHandler(cmd, args)
		},
	}

	// Add local flags
	flags := runCmd.Flags()
	flags.String("modules", "", "Enable specific modules to run. E.g. `token,datamarket`. Default is all modules")

	// Bind flags to configuration
	config.BindPFlag("enable_modules", flags.Lookup("modules"))

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)
	do.ProvideValue[ledger.Clock](injector, ledger.SystemClock{})
	do.ProvideValue[ledger.Emitter](injector, ledger.LogEmitter{})
	do.ProvideValue[ledger.TokenProgram](injector, tokenledger.New())

	// Initialize ledger store
	do.Provide(injector, func(i do.Injector) (ledger.Store, error) {
		conf := do.MustInvoke[config.Config](i)

		start := time.Now()
		s, err := store.New(ctx, conf.Store)
		if err != nil {
			return nil, errors.Wrap(err, "can't open ledger store")
		}
		logger.InfoContext(ctx, "Ledger store is ready", slog.Duration("latency", time.Since(start)))
		return s, nil
	})

	// Initialize HTTP server
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		app := fiber.New(fiber.Config{
			AppName:      constants.AppName,
			ErrorHandler: errorhandler.NewHTTPErrorHandler(),
		})
		app.
			Use(favicon.New()).
			Use(cors.New()).
			Use(requestid.New(requestid.Config{
				Generator: uuid.NewString,
			})).
			Use(requestcontext.New(
				requestcontext.WithRequestId(),
				requestcontext.WithClientIP(conf.HTTPServer.RequestIP),
				requestcontext.WithSigner(),
			)).
			Use(requestlogger.New(conf.HTTPServer.Logger)).
			Use(fiberrecover.New(fiberrecover.Config{
				EnableStackTrace: true,
				StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
					buf := make([]byte, 1024) // bufLen = 1024
					buf = buf[:runtime.Stack(buf, false)]
					logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", errors.Errorf("panic: %v", e), slog.String("stacktrace", string(buf)))
				},
			})).
			Use(compress.New(compress.Config{
				Level: compress.LevelDefault,
			}))

		// Health check
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.WithStack(c.SendStatus(http.StatusOK))
		})

		return app, nil
	})

	ledgerStore, err := do.Invoke[ledger.Store](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if err := ledgerStore.Close(); err != nil {
			logger.ErrorContext(ctx, "Failed to close ledger store", err)
		}
	}()

	// Mount modules
	httpServer := do.MustInvoke[*fiber.App](injector)
	{
		modules := lo.FlatMap(conf.EnableModules, func(item string, _ int) []string { return strings.Split(item, ",") })
		modules = lo.Map(modules, func(item string, _ int) string { return strings.TrimSpace(item) })
		modules = lo.Uniq(lo.Filter(modules, func(item string, _ int) bool { return item != "" }))
		if len(modules) == 0 {
			modules = lo.Map(common.Modules, func(m common.Module, _ int) string { return m.String() })
		}
		for _, module := range modules {
			ctx := logger.WithContext(ctx, slogx.String("module", module))

			handler, err := do.InvokeNamed[common.APIHandler](injector, module)
			if err != nil {
				if errors.Is(err, do.ErrServiceNotFound) {
					return errors.Errorf("Module %q is not supported", module)
				}
				return errors.Wrapf(err, "can't init module %q", module)
			}
			if err := handler.Mount(httpServer); err != nil {
				return errors.Wrapf(err, "can't mount module %q", module)
			}
			logger.InfoContext(ctx, "Module mounted")
		}
	}

	// Run API server
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctx, "BodyDFi ledger started")

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return nil
}
