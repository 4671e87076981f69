package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/gaze-network/bodydfi-ledger/pkg/errorhandler"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	WithRequestHeader    bool     `mapstructure:"request_header"`
	WithRequestBody      bool     `mapstructure:"request_body"`
	Disable              bool     `mapstructure:"disable"` // Disable logger level `INFO`
	HiddenRequestHeaders []string `mapstructure:"hidden_request_headers"`
}

// signature headers are never logged
var alwaysHiddenHeaders = []string{requestcontext.HeaderSignature, fiber.HeaderAuthorization}

// New logs every completed request. Rejected ledger operations are logged at WARN, server faults at ERROR.
func New(config Config) fiber.Handler {
	hiddenRequestHeaders := make(map[string]struct{}, len(config.HiddenRequestHeaders)+len(alwaysHiddenHeaders))
	for _, headers := range [][]string{config.HiddenRequestHeaders, alwaysHiddenHeaders} {
		for _, header := range headers {
			hiddenRequestHeaders[strings.TrimSpace(strings.ToLower(header))] = struct{}{}
		}
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		end := time.Now()
		latency := end.Sub(start)
		status := c.Response().StatusCode()
		if err != nil {
			// the app error handler has not written the response yet
			status = errorhandler.StatusOfError(err)
		}

		baseAttrs := []slog.Attr{
			slog.String("event", "api_request"),
			slog.Int64("latency", latency.Milliseconds()),
			slog.String("latencyHuman", latency.String()),
		}

		requestAttributes := []slog.Attr{
			slog.Time("time", start),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", requestcontext.GetClientIP(c.UserContext())),
			slog.String("signer", requestcontext.GetSigner(c.UserContext()).String()),
			slog.String("user-agent", string(c.Context().UserAgent())),
			slog.Any("params", c.AllParams()),
			slog.Any("query", c.Queries()),
			slog.Int("length", len(c.Body())),
		}

		responseAttributes := []slog.Attr{
			slog.Time("time", end),
			slog.Int("status", status),
			slog.Int("length", len(c.Response().Body())),
		}

		if config.WithRequestBody {
			requestAttributes = append(requestAttributes, slog.String("body", string(c.Body())))
		}

		if config.WithRequestHeader {
			kv := []any{}
			for k, v := range c.GetReqHeaders() {
				if _, found := hiddenRequestHeaders[strings.ToLower(k)]; found {
					continue
				}
				kv = append(kv, slog.Any(k, v))
			}
			requestAttributes = append(requestAttributes, slog.Group("header", kv...))
		}

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case err != nil:
			level = slog.LevelWarn
		}
		if err != nil {
			baseAttrs = append(baseAttrs, slog.Any("error", err))
			if kind, ok := errs.KindOf(err); ok {
				baseAttrs = append(baseAttrs, slog.String("kind", kind.Error()), slog.String("class", errs.ClassOf(kind).String()))
			}
		}

		if config.Disable && level == slog.LevelInfo {
			return errors.WithStack(err)
		}

		logger.LogAttrs(c.UserContext(), level, "Request Completed", append([]slog.Attr{
			{
				Key:   "request",
				Value: slog.GroupValue(requestAttributes...),
			},
			{
				Key:   "response",
				Value: slog.GroupValue(responseAttributes...),
			},
		}, baseAttrs...)...,
		)

		return errors.WithStack(err)
	}
}
