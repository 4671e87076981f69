package badgerstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
)

var _ badger.Logger = (*badgerLogger)(nil)

// badgerLogger forwards badger's printf-style logs to the application logger.
type badgerLogger struct {
	ctx context.Context
}

func newLogger(ctx context.Context) *badgerLogger {
	return &badgerLogger{
		ctx: logger.WithContext(ctx, slogx.String("package", "badger")),
	}
}

func (l *badgerLogger) log(level slog.Level, format string, args ...interface{}) {
	logger.LogAttrs(l.ctx, level, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log(slog.LevelError, format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log(slog.LevelWarn, format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log(slog.LevelInfo, format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log(slog.LevelDebug, format, args...)
}
