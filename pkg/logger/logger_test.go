package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/pkg/logger/slogx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, initWithWriter(Config{Output: "json"}, &buf))
	t.Cleanup(func() { require.NoError(t, Init(Config{})) })

	ctx := WithContext(context.Background(), slogx.String("module", "datamarket"))
	ErrorContext(ctx, "operation failed", errors.New("rate limit exceeded"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation failed", record[MessageKey])
	assert.Equal(t, "ERROR", record[LevelKey])
	assert.Equal(t, "datamarket", record["module"])
	assert.Equal(t, "rate limit exceeded", record[ErrorKey])
	assert.NotContains(t, record, ErrorStackTraceKey, "stack trace is only added in debug mode")
}

func TestInitDebugAddsStackTrace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, initWithWriter(Config{Output: "json", Debug: true}, &buf))
	t.Cleanup(func() { require.NoError(t, Init(Config{})) })

	ErrorContext(context.Background(), "operation failed", errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Contains(t, record, ErrorVerboseKey)
	assert.Contains(t, record, ErrorStackTraceKey)
}

func TestLevelRendering(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, initWithWriter(Config{Output: "gcp"}, &buf))
	t.Cleanup(func() { require.NoError(t, Init(Config{})) })

	Log(LevelCritical, "critical")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "CRITICAL", record["severity"])
	assert.Equal(t, "critical", record["message"])

	assert.Equal(t, slog.LevelInfo, SetLevel(slog.LevelWarn))
}
