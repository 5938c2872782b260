package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandlerLevels(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		debugPasses bool
		warnPasses  bool
	}{
		{name: "trace level", logLevel: "trace", debugPasses: true, warnPasses: true},
		{name: "debug level", logLevel: "debug", debugPasses: true, warnPasses: true},
		{name: "info level", logLevel: "info", debugPasses: false, warnPasses: true},
		{name: "warn level", logLevel: "warn", debugPasses: false, warnPasses: true},
		{name: "error level", logLevel: "error", debugPasses: false, warnPasses: false},
		{name: "unknown defaults to info", logLevel: "bogus", debugPasses: false, warnPasses: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := TextHandler(tt.logLevel, &buf)
			require.NotNil(t, handler)

			ctx := context.Background()
			assert.Equal(t, tt.debugPasses, handler.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.warnPasses, handler.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestTextHandlerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(TextHandler("info", &buf))
	logger.Info("hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "value")
}

func TestJSONHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(JSONHandler("debug", &buf))
	logger.Debug("structured", "count", 3)

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "structured", record["msg"])
	assert.EqualValues(t, 3, record["count"])
}

func TestHandlerFormatSelection(t *testing.T) {
	var buf bytes.Buffer

	jsonHandler := Handler("info", FormatJSON, &buf)
	slog.New(jsonHandler).Info("ping")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))

	buf.Reset()
	textHandler := Handler("info", "not-a-format", &buf)
	slog.New(textHandler).Info("ping")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}
