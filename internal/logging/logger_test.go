package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", "json")

	logger.Debug("analyzed", "lines", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "analyzed", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.EqualValues(t, 3, entry["lines"])
}

func TestNewLevelFiltering(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		dropped slog.Level
	}{
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger := New(&buf, tt.level, "text")

		logger.Log(context.Background(), tt.dropped, "dropped")
		assert.Empty(t, buf.String(), tt.level)

		logger.Log(context.Background(), tt.enabled, "kept")
		assert.Contains(t, buf.String(), "msg=kept", tt.level)
	}
}

func TestInitLoggerSetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	InitLogger("info", "text")
	require.NotNil(t, Logger)
	assert.Same(t, Logger, slog.Default())
}
