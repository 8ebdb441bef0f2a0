package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetup_JSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	Setup("debug", "json", &buf)
	WithComponent("lint").Debug("checked", "messages", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "checked", entry["msg"])
	assert.Equal(t, "lint", entry["component"])
	assert.InDelta(t, 2, entry["messages"], 0)
}

func TestSetup_TextFiltersByLevel(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	logger := Setup("warn", "text", &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range testCases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
