package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", FormatConsole, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Warn("shown", zap.String("store", "coaches"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "coaches")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", FormatJSON, &buf)
	require.NoError(t, err)

	logger.Debug("request", zap.String("method", "GET"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	_, err := New("loud", FormatConsole, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse log level")

	_, err = New("info", "xml", &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported log format")
}
