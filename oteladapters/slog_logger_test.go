package oteladapters_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjadeakbari/lazyload/oteladapters"
)

func Test_NewSlogLogger_Construction(t *testing.T) {
	logger := oteladapters.NewSlogLogger("lazyload")

	assert.NotNil(t, logger)
}

func Test_SlogLogger_LevelsAndAttributes(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogLoggerWithHandler(handler)

	logger.Debug("element revealed", "attempt_id", "a-1", "tag", "img")
	logger.Info("controller started")
	logger.Warn("slow load")
	logger.Error("load failed", "error", "no source data")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)

	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "DEBUG", first["level"])
	assert.Equal(t, "element revealed", first["msg"])
	assert.Equal(t, "a-1", first["attempt_id"])
	assert.Equal(t, "img", first["tag"])

	var last map[string]any
	require.NoError(t, json.Unmarshal(lines[3], &last))
	assert.Equal(t, "ERROR", last["level"])
	assert.Equal(t, "no source data", last["error"])
}

func Test_SlogLogger_RespectsHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := oteladapters.NewSlogLoggerWithHandler(handler)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	assert.Contains(t, string(lines[0]), "kept")
}
