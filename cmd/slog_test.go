package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newLogHandler(&buf, slog.LevelInfo, false))

	logger.Debug("hidden")
	logger.Info("request handled", "status", 200)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request handled", line["msg"])
	assert.Equal(t, float64(200), line["status"])
}

func TestNewLogHandler_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newLogHandler(&buf, slog.LevelInfo, true))

	logger.Info("cycle refresh completed", "groups", 3)
	assert.Contains(t, buf.String(), "cycle refresh completed")
	assert.Contains(t, buf.String(), "groups")
}

func TestTrimSourcePath(t *testing.T) {
	assert.Equal(t, "service/service.go", trimSourcePath("/home/dev/shouldibuy/service/service.go", "/shouldibuy/"))
	assert.Equal(t, "github.com/x/y.go", trimSourcePath("/root/go/src/github.com/x/y.go", "/shouldibuy/"))
	assert.Equal(t, "/opt/app/main.go", trimSourcePath("/opt/app/main.go", "/shouldibuy/"))
}
