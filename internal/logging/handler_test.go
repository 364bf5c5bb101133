package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainOutputContainsLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: slog.LevelInfo, UseColor: false})

	logger.Info("listening", "addr", "127.0.0.1:8002")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "listening")
	assert.Contains(t, out, "addr=127.0.0.1:8002")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestEnabledRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: slog.LevelWarn, UseColor: false})

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "visible")
}

func TestWithAttrsPersistsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: slog.LevelInfo, UseColor: false}).With("conn", "abc123")

	logger.Info("accepted")

	assert.Contains(t, buf.String(), "conn=abc123")
}

func TestColorizedOutputStillCarriesText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: slog.LevelInfo, UseColor: true})

	logger.Error("accept error", "err", "boom")

	out := buf.String()
	assert.Contains(t, out, "accept error")
	require.NotEmpty(t, out)
}
