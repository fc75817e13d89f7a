package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudgyt/scaiguide/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestSessionID(t *testing.T) {
	t.Parallel()

	attr := logger.SessionID("abc123def456")
	require.Equal(t, "session_id", attr.Key)
	assert.Equal(t, "abc123def456", attr.Value.String())

	empty := logger.SessionID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	t.Parallel()

	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestNew(t *testing.T) {
	t.Parallel()

	log := logger.New(logger.Config{Level: "debug", Format: "text"})
	require.NotNil(t, log)
	assert.True(t, log.Enabled(t.Context(), slog.LevelDebug))

	log = logger.New(logger.Config{Level: "warn"})
	assert.False(t, log.Enabled(t.Context(), slog.LevelInfo))
}
