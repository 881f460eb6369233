package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDualHandlerMirrorsErrors(t *testing.T) {
	var primary, secondary bytes.Buffer

	handler := NewDualHandler(
		slog.NewTextHandler(&primary, &slog.HandlerOptions{Level: LevelTrace}),
		slog.NewTextHandler(&secondary, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(handler)

	EnableErrorMirroring()
	logger.Error("boom")
	require.Contains(t, primary.String(), "boom")
	require.Contains(t, secondary.String(), "boom")

	primary.Reset()
	secondary.Reset()

	DisableErrorMirroring()
	defer EnableErrorMirroring()

	logger.Error("quiet")
	require.Contains(t, primary.String(), "quiet")
	require.Empty(t, secondary.String())
}

func TestConfigLevelStringToSlogLevel(t *testing.T) {
	require.Equal(t, LevelTrace, ConfigLevelStringToSlogLevel("trace"))
	require.Equal(t, slog.LevelDebug, ConfigLevelStringToSlogLevel("debug"))
	require.Equal(t, slog.LevelError, ConfigLevelStringToSlogLevel("nonsense"))
}

func TestDualHandlerEnabled(t *testing.T) {
	handler := NewDualHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}),
		nil,
	)
	require.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	require.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
}
