package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, logLevel(nil))
	assert.Equal(t, slog.LevelInfo, logLevel(&Config{}))
	assert.Equal(t, slog.LevelDebug, logLevel(&Config{LogLevel: "debug"}))
	assert.Equal(t, slog.LevelWarn, logLevel(&Config{LogLevel: " WARN "}))
	assert.Equal(t, slog.LevelError, logLevel(&Config{LogLevel: "error"}))
	assert.Equal(t, slog.LevelInfo, logLevel(&Config{LogLevel: "verbose"}))
}

func TestNewLoggerHonorsLevel(t *testing.T) {
	logger := NewLogger(&Config{LogLevel: "warn"})
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	logger = NewLogger(&Config{AppEnv: "production", LogLevel: "debug"})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
