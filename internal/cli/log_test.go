package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			require.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.start = time.Now().Add(-1500 * time.Millisecond)
	p.done("Loaded")

	require.Contains(t, buf.String(), "Loaded (1.5")
}

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	require.Same(t, log.Default(), loggerFromContext(ctx))
	require.Equal(t, config.Default(), configFromContext(ctx))

	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	cfg := config.Default()
	cfg.Engine.Prune = true
	ctx = withConfig(withLogger(ctx, l), cfg)

	require.Same(t, l, loggerFromContext(ctx))
	require.True(t, configFromContext(ctx).Engine.Prune)
}
