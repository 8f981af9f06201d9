package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/internal/config"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := config.Load(t.TempDir(), "")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	body := `
[engine]
epsilon = 1e-6
prune = true

[batch]
workers = 3

[serve]
read_timeout = "2s"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(body), 0o644))

	cfg, err := config.Load(dir, "")
	require.NoError(t, err)
	require.Equal(t, 1e-6, cfg.Engine.Epsilon)
	require.True(t, cfg.Engine.Prune)
	require.Equal(t, 3, cfg.Batch.Workers)
	require.Equal(t, 2*time.Second, cfg.Serve.ReadTimeout.Duration)
	require.Equal(t, 30*time.Second, cfg.Serve.WriteTimeout.Duration)
	require.Equal(t, ":8080", cfg.Serve.Addr)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(dir, filepath.Join(dir, "nope.toml"))
	require.ErrorContains(t, err, "read config")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[engine\n"), 0o644))
	_, err = config.Load(dir, bad)
	require.ErrorContains(t, err, "parse config")

	neg := filepath.Join(dir, "neg.toml")
	require.NoError(t, os.WriteFile(neg, []byte("[batch]\nworkers = -1\n"), 0o644))
	_, err = config.Load(dir, neg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	lvl := filepath.Join(dir, "lvl.toml")
	require.NoError(t, os.WriteFile(lvl, []byte("[log]\nlevel = \"loud\"\n"), 0o644))
	_, err = config.Load(dir, lvl)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
