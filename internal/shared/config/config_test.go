package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDemo_Defaults(t *testing.T) {
	cfg, err := LoadDemo("")
	require.NoError(t, err)

	require.Equal(t, 4, cfg.Pool.Workers)
	require.Equal(t, 100, cfg.Demo.Tasks)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
	require.Empty(t, cfg.Metrics.Addr)
}

func TestLoadDemo_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	content := `
pool:
  workers: 8
demo:
  tasks: 250
logging:
  level: debug
  format: json
metrics:
  addr: ":2112"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadDemo(path)
	require.NoError(t, err)

	require.Equal(t, 8, cfg.Pool.Workers)
	require.Equal(t, 250, cfg.Demo.Tasks)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, ":2112", cfg.Metrics.Addr)
}

func TestLoadDemo_EnvOverride(t *testing.T) {
	t.Setenv("THREADPOOL_POOL_WORKERS", "16")
	t.Setenv("THREADPOOL_LOGGING_LEVEL", "error")

	cfg, err := LoadDemo("")
	require.NoError(t, err)

	require.Equal(t, 16, cfg.Pool.Workers)
	require.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadDemo_InvalidWorkers(t *testing.T) {
	t.Setenv("THREADPOOL_POOL_WORKERS", "0")

	cfg, err := LoadDemo("")
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoadDemo_MissingExplicitFile(t *testing.T) {
	cfg, err := LoadDemo(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Nil(t, cfg)
}
