package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"librarian/internal/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 3, cfg.Shell.Trials)
	require.True(t, cfg.Seed.Builtin)
	require.Empty(t, cfg.Seed.Path)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	doc := `environment: production
shell:
  trials: 5
seed:
  builtin: false
  path: /tmp/seed.yml
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 5, cfg.Shell.Trials)
	require.False(t, cfg.Seed.Builtin)
	require.Equal(t, "/tmp/seed.yml", cfg.Seed.Path)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("SHELL_TRIALS", "7")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Shell.Trials)
}
