package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gumbelchess/engine/pkg/config"
	"github.com/gumbelchess/engine/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesSearchDefaults(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, search.DefaultOptions(), cfg.Options())
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[search]\nn_consider = 8\nseed = 7\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Search.NConsider)
	assert.Equal(t, int64(7), cfg.Search.Seed)
	// Untouched fields keep their compiled-in defaults.
	assert.Equal(t, search.DefaultOptions().SimulationBudget, cfg.Search.SimulationBudget)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
