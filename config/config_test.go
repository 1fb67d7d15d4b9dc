package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abondrn/nussinov/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nussinov.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.True(t, rules.CanPair('G', 'C'))
	assert.False(t, rules.CanPair('G', 'U'))
	assert.Equal(t, 0, cfg.MinLoop)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "min_loop: 3\npairs: [AU, UA, GC, CG, GU, UG]\nformat: vienna\nworkers: 2\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MinLoop)
	assert.Equal(t, config.FormatVienna, cfg.Format)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 5000, cfg.MaxLength, "unset fields keep their default")

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.True(t, rules.CanPair('U', 'G'))
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = config.Load(writeConfig(t, "min_loop: -2\n"))
	assert.True(t, errors.Is(err, config.ErrInvalidMinLoop))

	_, err = config.Load(writeConfig(t, "format: png\n"))
	assert.True(t, errors.Is(err, config.ErrUnknownFormat))

	_, err = config.Load(writeConfig(t, "pairs: [AUG]\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "colour: red\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "workers: 0\n"))
	assert.Error(t, err)
}

func TestClampMinLoop(t *testing.T) {
	assert.Equal(t, 0, config.ClampMinLoop(-3, 10))
	assert.Equal(t, 4, config.ClampMinLoop(4, 10))
	assert.Equal(t, 10, config.ClampMinLoop(50, 10))
	assert.Equal(t, 0, config.ClampMinLoop(2, 0))
}
