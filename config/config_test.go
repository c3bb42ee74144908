package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcasco/keycap-playground/errors"
	"github.com/fcasco/keycap-playground/keycap"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "stl", cfg.FileType)
	assert.Equal(t, 2, cfg.MaxProcesses)
	assert.Equal(t, "keycap_playground.scad", cfg.PlaygroundPath)
	assert.False(t, cfg.Legends)
	assert.Equal(t, time.Duration(0), cfg.Pace)
}

func TestLoadCachesResult(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyplay.toml")
	content := `
output_dir = "/srv/keycaps"
file_type = "3mf"
max_processes = 4
scad_args = "--hardwarnings"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/keycaps", cfg.OutputDir)
	assert.Equal(t, "3mf", cfg.FileType)
	assert.Equal(t, 4, cfg.MaxProcesses)
	// Untouched keys keep their defaults
	assert.Equal(t, "keycap_playground.scad", cfg.PlaygroundPath)
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := &Config{FileType: "stl"}
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnsupportedFileType(t *testing.T) {
	cfg := &Config{FileType: "obj"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestValidateRejectsNegativeMaxProcesses(t *testing.T) {
	cfg := &Config{FileType: "stl", MaxProcesses: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestValidateRejectsMalformedScadArgs(t *testing.T) {
	cfg := &Config{FileType: "stl", ScadArgs: `--define "unterminated`}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestExtraArgsSplitting(t *testing.T) {
	cfg := &Config{FileType: "stl", ScadArgs: `--hardwarnings -q "--camera=0,0,0"`}
	require.NoError(t, cfg.Validate())

	args, err := cfg.ExtraArgs()
	require.NoError(t, err)
	assert.Equal(t, []string{"--hardwarnings", "-q", "--camera=0,0,0"}, args)
}

func TestExtraArgsEmpty(t *testing.T) {
	cfg := &Config{}
	args, err := cfg.ExtraArgs()
	require.NoError(t, err)
	assert.Nil(t, args)
}

func TestParsedFileType(t *testing.T) {
	cfg := &Config{FileType: "3mf"}
	ft, err := cfg.ParsedFileType()
	require.NoError(t, err)
	assert.Equal(t, keycap.FileType3MF, ft)
}
