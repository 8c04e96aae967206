package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "git", cfg.GitBinary)
	assert.False(t, cfg.Untracked)
	assert.Equal(t, fs.FileMode(0o644), cfg.OutputFileMode())
	assert.Empty(t, cfg.Path())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFile)
	content := `git_binary = "/usr/local/bin/git"
untracked = true
output_mode = "0600"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/git", cfg.GitBinary)
	assert.True(t, cfg.Untracked)
	assert.Equal(t, fs.FileMode(0o600), cfg.OutputFileMode())
	assert.Equal(t, configPath, cfg.Path())
}

func TestLoad_DiscoveredFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("untracked = true\n"), 0644))

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	assert.True(t, cfg.Untracked)

	// Unset keys keep their defaults
	assert.Equal(t, "git", cfg.GitBinary)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("untracked = {{{\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestOutputFileMode_InvalidFallsBack(t *testing.T) {
	cfg := Default()
	cfg.OutputMode = "not-a-mode"

	assert.Equal(t, fs.FileMode(0o644), cfg.OutputFileMode())
}

func TestFindConfig_NoneExists(t *testing.T) {
	path, err := FindConfig(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
}
