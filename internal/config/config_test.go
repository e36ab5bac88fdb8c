package config

import (
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToBuiltInDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BRAINCTL_SERVER", "")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BRAINCTL_SERVER", "")

	dir := filepath.Join(home, ".config", "brainctl")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[server]\nurl = \"http://example.test/api/brain\"\n"), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api/brain", cfg.ServerURL)
}

func TestLoadEnvOverridesConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "brainctl")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[server]\nurl = \"http://file.test\"\n"), 0o644))

	t.Setenv("BRAINCTL_SERVER", "http://env.test")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://env.test", cfg.ServerURL)
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BRAINCTL_SERVER", "")

	dir := filepath.Join(home, ".config", "brainctl")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[server\nnot toml"), 0o644))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestWriteDefaultCreatesParseableFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := WriteDefault(false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "brainctl", "config.toml"), path)

	encoded, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded fileSchema
	require.NoError(t, toml.Unmarshal(encoded, &decoded))
	assert.Equal(t, DefaultServerURL, decoded.Server.URL)
}

func TestWriteDefaultRefusesToOverwrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := WriteDefault(false)
	require.NoError(t, err)

	_, err = WriteDefault(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = WriteDefault(true)
	require.NoError(t, err)
}
