package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	d, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Defaults{}, d)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# defaults\nDIRCLIP_IGNORE_FILE=/etc/dirclip.ignore\nDIRCLIP_X11=true\nDIRCLIP_MAX_SIZE_KB=512\n"), 0644))
	t.Setenv(EnvMaxSizeKB, "64")
	t.Setenv(EnvDebug, "1")

	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Defaults{
		IgnoreFile:    "/etc/dirclip.ignore",
		X11:           true,
		MaxFileSizeKB: 64,
		Debug:         true,
	}, d)
	assert.Empty(t, os.Getenv(EnvIgnoreFile), "the config file must not leak into the environment")
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)

	t.Setenv(EnvX11, "sometimes")
	_, err := Load("")
	assert.ErrorContains(t, err, EnvX11)

	t.Setenv(EnvX11, "")
	t.Setenv(EnvMaxSizeKB, "-3")
	_, err = Load("")
	assert.ErrorContains(t, err, EnvMaxSizeKB)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigFile, "/tmp/custom.env")
	assert.Equal(t, "/tmp/custom.env", DefaultPath())

	t.Setenv(EnvConfigFile, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	p := DefaultPath()
	assert.Equal(t, "config.env", filepath.Base(p))
	assert.Equal(t, "dirclip", filepath.Base(filepath.Dir(p)))
}
