package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, ":9000", viper.GetString(Port))
	assert.Equal(t, "info", viper.GetString(LogLevel))
	assert.Equal(t, "text", viper.GetString(LogFormat))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.NoError(t, Load(""))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\n"), 0o600))

	require.NoError(t, Load(path))
	t.Cleanup(func() { viper.Set(LogFormat, "text") })

	assert.Equal(t, "json", viper.GetString(LogFormat))
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o600))

	assert.Error(t, Load(path))
}
