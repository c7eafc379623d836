package meos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timezone: Europe/Brussels\nmax_decimals: 6\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Brussels", cfg.Timezone)
	assert.Equal(t, 6, cfg.MaxDecimals)
	assert.Nil(t, cfg.Logger)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("timezone: [unterminated"))
	require.Error(t, err)

	_, err = ParseConfig([]byte("max_decimals: -1"))
	require.ErrorContains(t, err, "max_decimals")
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, 15, cfg.MaxDecimals)
	assert.NotNil(t, cfg.Logger)

	cfg = Config{Timezone: "Asia/Tokyo", MaxDecimals: 3}.withDefaults()
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.Equal(t, 3, cfg.MaxDecimals)
}

func TestCurrentSettingsDefault(t *testing.T) {
	s := current()
	require.NotNil(t, s)
	assert.NotNil(t, s.logger)
	assert.Positive(t, s.maxDecimals)
}
