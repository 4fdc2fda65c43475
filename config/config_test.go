package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "GPIO17", cfg.Pins.CS)
	assert.Equal(t, "GPIO18", cfg.Pins.CLK)
	assert.Equal(t, "GPIO27", cfg.Pins.DI)
	assert.Equal(t, "GPIO22", cfg.Pins.DO)
	assert.Equal(t, 2*time.Microsecond, cfg.Settle)
	assert.Equal(t, 200*time.Millisecond, cfg.Poll)
	assert.Equal(t, 0, cfg.StuckLimit)
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Options(), 3)
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rainsense.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeConfig(t, `
pins:
  cs: GPIO5
  do: GPIO6
settle: 10us
poll: 1s
stuck_limit: 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "GPIO5", cfg.Pins.CS)
	assert.Equal(t, "GPIO18", cfg.Pins.CLK, "unset keys keep their default")
	assert.Equal(t, "GPIO27", cfg.Pins.DI)
	assert.Equal(t, "GPIO6", cfg.Pins.DO)
	assert.Equal(t, 10*time.Microsecond, cfg.Settle)
	assert.Equal(t, time.Second, cfg.Poll)
	assert.Equal(t, 20, cfg.StuckLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero settle", "settle: 0s\n"},
		{"negative poll", "poll: -1s\n"},
		{"negative stuck limit", "stuck_limit: -2\n"},
		{"empty pin", "pins:\n  clk: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "pins: [\n"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}
