// Package config loads the settings of the rainsense command.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cgxeiji/rainsense"
	"github.com/cgxeiji/rainsense/adc0832"
)

// ErrInvalid is returned by Load when a setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Config represents the command configuration.
type Config struct {
	Pins       PinsConfig    `yaml:"pins"`
	Settle     time.Duration `yaml:"settle"`      // pause after every line transition
	Poll       time.Duration `yaml:"poll"`        // time between readings
	StuckLimit int           `yaml:"stuck_limit"` // 0 disables stuck bus detection
}

// PinsConfig names the GPIO lines of the ADC0832.
type PinsConfig struct {
	CS  string `yaml:"cs"`
	CLK string `yaml:"clk"`
	DI  string `yaml:"di"`
	DO  string `yaml:"do"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Pins: PinsConfig{
			CS:  rainsense.PinCS,
			CLK: rainsense.PinCLK,
			DI:  rainsense.PinDI,
			DO:  rainsense.PinDO,
		},
		Settle: adc0832.DefaultSettle,
		Poll:   200 * time.Millisecond,
	}
}

// Load reads the configuration at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: could not read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: could not parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Settle <= 0 {
		return fmt.Errorf("%w: settle must be positive, got %v", ErrInvalid, c.Settle)
	}
	if c.Poll <= 0 {
		return fmt.Errorf("%w: poll must be positive, got %v", ErrInvalid, c.Poll)
	}
	if c.StuckLimit < 0 {
		return fmt.Errorf("%w: stuck_limit must not be negative, got %d", ErrInvalid, c.StuckLimit)
	}
	for name, p := range map[string]string{"cs": c.Pins.CS, "clk": c.Pins.CLK, "di": c.Pins.DI, "do": c.Pins.DO} {
		if p == "" {
			return fmt.Errorf("%w: pin %s is empty", ErrInvalid, name)
		}
	}
	return nil
}

// Options returns the sensor options matching the configuration.
func (c *Config) Options() []rainsense.Option {
	return []rainsense.Option{
		rainsense.OnPins(c.Pins.CS, c.Pins.CLK, c.Pins.DI, c.Pins.DO),
		rainsense.WithSettle(c.Settle),
		rainsense.StuckLimit(c.StuckLimit),
	}
}
