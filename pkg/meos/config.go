package meos

import (
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/logging"
)

// DefaultTimezone is used when Config.Timezone is empty.
const DefaultTimezone = "UTC"

// Config holds the process-wide settings applied by Initialize.
type Config struct {
	// Timezone is the IANA name used to read and print timestamps without
	// an explicit offset.
	Timezone string `yaml:"timezone"`

	// MaxDecimals bounds the digits printed for floating point values in
	// text output. Zero selects 15.
	MaxDecimals int `yaml:"max_decimals"`

	// Logger receives lifecycle events and native error reports. Nil binds
	// to slog.Default().
	Logger logging.Logger `yaml:"-"`
}

func (c Config) withDefaults() Config {
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.MaxDecimals <= 0 {
		c.MaxDecimals = backend.DefaultMaxDecimals
	}
	if c.Logger == nil {
		c.Logger = logging.New(nil)
	}
	return c
}

// LoadConfig reads a YAML file with timezone and max_decimals keys.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("meos: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("meos: decode config: %w", err)
	}
	if cfg.MaxDecimals < 0 {
		return Config{}, fmt.Errorf("meos: max_decimals must not be negative, got %d", cfg.MaxDecimals)
	}
	return cfg, nil
}

type settings struct {
	timezone    string
	maxDecimals int
	logger      logging.Logger
}

var active atomic.Pointer[settings]

func current() *settings {
	if s := active.Load(); s != nil {
		return s
	}
	cfg := Config{}.withDefaults()
	s := &settings{timezone: cfg.Timezone, maxDecimals: cfg.MaxDecimals, logger: cfg.Logger}
	active.CompareAndSwap(nil, s)
	return active.Load()
}

func apply(cfg Config) {
	active.Store(&settings{timezone: cfg.Timezone, maxDecimals: cfg.MaxDecimals, logger: cfg.Logger})
}
