// Package config provides configuration loading for zeromail.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Calendar CalendarConfig `yaml:"calendar"`
	Leads    LeadsConfig    `yaml:"leads"`
	View     ViewConfig     `yaml:"view"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// CalendarConfig configures the remote calendar service.
type CalendarConfig struct {
	// CalendarID is the calendar used by default ("primary" if unset).
	CalendarID string `yaml:"calendar_id"`

	// TimeZone overrides the rendering timezone (system local if unset).
	TimeZone string `yaml:"timezone,omitempty"`
}

// LeadsConfig configures the remote lead-search service.
type LeadsConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key,omitempty"`
}

// ViewConfig configures the week view.
type ViewConfig struct {
	// ViewportHeight is the scroll container height in pixels used for
	// centering math (default: 720).
	ViewportHeight float64 `yaml:"viewport_height"`

	// WorkingHoursStart/End bound the highlighted working window, "HH:MM".
	WorkingHoursStart string `yaml:"working_hours_start,omitempty"`
	WorkingHoursEnd   string `yaml:"working_hours_end,omitempty"`
}

// MetricsConfig configures the metrics endpoint for serve mode.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{CalendarID: "primary"},
		View:     ViewConfig{ViewportHeight: 720},
		Metrics:  MetricsConfig{Enabled: true, Addr: ":9090"},
	}
}

// Load reads configuration from the default location
// (~/.config/zeromail/config.yaml). A missing file yields the defaults.
func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("get config dir: %w", err)
	}

	path := filepath.Join(configDir, "zeromail", "config.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Calendar.CalendarID == "" {
		c.Calendar.CalendarID = "primary"
	}
	if c.View.ViewportHeight < 0 {
		return fmt.Errorf("view.viewport_height must be non-negative")
	}
	if c.View.ViewportHeight == 0 {
		c.View.ViewportHeight = 720
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9090"
	}
	return nil
}
