// Package config provides configuration management for the costmap CLI.
package config

// UIConfig holds configuration for the dashboard server.
type UIConfig struct {
	Port          int    `koanf:"port"`
	AutoOpen      bool   `koanf:"auto_open"`
	Watch         bool   `koanf:"watch"`
	SessionSecret string `koanf:"session_secret"`
}

// DefaultUIConfig returns a UIConfig with default values.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Port:     8765,
		AutoOpen: true,
		Watch:    true,
	}
}

// GetUIConfig returns the UI config with defaults applied for any unset values.
func (c *Config) GetUIConfig() *UIConfig {
	if c.UI == nil {
		return DefaultUIConfig()
	}
	ui := c.UI
	if ui.Port == 0 {
		ui.Port = 8765
	}
	return ui
}

// Config holds all CLI configuration options.
type Config struct {
	DataPath string    `koanf:"data"`
	Verbose  bool      `koanf:"verbose"`
	UI       *UIConfig `koanf:"ui"`
}

// Default configuration values.
const (
	DefaultDataPath = "us_cost_of_living.csv"
)
