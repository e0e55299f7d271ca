package config

import (
	"fmt"
	"os"
)

// Validate checks if the configuration is valid.
func Validate(c *Config) error {
	if c.DataPath == "" {
		return fmt.Errorf("data path is required")
	}
	if ui := c.UI; ui != nil && (ui.Port < 0 || ui.Port > 65535) {
		return fmt.Errorf("invalid ui port %d", ui.Port)
	}
	return nil
}

// ValidateDataFile checks that the dataset file exists. Run by commands
// that actually read it, so help and version work without one.
func (c *Config) ValidateDataFile() error {
	if _, err := os.Stat(c.DataPath); os.IsNotExist(err) {
		return fmt.Errorf("dataset file does not exist: %s\nHint: use --data or set data: in costmap.yaml", c.DataPath)
	}
	return nil
}
