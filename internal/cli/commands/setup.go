// Package commands implements the costmap CLI subcommands.
package commands

import (
	"github.com/cityindex-labs/costmap/internal/cli/config"
	"github.com/cityindex-labs/costmap/internal/dataset"
)

// currentConfig is set by the root command's PersistentPreRunE before any
// subcommand runs.
var currentConfig *config.Config

// SetConfig stores the loaded configuration for subcommands.
func SetConfig(cfg *config.Config) {
	currentConfig = cfg
}

func getConfig() *config.Config {
	if currentConfig == nil {
		return &config.Config{DataPath: config.DefaultDataPath}
	}
	return currentConfig
}

// loadRecords validates the dataset file and loads it once.
func loadRecords(cfg *config.Config) ([]dataset.Record, error) {
	if err := cfg.ValidateDataFile(); err != nil {
		return nil, err
	}
	return dataset.Load(cfg.DataPath)
}
