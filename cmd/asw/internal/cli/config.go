// Package cli provides common configuration and utility functions for the asw CLI.
package cli

import (
	"os"
	"path/filepath"

	"github.com/kgossett/asset-sweeper/pkg/config"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(GetConfigPath())
}

// GetConfigPath returns the config file path that would be used.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".asw", "config.yaml")
}
