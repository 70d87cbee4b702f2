// Package config provides configuration management functionality for the asset sweeper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration.
type Config struct {
	// StagingDir is the directory staged project copies are created under.
	StagingDir string `yaml:"staging_dir"`
	// WhitelistFile is the name of the per-project override file listing
	// always-required paths, resolved relative to the project root.
	WhitelistFile string `yaml:"whitelist_file"`
	// SkipDirs are directory names excluded from staging and scanning.
	SkipDirs []string `yaml:"skip_dirs"`
	// IncludeUnknown controls whether files of unrecognized types are
	// eligible to appear in the unused report.
	IncludeUnknown bool `yaml:"include_unknown"`
	// LogFile, when set, receives a copy of scan output with rotation.
	LogFile string `yaml:"log_file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}

	return Config{
		StagingDir:     filepath.Join(homeDir, "Games", "staging"),
		WhitelistFile:  "required-assets.yaml",
		SkipDirs:       []string{".git", ".vs", "save", "DatabaseCleanUpTool"},
		IncludeUnknown: true,
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.StagingDir == "" {
		return fmt.Errorf("%w: staging_dir cannot be empty", ErrInvalidConfig)
	}
	if c.WhitelistFile != "" && filepath.IsAbs(c.WhitelistFile) {
		return fmt.Errorf("%w: whitelist_file must be relative to the project root", ErrInvalidConfig)
	}
	return nil
}
