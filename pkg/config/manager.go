package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads configuration from the embedded config path.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads configuration, falling back to defaults when missing.
	GetConfigWithFallback() (Config, error)
	// SaveConfig writes the configuration to the embedded config path.
	SaveConfig(config Config) error
	// GetConfigPath returns the embedded config path.
	GetConfigPath() string
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	// Check if config file exists
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	// Read config file
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// GetConfigWithFallback loads configuration, falling back to defaults when missing.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if isNotInitialized(err) {
		return DefaultConfig(), nil
	}
	return Config{}, err
}

// SaveConfig writes the configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}
