// Package dependencies provides a centralized dependency container for the asset sweeper.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/kgossett/asset-sweeper/pkg/config"
	"github.com/kgossett/asset-sweeper/pkg/fs"
	"github.com/kgossett/asset-sweeper/pkg/logger"
	"github.com/kgossett/asset-sweeper/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrPromptMissing = errors.New("prompt dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS     fs.FS
	Config config.Manager
	Logger logger.Logger
	Prompt prompt.Prompter
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Logger: logger.NewNoopLogger(),
		Prompt: prompt.NewPrompt(),
		// Note: Config is intentionally left nil as it requires a config path
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
