package config

import "errors"

// Error definitions for config package.
var (
	ErrConfigNotInitialized = errors.New("configuration not initialized")
	ErrInvalidConfig        = errors.New("invalid configuration")
)

// isNotInitialized reports whether err wraps ErrConfigNotInitialized.
func isNotInitialized(err error) bool {
	return errors.Is(err, ErrConfigNotInitialized)
}
