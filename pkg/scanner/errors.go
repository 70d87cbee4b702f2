package scanner

import "errors"

// Error definitions for scanner package.
var (
	// ErrNoPluginArray indicates the plugin list file carries no JSON array payload.
	ErrNoPluginArray = errors.New("no plugin array found")
)
