package asset

import "errors"

// Error definitions for asset package.
var (
	// ErrRootNotFound indicates the project root does not exist or is not a directory.
	ErrRootNotFound = errors.New("project root not found")
)
