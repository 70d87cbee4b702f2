// Package fs provides file system operations for project tree scanning.
package fs

import (
	iofs "io/fs"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations for asset scanning and cleanup.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the contents of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// WalkDir walks the file tree rooted at root, calling fn for each entry.
	WalkDir(root string, fn iofs.WalkDirFunc) error

	// Glob finds files matching the pattern.
	Glob(pattern string) ([]string, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Remove removes a single file.
	Remove(path string) error

	// RemoveAll removes a path and any children it contains.
	RemoveAll(path string) error

	// CopyFile copies the contents of src to dst, creating dst with the given permissions.
	CopyFile(src, dst string, perm os.FileMode) error

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
