package fs

import "os"

// Remove removes a single file.
func (f *realFS) Remove(path string) error {
	return os.Remove(path)
}
