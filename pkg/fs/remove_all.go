package fs

import "os"

// RemoveAll removes a path and any children it contains.
func (f *realFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
