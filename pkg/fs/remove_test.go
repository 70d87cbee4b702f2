//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Remove(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "unused.png")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	err := fs.Remove(tmpFile)
	assert.NoError(t, err)

	_, err = os.Stat(tmpFile)
	assert.True(t, os.IsNotExist(err))
}

func TestFS_Remove_MissingFile(t *testing.T) {
	fs := NewFS()

	err := fs.Remove(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
