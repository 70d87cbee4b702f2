//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "asset.png")
	require.NoError(t, os.WriteFile(tmpFile, []byte("data"), 0644))

	// Test existing file
	exists, err := fs.Exists(tmpFile)
	assert.NoError(t, err)
	assert.True(t, exists)

	// Test existing directory
	exists, err = fs.Exists(tmpDir)
	assert.NoError(t, err)
	assert.True(t, exists)

	// Test non-existing path
	exists, err = fs.Exists(filepath.Join(tmpDir, "missing.png"))
	assert.NoError(t, err)
	assert.False(t, exists)
}
