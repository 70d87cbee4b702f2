//go:build integration

package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WalkDir(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "img", "pictures"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "index.html"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "img", "pictures", "hero.png"), []byte("x"), 0644))

	var files []string
	err := fs.WalkDir(tmpDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, relErr := filepath.Rel(tmpDir, path)
			require.NoError(t, relErr)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"index.html", "img/pictures/hero.png"}, files)
}

func TestFS_WalkDir_MissingRoot(t *testing.T) {
	fs := NewFS()

	err := fs.WalkDir(filepath.Join(t.TempDir(), "missing"), func(_ string, _ iofs.DirEntry, err error) error {
		return err
	})
	assert.Error(t, err)
}
