// Package staging copies a project tree into a working directory so scans
// and deletions never touch the original.
package staging

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/kgossett/asset-sweeper/pkg/fs"
	"github.com/kgossett/asset-sweeper/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=staging.go -destination=mocks/staging.gen.go -package=mocks

// Stager interface provides project tree staging.
type Stager interface {
	// Stage copies the tree at src into dst, skipping the configured
	// directories, and returns the number of files copied. dst must not
	// already exist.
	Stage(src, dst string) (int, error)
}

// NewStagerParams contains parameters for creating a new Stager instance.
type NewStagerParams struct {
	FS       fs.FS
	Logger   logger.Logger
	SkipDirs []string
}

type realStager struct {
	fs       fs.FS
	logger   logger.Logger
	skipDirs []string
}

// NewStager creates a new Stager instance.
func NewStager(params NewStagerParams) Stager {
	fsys := params.FS
	if fsys == nil {
		fsys = fs.NewFS()
	}
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &realStager{
		fs:       fsys,
		logger:   log,
		skipDirs: params.SkipDirs,
	}
}

// Stage copies the tree at src into dst, skipping the configured
// directories, and returns the number of files copied.
func (s *realStager) Stage(src, dst string) (int, error) {
	isDir, err := s.fs.IsDir(src)
	if err != nil || !isDir {
		return 0, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
	}

	exists, err := s.fs.Exists(dst)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}

	if isWithin(src, dst) {
		return 0, fmt.Errorf("%w: %s is inside %s", ErrDestinationInsideSource, dst, src)
	}

	skip := make(map[string]bool, len(s.skipDirs))
	for _, dir := range s.skipDirs {
		skip[dir] = true
	}

	copied := 0
	err = s.fs.WalkDir(src, func(p string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if p != src && skip[d.Name()] {
				return iofs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(src, p)
		if relErr != nil {
			return relErr
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}
		if copyErr := s.fs.CopyFile(p, filepath.Join(dst, rel), info.Mode().Perm()); copyErr != nil {
			return copyErr
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("failed to stage %s: %w", src, err)
	}

	s.logger.Logf("Staged %d files from %s to %s", copied, src, dst)
	return copied, nil
}

// isWithin reports whether child is src itself or a path under it.
func isWithin(src, child string) bool {
	rel, err := filepath.Rel(src, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
