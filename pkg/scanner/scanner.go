// Package scanner implements the reference-resolution engine: it builds the
// set of asset paths reachable from the project's entry-point files and diffs
// it against the on-disk inventory.
package scanner

import (
	"fmt"

	"github.com/kgossett/asset-sweeper/pkg/asset"
	"github.com/kgossett/asset-sweeper/pkg/config"
	"github.com/kgossett/asset-sweeper/pkg/fs"
	"github.com/kgossett/asset-sweeper/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=scanner.go -destination=mocks/scanner.gen.go -package=mocks

// Scanner interface provides unused asset detection for a project tree.
type Scanner interface {
	// Scan walks the project at root and returns the unused asset report.
	Scan(root string) (*Report, error)
}

// NewScannerParams contains parameters for creating a new Scanner instance.
type NewScannerParams struct {
	FS     fs.FS
	Logger logger.Logger
	Config config.Config
}

type realScanner struct {
	fs     fs.FS
	logger logger.Logger
	config config.Config
}

// NewScanner creates a new Scanner instance.
func NewScanner(params NewScannerParams) Scanner {
	fsys := params.FS
	if fsys == nil {
		fsys = fs.NewFS()
	}
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &realScanner{
		fs:     fsys,
		logger: log,
		config: params.Config,
	}
}

// Scan walks the project at root and returns the unused asset report.
func (s *realScanner) Scan(root string) (*Report, error) {
	s.logger.Logf("Cataloguing files under %s", root)
	inv, err := asset.Collect(s.fs, asset.CollectParams{
		Root:     root,
		SkipDirs: s.config.SkipDirs,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Logf("Catalogued %d files", inv.Len())

	whitelist, err := s.loadWhitelist(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load whitelist: %w", err)
	}

	result := s.walkReferences(inv)
	whitelist.Add(result.directives...)

	unused := computeUnused(computeUnusedParams{
		Inventory:      inv,
		Referenced:     result.referenced,
		Whitelist:      whitelist,
		IncludeUnknown: s.config.IncludeUnknown,
	})
	s.logger.Logf("%d unused files found (%d referenced, %d warnings)",
		len(unused), len(result.referenced), len(result.warnings))

	return &Report{
		Root:       root,
		Total:      inv.Len(),
		Referenced: len(result.referenced),
		Unused:     unused,
		Warnings:   result.warnings,
	}, nil
}
