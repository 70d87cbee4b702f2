// Package sweeper orchestrates the asset workflow: staging a project copy,
// scanning it for unused assets and deleting them on confirmation.
package sweeper

import (
	"fmt"

	"github.com/kgossett/asset-sweeper/pkg/config"
	"github.com/kgossett/asset-sweeper/pkg/dependencies"
	"github.com/kgossett/asset-sweeper/pkg/logger"
	"github.com/kgossett/asset-sweeper/pkg/scanner"
	"github.com/kgossett/asset-sweeper/pkg/staging"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=sweeper.go -destination=mocks/sweeper.gen.go -package=mocks

// AssetSweeper interface provides unused-asset detection and cleanup.
type AssetSweeper interface {
	// Scan analyzes the project at root and returns the unused asset report.
	Scan(root string) (*scanner.Report, error)
	// Clean scans the project at root and deletes the unused assets the
	// user confirms.
	Clean(root string, opts ...CleanOpts) (*CleanResult, error)
	// Stage copies the project at src into the staging directory and
	// returns the staged path.
	Stage(src string, opts ...StageOpts) (string, error)
	// SetLogger sets the logger for this AssetSweeper instance.
	SetLogger(logger logger.Logger)
}

// NewAssetSweeperParams contains parameters for creating a new AssetSweeper
// instance. Scanner and Stager are optional; when nil they are built from
// the loaded configuration.
type NewAssetSweeperParams struct {
	Dependencies *dependencies.Dependencies
	Scanner      scanner.Scanner
	Stager       staging.Stager
}

type realAssetSweeper struct {
	deps    *dependencies.Dependencies
	scanner scanner.Scanner
	stager  staging.Stager
}

// NewAssetSweeper creates a new AssetSweeper instance.
func NewAssetSweeper(params NewAssetSweeperParams) (AssetSweeper, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realAssetSweeper{
		deps:    deps,
		scanner: params.Scanner,
		stager:  params.Stager,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (s *realAssetSweeper) VerbosePrint(msg string, args ...interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// SetLogger sets the logger for this AssetSweeper instance.
func (s *realAssetSweeper) SetLogger(logger logger.Logger) {
	s.deps.Logger = logger
}

// getConfig gets the configuration from the ConfigManager with fallback.
func (s *realAssetSweeper) getConfig() (config.Config, error) {
	return s.deps.Config.GetConfigWithFallback()
}

// getScanner returns the injected scanner or builds one from the config.
func (s *realAssetSweeper) getScanner(cfg config.Config) scanner.Scanner {
	if s.scanner != nil {
		return s.scanner
	}
	return scanner.NewScanner(scanner.NewScannerParams{
		FS:     s.deps.FS,
		Logger: s.deps.Logger,
		Config: cfg,
	})
}

// getStager returns the injected stager or builds one from the config.
func (s *realAssetSweeper) getStager(cfg config.Config) staging.Stager {
	if s.stager != nil {
		return s.stager
	}
	return staging.NewStager(staging.NewStagerParams{
		FS:       s.deps.FS,
		Logger:   s.deps.Logger,
		SkipDirs: cfg.SkipDirs,
	})
}
