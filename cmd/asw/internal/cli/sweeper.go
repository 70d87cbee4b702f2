package cli

import (
	"github.com/kgossett/asset-sweeper/pkg/dependencies"
	"github.com/kgossett/asset-sweeper/pkg/logger"
	"github.com/kgossett/asset-sweeper/pkg/sweeper"
)

// NewAssetSweeper creates a new AssetSweeper instance wired with the
// appropriate ConfigManager and logger for the current flags.
func NewAssetSweeper() (sweeper.AssetSweeper, error) {
	configManager := NewConfigManager()

	cfg, err := configManager.GetConfigWithFallback()
	if err != nil {
		return nil, err
	}

	deps := dependencies.New().
		WithConfig(configManager).
		WithLogger(newLogger(cfg.LogFile))

	return sweeper.NewAssetSweeper(sweeper.NewAssetSweeperParams{
		Dependencies: deps,
	})
}

// newLogger picks the logger implied by the global flags and config.
func newLogger(logFile string) logger.Logger {
	if logFile != "" {
		return logger.NewFileLogger(logFile)
	}
	if Verbose && !Quiet {
		return logger.NewDefaultLogger()
	}
	return logger.NewNoopLogger()
}
