package main

import (
	"fmt"

	"github.com/kgossett/asset-sweeper/cmd/asw/internal/cli"
	"github.com/kgossett/asset-sweeper/pkg/config"
	"github.com/kgossett/asset-sweeper/pkg/prompt"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var (
		reset      bool
		stagingDir string
	)

	initCmd := &cobra.Command{
		Use:   "init [--staging-dir <path>] [--reset]",
		Short: "Initialize asw configuration",
		Long: `Initialize asw configuration with an interactive prompt or direct path
specification.

Flags:
  --staging-dir   Set the staging directory directly (skips interactive prompt)
  --reset         Overwrite an existing configuration with fresh defaults`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(stagingDir, reset)
		},
	}

	initCmd.Flags().StringVar(&stagingDir, "staging-dir", "",
		"Set the staging directory directly (skips interactive prompt)")
	initCmd.Flags().BoolVar(&reset, "reset", false,
		"Overwrite an existing configuration with fresh defaults")

	return initCmd
}

func runInit(stagingDir string, reset bool) error {
	manager := cli.NewConfigManager()

	if _, err := manager.GetConfig(); err == nil && !reset {
		fmt.Printf("Configuration already exists at %s. Use --reset to overwrite.\n",
			manager.GetConfigPath())
		return nil
	}

	cfg := config.DefaultConfig()
	if stagingDir == "" {
		chosen, err := prompt.NewPrompt().PromptForStagingDir(cfg.StagingDir)
		if err != nil {
			return err
		}
		cfg.StagingDir = chosen
	} else {
		cfg.StagingDir = stagingDir
	}

	if err := manager.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	if !cli.Quiet {
		fmt.Printf("Configuration written to %s\n", manager.GetConfigPath())
	}
	return nil
}
