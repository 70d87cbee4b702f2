package main

import (
	"fmt"

	"github.com/kgossett/asset-sweeper/cmd/asw/internal/cli"
	"github.com/kgossett/asset-sweeper/pkg/sweeper"
	"github.com/spf13/cobra"
)

func createStageCmd() *cobra.Command {
	var force bool

	stageCmd := &cobra.Command{
		Use:   "stage <project-dir> [--force]",
		Short: "Copy a project into the staging directory",
		Long: `Copy a project directory into the configured staging directory so scans
and deletions never touch the original. An existing staged copy is
replaced only after confirmation.

Examples:
  asw stage ~/Games/MyProject`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			assetSweeper, err := cli.NewAssetSweeper()
			if err != nil {
				return err
			}

			dst, err := assetSweeper.Stage(args[0], sweeper.StageOpts{Force: force})
			if err != nil {
				return fmt.Errorf("failed to stage project: %w", err)
			}

			if !cli.Quiet {
				fmt.Printf("Staged to %s\n", dst)
			}
			return nil
		},
	}

	stageCmd.Flags().BoolVar(&force, "force", false, "Replace an existing staged copy without confirmation")

	return stageCmd
}
