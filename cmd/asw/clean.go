package main

import (
	"fmt"

	"github.com/kgossett/asset-sweeper/cmd/asw/internal/cli"
	"github.com/kgossett/asset-sweeper/pkg/sweeper"
	"github.com/spf13/cobra"
)

func createCleanCmd() *cobra.Command {
	var force bool

	cleanCmd := &cobra.Command{
		Use:   "clean [project-dir] [--force]",
		Short: "Delete unused assets from a project",
		Long: `Scan a project directory, review the unused assets interactively and
delete the confirmed ones. Run against a staged copy, not the original.

Examples:
  asw clean ~/Games/staging/MyProject
  asw clean ~/Games/staging/MyProject --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root, err := resolveProjectDir(args)
			if err != nil {
				return err
			}

			assetSweeper, err := cli.NewAssetSweeper()
			if err != nil {
				return err
			}

			result, err := assetSweeper.Clean(root, sweeper.CleanOpts{Force: force})
			if err != nil {
				return fmt.Errorf("failed to clean project: %w", err)
			}

			displayCleanResult(result)
			return nil
		},
	}

	cleanCmd.Flags().BoolVar(&force, "force", false, "Delete every unused asset without confirmation")

	return cleanCmd
}

// displayCleanResult prints the deletion summary.
func displayCleanResult(result *sweeper.CleanResult) {
	if cli.Quiet {
		return
	}

	switch {
	case result.Aborted:
		fmt.Println("Aborted, nothing deleted.")
	case len(result.Report.Unused) == 0:
		fmt.Printf("No unused assets found (%d files scanned).\n", result.Report.Total)
	default:
		fmt.Printf("Deleted %d of %d unused files", result.Removed, len(result.Report.Unused))
		if result.Failed > 0 {
			fmt.Printf(" (%d failed)", result.Failed)
		}
		fmt.Println(".")
	}
}
