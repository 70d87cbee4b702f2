package main

import (
	"fmt"

	"github.com/kgossett/asset-sweeper/cmd/asw/internal/cli"
	"github.com/kgossett/asset-sweeper/pkg/scanner"
	"github.com/spf13/cobra"
)

func createScanCmd() *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan [project-dir]",
		Short: "List unused assets in a project",
		Long: `Scan a project directory and list every asset file nothing references.
Nothing is deleted.

Examples:
  asw scan ~/Games/staging/MyProject`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root, err := resolveProjectDir(args)
			if err != nil {
				return err
			}

			sweeper, err := cli.NewAssetSweeper()
			if err != nil {
				return err
			}

			report, err := sweeper.Scan(root)
			if err != nil {
				return fmt.Errorf("failed to scan project: %w", err)
			}

			displayReport(report)
			return nil
		},
	}

	return scanCmd
}

// displayReport prints the unused files, parse warnings and counts.
func displayReport(report *scanner.Report) {
	if cli.Quiet {
		for _, relPath := range report.Unused {
			fmt.Println(relPath)
		}
		return
	}

	for _, warning := range report.Warnings {
		fmt.Printf("Warning: could not parse %s: %v\n", warning.Path, warning.Err)
	}

	if len(report.Unused) == 0 {
		fmt.Printf("No unused assets found (%d files scanned).\n", report.Total)
		return
	}

	fmt.Printf("Unused assets in %s:\n", report.Root)
	for _, relPath := range report.Unused {
		fmt.Printf("  %s\n", relPath)
	}
	fmt.Printf("%d unused of %d files (%d referenced).\n",
		len(report.Unused), report.Total, report.Referenced)
}
