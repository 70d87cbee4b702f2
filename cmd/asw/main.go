// Package main provides the command-line interface for the asset sweeper.
package main

import (
	"log"

	"github.com/kgossett/asset-sweeper/cmd/asw/internal/cli"
	"github.com/kgossett/asset-sweeper/pkg/prompt"
	"github.com/spf13/cobra"
)

// resolveProjectDir returns the project directory argument, prompting for
// one when the command was invoked without it.
func resolveProjectDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return prompt.NewPrompt().PromptForProjectDir(".")
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "asw",
		Short: "Asset Sweeper - unused game asset detection",
		Long: `A CLI tool that stages a game project into a working copy, scans it for ` +
			`asset files nothing references, and deletes them on confirmation.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createScanCmd(), createCleanCmd(), createStageCmd(), createInitCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
