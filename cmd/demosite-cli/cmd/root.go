package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fs is where link files are read from; tests swap in a memory filesystem.
var fs afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "demosite-cli",
	Short: "Demo site CLI tool",
	Long: `demosite-cli inspects the demo site's navigation without running the server.

Available commands:
  render           Render the navigation bar for a path and viewport
  links validate   Check a navigation links file
  version          Print the version

Use "demosite-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
