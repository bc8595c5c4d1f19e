package cmd

import (
	"fmt"
	"io"

	"github.com/nfrund/demosite/internal/links"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/spf13/cobra"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Work with navigation links files",
}

var linksValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a navigation links file",
	Long: `Parse and validate a YAML or JSON links file and print the links the
navigation would show. Grandchildren are dropped, since menus nest one level.

Examples:
  demosite-cli links validate nav.yaml
  demosite-cli links validate config/links.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := links.NewSource(fs, args[0])
		if err := source.Reload(); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "❌ %s is invalid: %v\n", args[0], err)
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ %s is valid\n", args[0])
		printLinks(out, source.Links())
		return nil
	},
}

func printLinks(w io.Writer, ls []nav.Link) {
	for _, l := range ls {
		fmt.Fprintf(w, "   %s -> %s%s\n", l.Label, l.Href, externalMark(l))
		for _, c := range l.Children {
			fmt.Fprintf(w, "     - %s -> %s%s\n", c.Label, c.Href, externalMark(c))
		}
	}
}

func externalMark(l nav.Link) string {
	if l.External {
		return " (external)"
	}
	return ""
}

func init() {
	linksCmd.AddCommand(linksValidateCmd)
	rootCmd.AddCommand(linksCmd)
}
