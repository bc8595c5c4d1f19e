package cmd

import (
	"fmt"

	"github.com/nfrund/demosite/internal/links"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/view/components"
	"github.com/spf13/cobra"
)

var renderOpts struct {
	path      string
	width     int
	linksFile string
	open      bool
	submenu   int
	sticky    bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the navigation bar as HTML",
	Long: `Render the navigation bar for a current path and viewport width and print the HTML.

Examples:
  demosite-cli render --path /products/a --width 500
  demosite-cli render --width 500 --open --links nav.yaml
  demosite-cli render --submenu 1`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	source := links.NewSource(fs, renderOpts.linksFile)
	if err := source.Reload(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, using default links\n", err)
	}

	c := nav.NewController(nav.Options{Links: source.Links(), Width: renderOpts.width})
	defer c.Close()
	if renderOpts.open {
		c.Dispatch(nav.Event{Kind: nav.EventToggle})
	}
	if renderOpts.submenu >= 0 {
		res := c.Dispatch(nav.Event{Kind: nav.EventSubmenu, Target: nav.ItemID(renderOpts.submenu)})
		if !res.Handled {
			return fmt.Errorf("item %d has no submenu", renderOpts.submenu)
		}
	}

	node := components.Navbar(components.NavbarProps{
		Snapshot:    c.Snapshot(),
		CurrentPath: renderOpts.path,
		Sticky:      renderOpts.sticky,
	})
	if err := node.Render(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("render navbar: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderOpts.path, "path", "/", "current page path used for active-link matching")
	f.IntVar(&renderOpts.width, "width", nav.DefaultViewportWidth, "viewport width in pixels")
	f.StringVar(&renderOpts.linksFile, "links", "", "YAML or JSON links file (defaults to the built-in links)")
	f.BoolVar(&renderOpts.open, "open", false, "open the mobile menu before rendering")
	f.IntVar(&renderOpts.submenu, "submenu", -1, "index of the submenu to expand")
	f.BoolVar(&renderOpts.sticky, "sticky", true, "render the sticky variant")
	rootCmd.AddCommand(renderCmd)
}
