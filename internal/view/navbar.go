package view

import (
	"net/url"

	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/view/components"
)

// NavbarConfig holds the presentation settings shared by every navbar render,
// full page or fragment.
type NavbarConfig struct {
	Sticky            bool
	SearchPlaceholder string
	SearchAction      string
	EventsPath        string
	SocketPath        string
}

// Props builds navbar props for a snapshot rendered at currentPath.
func (c NavbarConfig) Props(snap nav.Snapshot, currentPath string) components.NavbarProps {
	return components.NavbarProps{
		Snapshot:          snap,
		CurrentPath:       currentPath,
		Sticky:            c.Sticky,
		SearchPlaceholder: c.SearchPlaceholder,
		SearchAction:      c.SearchAction,
		EventsPath:        c.EventsPath,
		SocketPath:        c.SocketPath,
	}
}

// PathOf extracts the path from a full URL such as htmx's HX-Current-URL
// header. Anything unparsable yields "/".
func PathOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
