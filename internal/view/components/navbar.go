package components

import (
	"encoding/json"
	"strconv"

	"github.com/nfrund/demosite/internal/nav"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// NavbarID is the element id the htmx swaps target.
const NavbarID = "site-nav"

// NavbarProps configures the navigation bar. Everything except Snapshot and
// CurrentPath is presentation only.
type NavbarProps struct {
	Snapshot          nav.Snapshot
	CurrentPath       string
	Sticky            bool
	ClassName         string
	SearchPlaceholder string
	// SearchAction is where the search form posts; empty hides the form.
	SearchAction string
	// EventsPath receives navigation events from the client.
	EventsPath string
	// SocketPath, when set, makes the client send events over a WebSocket.
	SocketPath string
	Brand      g.Node
	Actions    g.Node
}

// Navbar renders the site header from a controller snapshot.
func Navbar(p NavbarProps) g.Node {
	snap := p.Snapshot
	aria := snap.ARIA

	return h.Header(
		h.ID(NavbarID),
		h.Class(navbarClass(p)),
		h.Data("mode", string(snap.Viewport.Mode)),
		h.Data("events", p.EventsPath),
		g.If(p.SocketPath != "", h.Data("socket", p.SocketPath)),
		g.If(aria.SentinelsEnabled, h.Data("contained", "true")),
		h.Div(h.Class("site-nav__bar"),
			g.If(p.Brand != nil, h.A(h.Class("site-nav__brand"), h.Href("/"), p.Brand)),
			h.Button(
				h.ID(nav.TriggerID),
				h.Type("button"),
				h.Class("site-nav__toggle"),
				h.Aria("label", aria.TriggerLabel),
				h.Aria("controls", snap.MenuID),
				h.Aria("expanded", strconv.FormatBool(aria.TriggerExpanded)),
				eventAttrs(p.EventsPath, map[string]any{"kind": nav.EventToggle}),
				h.Span(h.Class("site-nav__toggle-icon"), h.Aria("hidden", "true")),
			),
			h.Nav(h.Class("site-nav__nav"), h.Aria("label", "Main"),
				sentinel(nav.SentinelStartID, aria.SentinelsEnabled),
				h.Ul(
					h.ID(snap.MenuID),
					h.Class(menuClass(aria.MenuHidden)),
					g.If(aria.MenuHidden, h.Aria("hidden", "true")),
					g.Group(navItems(p)),
				),
				sentinel(nav.SentinelEndID, aria.SentinelsEnabled),
			),
			g.If(p.SearchAction != "", searchForm(p)),
			g.If(p.Actions != nil, h.Div(h.Class("site-nav__actions"), p.Actions)),
		),
	)
}

func navbarClass(p NavbarProps) string {
	classes := []string{"site-nav", "site-nav--" + string(p.Snapshot.Viewport.Mode)}
	if p.Sticky {
		classes = append(classes, "site-nav--sticky")
	}
	if p.Sticky && p.Snapshot.Viewport.Scrolled {
		classes = append(classes, "site-nav--shadow")
	}
	if p.Snapshot.State.MobileOpen {
		classes = append(classes, "is-open")
	}
	if p.ClassName != "" {
		classes = append(classes, p.ClassName)
	}
	return joinClasses(classes...)
}

func navItems(p NavbarProps) []g.Node {
	snap := p.Snapshot
	items := make([]g.Node, 0, len(snap.Links))
	for i, l := range snap.Links {
		if !l.IsParent() {
			items = append(items, h.Li(h.Class("site-nav__item"), leafLink(nav.ItemID(i), l, p.CurrentPath)))
			continue
		}
		expanded := snap.ARIA.ParentExpanded(i)
		items = append(items, h.Li(
			h.Class("site-nav__item site-nav__item--parent"),
			h.Button(
				h.ID(nav.ItemID(i)),
				h.Type("button"),
				h.Class(parentClass(nav.IsLinkActive(p.CurrentPath, l))),
				h.Aria("haspopup", "true"),
				h.Aria("expanded", strconv.FormatBool(expanded)),
				eventAttrs(p.EventsPath, map[string]any{"kind": nav.EventSubmenu, "target": nav.ItemID(i)}),
				g.Text(l.Label),
			),
			g.If(expanded, submenu(i, l, p.CurrentPath)),
		))
	}
	return items
}

func submenu(i int, parent nav.Link, currentPath string) g.Node {
	children := make([]g.Node, len(parent.Children))
	for j, c := range parent.Children {
		children[j] = h.Li(h.Class("site-nav__subitem"), leafLink(nav.ChildID(i, j), c, currentPath))
	}
	return h.Ul(
		h.ID(nav.ItemID(i)+"-menu"),
		h.Class("site-nav__submenu"),
		h.Aria("label", parent.Label),
		g.Group(children),
	)
}

func leafLink(id string, l nav.Link, currentPath string) g.Node {
	active := nav.IsActive(currentPath, l.Href)
	return h.A(
		h.ID(id),
		h.Href(l.Href),
		h.Class(linkClass(active)),
		h.Data("nav-select", "true"),
		g.If(active, h.Aria("current", "page")),
		g.If(l.External, h.Target("_blank")),
		g.If(l.External, h.Rel("noopener noreferrer")),
		g.If(l.External, h.Aria("label", nav.AccessibleLabel(l))),
		g.Text(l.Label),
	)
}

func sentinel(id string, enabled bool) g.Node {
	tabIndex := "-1"
	if enabled {
		tabIndex = "0"
	}
	return h.Span(h.ID(id), h.Class("site-nav__sentinel"), h.TabIndex(tabIndex), h.Aria("hidden", "true"))
}

func searchForm(p NavbarProps) g.Node {
	return h.Form(
		h.Class("site-nav__search"),
		h.Role("search"),
		h.Method("post"),
		h.Action(p.SearchAction),
		hx.Post(p.SearchAction),
		hx.Swap("none"),
		h.Input(
			h.Type("search"),
			h.Name("q"),
			h.Class("site-nav__search-input"),
			h.Placeholder(p.SearchPlaceholder),
			h.Aria("label", "Search"),
		),
	)
}

// eventAttrs posts an event to the controller and swaps the navbar with the
// returned fragment.
func eventAttrs(path string, vals map[string]any) g.Node {
	if path == "" {
		return nil
	}
	encoded, _ := json.Marshal(vals)
	return g.Group([]g.Node{
		hx.Post(path),
		hx.Vals(string(encoded)),
		hx.Target("#" + NavbarID),
		hx.Swap("outerHTML"),
	})
}

func linkClass(active bool) string {
	if active {
		return "site-nav__link is-active"
	}
	return "site-nav__link"
}

func parentClass(active bool) string {
	if active {
		return "site-nav__link site-nav__link--parent is-active"
	}
	return "site-nav__link site-nav__link--parent"
}

func menuClass(hidden bool) string {
	if hidden {
		return "site-nav__menu is-hidden"
	}
	return "site-nav__menu"
}
