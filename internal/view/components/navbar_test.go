package components_test

import (
	"strings"
	"testing"

	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/view/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

var testLinks = []nav.Link{
	{Label: "Home", Href: "/"},
	{Label: "Products", Href: "/products", Children: []nav.Link{
		{Label: "Alpha", Href: "/products/a"},
		{Label: "Beta", Href: "/products/b"},
	}},
	{Label: "Docs", Href: "https://docs.example.com", External: true},
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func navbarHTML(t *testing.T, width int, path string, events ...nav.Event) string {
	t.Helper()
	c := nav.NewController(nav.Options{Links: testLinks, Width: width})
	for _, ev := range events {
		c.Dispatch(ev)
	}
	return render(t, components.Navbar(components.NavbarProps{
		Snapshot:     c.Snapshot(),
		CurrentPath:  path,
		Sticky:       true,
		SearchAction: "/search",
		EventsPath:   "/nav/events",
	}))
}

func TestNavbar_ClosedCompact(t *testing.T) {
	html := navbarHTML(t, 500, "/")

	assert.Contains(t, html, `aria-label="Open navigation menu"`)
	assert.Contains(t, html, `aria-controls="nav-menu"`)
	assert.Contains(t, html, `aria-expanded="false"`)
	assert.Contains(t, html, `<ul id="nav-menu" class="site-nav__menu is-hidden" aria-hidden="true">`)
	assert.Contains(t, html, `data-mode="compact"`)
	assert.NotContains(t, html, "data-contained")
	assert.NotContains(t, html, "nav-item-1-menu")
}

func TestNavbar_ExpandedMenuIsNotHidden(t *testing.T) {
	html := navbarHTML(t, 1024, "/")

	assert.Contains(t, html, `<ul id="nav-menu" class="site-nav__menu">`)
	assert.Contains(t, html, `data-mode="expanded"`)
}

func TestNavbar_OpenWithSubmenu(t *testing.T) {
	html := navbarHTML(t, 500, "/products/a",
		nav.Event{Kind: nav.EventSubmenu, Target: nav.ItemID(1)},
	)

	assert.Contains(t, html, `aria-label="Close navigation menu"`)
	assert.Contains(t, html, `data-contained="true"`)
	assert.Contains(t, html, `id="nav-sentinel-start" class="site-nav__sentinel" tabindex="0"`)
	assert.Contains(t, html, `aria-haspopup="true" aria-expanded="true"`)
	assert.Contains(t, html, `id="nav-item-1-menu"`)
	assert.Contains(t, html, `id="nav-item-1-0" href="/products/a" class="site-nav__link is-active" data-nav-select="true" aria-current="page"`)
	assert.Contains(t, html, "is-open")
}

func TestNavbar_ExternalLink(t *testing.T) {
	html := navbarHTML(t, 1024, "/")

	assert.Contains(t, html, `target="_blank"`)
	assert.Contains(t, html, `rel="noopener noreferrer"`)
	assert.Contains(t, html, `aria-label="Docs (opens in a new tab)"`)
}

func TestNavbar_ActiveMatching(t *testing.T) {
	html := navbarHTML(t, 1024, "/products/b/")

	assert.Contains(t, html, "site-nav__link site-nav__link--parent is-active")
	assert.NotContains(t, html, `href="/" class="site-nav__link is-active"`)
}

func TestNavbar_EventAttributes(t *testing.T) {
	html := navbarHTML(t, 500, "/")

	assert.Contains(t, html, `hx-post="/nav/events"`)
	assert.Contains(t, html, `hx-target="#site-nav"`)
	assert.Contains(t, html, `hx-swap="outerHTML"`)
	assert.Contains(t, html, `role="search"`)
	assert.Contains(t, html, `name="q"`)
}

func TestNavbar_NoEventsPath(t *testing.T) {
	c := nav.NewController(nav.Options{Width: 500})
	html := render(t, components.Navbar(components.NavbarProps{Snapshot: c.Snapshot()}))

	assert.NotContains(t, html, "hx-post")
	assert.NotContains(t, html, "role=\"search\"")
	assert.Contains(t, html, ">Contact</a>")
}

func TestNavbar_ShadowOnlyWhenStickyAndScrolled(t *testing.T) {
	scrolled := navbarHTML(t, 1024, "/", nav.Event{Kind: nav.EventScroll, ScrollY: 40})
	assert.Contains(t, scrolled, "site-nav--shadow")

	c := nav.NewController(nav.Options{Width: 1024})
	c.Dispatch(nav.Event{Kind: nav.EventScroll, ScrollY: 40})
	html := render(t, components.Navbar(components.NavbarProps{Snapshot: c.Snapshot()}))
	assert.NotContains(t, html, "site-nav--shadow")
}
