package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	// ScriptPath is where the navigation client script is served.
	ScriptPath     = "/static/js/nav.js"
	StylesheetPath = "/static/css/site.css"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

type LayoutProps struct {
	AppName string
	Title   string
	Navbar  g.Node
	Footer  g.Node
}

// PageTitle builds the document title for a page.
func PageTitle(title, appName string) string {
	if title != "" {
		return title + " - " + appName
	}
	return appName
}

// Layout renders a full HTML document around the page body.
func Layout(p LayoutProps, body ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(PageTitle(p.Title, p.AppName))),
				h.Link(h.Rel("stylesheet"), h.Href(StylesheetPath)),
				h.Script(h.Src(htmxSrc), h.Defer()),
				h.Script(h.Src(ScriptPath), h.Defer()),
			),
			h.Body(
				h.A(h.Href("#main"), h.Class("skip-link"), g.Text("Skip to content")),
				p.Navbar,
				h.Main(h.ID("main"), g.Group(body)),
				p.Footer,
			),
		),
	})
}
