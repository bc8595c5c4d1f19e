package components

import (
	"github.com/nfrund/demosite/internal/nav"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type FooterProps struct {
	AppName string
	Year    int
	Links   []nav.Link
}

// Footer renders the copyright line and a flat list of links. Children of
// parent links are listed inline.
func Footer(p FooterProps) g.Node {
	var items []g.Node
	for _, l := range p.Links {
		if l.IsParent() {
			for _, c := range l.Children {
				items = append(items, footerLink(c))
			}
			continue
		}
		items = append(items, footerLink(l))
	}
	return h.Footer(
		h.Class("site-footer"),
		g.If(len(items) > 0, h.Nav(h.Aria("label", "Footer"), h.Ul(h.Class("site-footer__links"), g.Group(items)))),
		h.P(h.Class("site-footer__copy"), g.Textf("© %d %s", p.Year, p.AppName)),
	)
}

func footerLink(l nav.Link) g.Node {
	return h.Li(h.A(
		h.Href(l.Href),
		g.If(l.External, h.Target("_blank")),
		g.If(l.External, h.Rel("noopener noreferrer")),
		g.If(l.External, h.Aria("label", nav.AccessibleLabel(l))),
		g.Text(l.Label),
	))
}
