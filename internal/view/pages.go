package view

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/nfrund/demosite/internal/view/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PageData is what every full page needs besides its own body.
type PageData struct {
	AppName     string
	Title       string
	CurrentPath string
	Navbar      components.NavbarProps
	Flashes     Flashes
}

// Page renders body inside the site layout.
func Page(ctx context.Context, d PageData, body templ.Component) g.Node {
	d.Navbar.CurrentPath = d.CurrentPath
	d.Navbar.Brand = g.Text(d.AppName)
	return components.Layout(components.LayoutProps{
		AppName: d.AppName,
		Title:   d.Title,
		Navbar:  components.Navbar(d.Navbar),
		Footer: components.Footer(components.FooterProps{
			AppName: d.AppName,
			Year:    time.Now().Year(),
			Links:   d.Navbar.Snapshot.Links,
		}),
	},
		flashes(d.Flashes),
		FromTempl(ctx, body),
	)
}

func flashes(f Flashes) g.Node {
	if f.Empty() {
		return nil
	}
	var items []g.Node
	for _, m := range f.Success {
		items = append(items, h.P(h.Class("flash flash--success"), h.Role("status"), g.Text(m)))
	}
	for _, m := range f.Error {
		items = append(items, h.P(h.Class("flash flash--error"), h.Role("alert"), g.Text(m)))
	}
	return h.Div(h.Class("flashes"), g.Group(items))
}

// HomeContent is the landing page body.
func HomeContent(appName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="hero"><h1>`+templ.EscapeString(appName)+`</h1>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<p>Use the navigation above with a mouse or the keyboard. Arrow keys move between items, Enter opens a submenu and Escape closes it.</p>`); err != nil {
			return err
		}
		cta := components.Button(components.ButtonProps{Label: "About this site", Href: "/about"})
		if err := cta.Render(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// AboutContent is the about page body.
func AboutContent(links []nav.Link) templ.Component {
	cards := make([]g.Node, 0, len(links))
	for _, l := range links {
		subtitle := l.Href
		if l.IsParent() {
			subtitle = strconv.Itoa(len(l.Children)) + " pages"
		}
		cards = append(cards, components.Card(components.CardProps{Title: nav.AccessibleLabel(l), Subtitle: subtitle}))
	}
	return FromGomponent(h.Section(
		h.Class("about"),
		h.H1(g.Text("About")),
		h.P(g.Text("This demo exercises an accessible navigation bar: a responsive menu with nested submenus, keyboard traversal and focus containment on narrow screens.")),
		h.Div(h.Class("card-grid"), g.Group(cards)),
	))
}

// ContactContent is the contact page body.
func ContactContent(appName string) templ.Component {
	return FromGomponent(h.Section(
		h.Class("contact"),
		h.H1(g.Text("Contact")),
		components.Card(components.CardProps{
			Title:    appName,
			Subtitle: "Questions about the navigation demo",
			Footer: components.Button(components.ButtonProps{
				Label:   "Back to home",
				Href:    "/",
				Variant: components.ButtonSecondary,
			}),
		}, h.P(g.Text("Found a keyboard trap or a control you could not reach? Describe the keys you pressed and the page you were on."))),
	))
}
