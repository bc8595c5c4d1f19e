package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type CardProps struct {
	Title     string
	Subtitle  string
	Elevated  bool
	ClassName string
	Footer    g.Node
}

// Card renders a titled content panel.
func Card(p CardProps, children ...g.Node) g.Node {
	class := "card"
	if p.Elevated {
		class = joinClasses(class, "card--elevated")
	}
	return h.Article(
		h.Class(joinClasses(class, p.ClassName)),
		g.If(p.Title != "" || p.Subtitle != "",
			h.Header(h.Class("card__header"),
				g.If(p.Title != "", h.H2(h.Class("card__title"), g.Text(p.Title))),
				g.If(p.Subtitle != "", h.P(h.Class("card__subtitle"), g.Text(p.Subtitle))),
			),
		),
		h.Div(h.Class("card__body"), g.Group(children)),
		g.If(p.Footer != nil, h.Footer(h.Class("card__footer"), p.Footer)),
	)
}
