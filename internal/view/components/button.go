package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ButtonVariant selects the visual style of a Button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonSize selects the padding scale of a Button.
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

type ButtonProps struct {
	Label     string
	Variant   ButtonVariant
	Size      ButtonSize
	Disabled  bool
	ClassName string
	// Href renders the button as a link when set.
	Href  string
	Attrs []g.Node
}

func Button(p ButtonProps) g.Node {
	variant := p.Variant
	if variant == "" {
		variant = ButtonPrimary
	}
	size := p.Size
	if size == "" {
		size = ButtonMedium
	}
	class := joinClasses("btn", "btn--"+string(variant), "btn--"+string(size), p.ClassName)

	if p.Href != "" && !p.Disabled {
		return h.A(h.Href(p.Href), h.Class(class), g.Group(p.Attrs), g.Text(p.Label))
	}
	return h.Button(
		h.Type("button"),
		h.Class(class),
		g.If(p.Disabled, h.Disabled()),
		g.If(p.Disabled, h.Aria("disabled", "true")),
		g.Group(p.Attrs),
		g.Text(p.Label),
	)
}
