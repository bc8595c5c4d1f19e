package nav

// Link is a single navigation entry. A link with children is a parent link:
// it discloses a submenu and does not navigate on its own.
type Link struct {
	Label    string `json:"label" yaml:"label" validate:"required"`
	Href     string `json:"href,omitempty" yaml:"href,omitempty"`
	External bool   `json:"external,omitempty" yaml:"external,omitempty"`
	Children []Link `json:"children,omitempty" yaml:"children,omitempty" validate:"omitempty,dive"`
}

// IsParent reports whether the link discloses a submenu.
func (l Link) IsParent() bool {
	return len(l.Children) > 0
}

// DefaultLinks returns the fallback navigation used when no links are supplied.
func DefaultLinks() []Link {
	return []Link{
		{Label: "Home", Href: "/"},
		{Label: "About", Href: "/about"},
		{Label: "Contact", Href: "/contact"},
	}
}

// NormalizeLinks returns links ready for rendering. An empty input is replaced
// wholesale by DefaultLinks. Submenus are one level deep, so grandchildren are
// dropped.
func NormalizeLinks(links []Link) []Link {
	if len(links) == 0 {
		return DefaultLinks()
	}
	out := make([]Link, len(links))
	for i, l := range links {
		out[i] = l
		if len(l.Children) == 0 {
			out[i].Children = nil
			continue
		}
		children := make([]Link, len(l.Children))
		for j, c := range l.Children {
			c.Children = nil
			children[j] = c
		}
		out[i].Children = children
	}
	return out
}
