package nav

const (
	labelOpenMenu  = "Open navigation menu"
	labelCloseMenu = "Close navigation menu"
	externalSuffix = " (opens in a new tab)"
)

// ARIA is the accessibility surface derived from the menu state and layout.
// It is recomputed inside every transition so it never lags the state.
type ARIA struct {
	TriggerExpanded  bool
	TriggerLabel     string
	MenuHidden       bool
	OpenSubmenu      int
	SentinelsEnabled bool
}

// DeriveARIA computes the attributes for state s in viewport v.
func DeriveARIA(s MenuState, v Viewport) ARIA {
	a := ARIA{
		TriggerExpanded:  s.MobileOpen,
		TriggerLabel:     labelOpenMenu,
		MenuHidden:       v.Compact() && !s.MobileOpen,
		OpenSubmenu:      s.OpenSubmenu,
		SentinelsEnabled: s.MobileOpen,
	}
	if s.MobileOpen {
		a.TriggerLabel = labelCloseMenu
	}
	return a
}

// ParentExpanded reports the aria-expanded value for parent item i.
func (a ARIA) ParentExpanded(i int) bool {
	return a.OpenSubmenu == i
}

// AccessibleLabel returns the label announced for l.
func AccessibleLabel(l Link) string {
	if l.External {
		return l.Label + externalSuffix
	}
	return l.Label
}
