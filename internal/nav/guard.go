package nav

// Guard keeps Tab focus inside the open compact menu by wrapping between the
// two sentinels. It must see Tab events before any other handler.
type Guard struct {
	machine *Machine
	focus   Focuser
}

// NewGuard returns a guard bound to the machine's open flag.
func NewGuard(m *Machine, f Focuser) *Guard {
	return &Guard{machine: m, focus: f}
}

// Active reports whether the guard is intercepting.
func (g *Guard) Active() bool {
	return g.machine.State().MobileOpen
}

// HandleTab returns true when it wrapped focus and the default tab move must
// be suppressed. Unmounted sentinels make it a no-op.
func (g *Guard) HandleTab(shift bool) bool {
	if !g.Active() {
		return false
	}
	switch focused := g.focus.Focused(); {
	case !shift && focused == SentinelEndID:
		return g.focus.Focus(SentinelStartID)
	case shift && focused == SentinelStartID:
		return g.focus.Focus(SentinelEndID)
	}
	return false
}
