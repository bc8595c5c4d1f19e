package nav

// Outcome reports how the router treated a key event.
type Outcome struct {
	// Handled means the default browser action must be suppressed.
	Handled bool
	// Navigate means a leaf link was activated and the browser should follow it.
	Navigate bool
}

// Router translates key events on menu items into focus moves and state
// machine calls.
type Router struct {
	machine  *Machine
	registry *Registry
	focus    Focuser
	frames   Scheduler

	cancelPending func()
}

// NewRouter wires a router to its collaborators.
func NewRouter(m *Machine, r *Registry, f Focuser, s Scheduler) *Router {
	return &Router{machine: m, registry: r, focus: f, frames: s}
}

// HandleKey dispatches an event targeted at element id. Events on elements
// outside the registry only honour Escape.
func (r *Router) HandleKey(id string, ev KeyEvent) Outcome {
	if p, ok := r.registry.Locate(id); ok {
		if p.TopLevel() {
			return r.HandleItemKey(p.Index, ev)
		}
		return r.HandleChildKey(p.Index, p.Child, ev)
	}
	if ev.Key == KeyEscape {
		return r.escape()
	}
	return Outcome{}
}

// HandleItemKey handles a key on top-level item i.
func (r *Router) HandleItemKey(i int, ev KeyEvent) Outcome {
	n := r.registry.Len()
	if i < 0 || i >= n {
		return Outcome{}
	}
	state := r.machine.State()
	submenuHere := state.OpenSubmenu == i

	switch ev.Key {
	case KeyEnter, KeyArrowDown:
		if r.registry.IsParent(i) {
			r.machine.OpenSubmenu(i)
			r.focusChildAfterRender(i, 0)
			return Outcome{Handled: true}
		}
		if ev.Key == KeyEnter {
			r.machine.SelectLeafLink()
			return Outcome{Navigate: true}
		}
	case KeyArrowUp:
		if submenuHere && r.registry.IsParent(i) {
			r.focus.Focus(r.registry.Child(i, r.registry.SubmenuLen(i)-1))
			return Outcome{Handled: true}
		}
	case KeyArrowRight:
		r.focus.Focus(r.registry.Item((i + 1) % n))
		return Outcome{Handled: true}
	case KeyArrowLeft:
		r.focus.Focus(r.registry.Item((i - 1 + n) % n))
		return Outcome{Handled: true}
	case KeyHome:
		r.focus.Focus(r.registry.Item(0))
		return Outcome{Handled: true}
	case KeyEnd:
		r.focus.Focus(r.registry.Item(n - 1))
		return Outcome{Handled: true}
	case KeyEscape:
		if submenuHere {
			r.machine.CloseSubmenu()
			return Outcome{Handled: true}
		}
		return r.escape()
	case KeyTab:
		// Tab keeps its default behaviour; it only folds the submenu away.
		if submenuHere {
			r.machine.CloseSubmenu()
		}
	}
	return Outcome{}
}

// HandleChildKey handles a key on child j of the submenu under item i.
func (r *Router) HandleChildKey(i, j int, ev KeyEvent) Outcome {
	m := r.registry.SubmenuLen(i)
	if j < 0 || j >= m {
		return Outcome{}
	}

	switch ev.Key {
	case KeyArrowDown:
		r.focus.Focus(r.registry.Child(i, (j+1)%m))
		return Outcome{Handled: true}
	case KeyArrowUp:
		r.focus.Focus(r.registry.Child(i, (j-1+m)%m))
		return Outcome{Handled: true}
	case KeyHome:
		r.focus.Focus(r.registry.Child(i, 0))
		return Outcome{Handled: true}
	case KeyEnd:
		r.focus.Focus(r.registry.Child(i, m-1))
		return Outcome{Handled: true}
	case KeyEscape, KeyTab:
		r.machine.CloseSubmenu()
		r.focus.Focus(r.registry.Item(i))
		return Outcome{Handled: true}
	case KeyEnter:
		r.machine.SelectLeafLink()
		return Outcome{Navigate: true}
	}
	return Outcome{}
}

// Cancel drops any pending deferred focus move.
func (r *Router) Cancel() {
	if r.cancelPending != nil {
		r.cancelPending()
		r.cancelPending = nil
	}
}

func (r *Router) escape() Outcome {
	if !r.machine.State().MobileOpen {
		return Outcome{}
	}
	if r.machine.Escape() {
		r.focus.Focus(TriggerID)
	}
	return Outcome{Handled: true}
}

// focusChildAfterRender moves focus into the submenu once it has been
// rendered. The move is dropped if the state changed in the meantime.
func (r *Router) focusChildAfterRender(i, j int) {
	r.Cancel()
	gen := r.machine.Generation()
	r.cancelPending = r.frames.Schedule(func() {
		r.cancelPending = nil
		if r.machine.Generation() != gen || r.machine.State().OpenSubmenu != i {
			return
		}
		if j >= r.registry.SubmenuLen(i) {
			return
		}
		r.focus.Focus(r.registry.Child(i, j))
	})
}
