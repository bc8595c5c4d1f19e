package nav

import "strconv"

// NoSubmenu is the OpenSubmenu value when no submenu is disclosed.
const NoSubmenu = -1

// MenuState is the canonical disclosure state of the navigation.
type MenuState struct {
	MobileOpen  bool `json:"mobileOpen"`
	OpenSubmenu int  `json:"openSubmenu"`
}

// ClosedState is the state every navigation starts in.
var ClosedState = MenuState{OpenSubmenu: NoSubmenu}

// SubmenuOpen reports whether any submenu is disclosed.
func (s MenuState) SubmenuOpen() bool {
	return s.OpenSubmenu != NoSubmenu
}

// String names the state: closed, open, or submenu(i).
func (s MenuState) String() string {
	switch {
	case !s.MobileOpen:
		return "closed"
	case s.SubmenuOpen():
		return "submenu(" + strconv.Itoa(s.OpenSubmenu) + ")"
	default:
		return "open"
	}
}

// Cause identifies the transition function that produced a state change.
type Cause string

const (
	CauseToggle       Cause = "toggle"
	CauseOpenSubmenu  Cause = "open_submenu"
	CauseCloseSubmenu Cause = "close_submenu"
	CauseSelectLeaf   Cause = "select_leaf"
	CauseEscape       Cause = "escape"
)

// Transition describes a single state change.
type Transition struct {
	From       MenuState
	To         MenuState
	Cause      Cause
	Generation uint64
}

// Observer is notified synchronously, inside the transition call, after the
// new state has been stored.
type Observer func(Transition)

// Machine owns MenuState. It is the only writer of that state; it is not safe
// for concurrent use and relies on its owner to serialize events.
type Machine struct {
	state      MenuState
	size       int
	generation uint64
	observers  []Observer
}

// NewMachine returns a closed machine for a navigation with size top-level links.
func NewMachine(size int) *Machine {
	return &Machine{state: ClosedState, size: size}
}

// State returns the current state.
func (m *Machine) State() MenuState {
	return m.state
}

// Generation increases on every state change. Deferred work compares it to
// detect that the state moved on.
func (m *Machine) Generation() uint64 {
	return m.generation
}

// Observe registers an observer.
func (m *Machine) Observe(o Observer) {
	m.observers = append(m.observers, o)
}

// ToggleMenu opens a closed menu, or closes an open one along with any submenu.
func (m *Machine) ToggleMenu() {
	if m.state.MobileOpen {
		m.set(ClosedState, CauseToggle)
		return
	}
	m.set(MenuState{MobileOpen: true, OpenSubmenu: NoSubmenu}, CauseToggle)
}

// OpenSubmenu discloses submenu i. Opening a submenu always marks the menu
// open, including in the expanded layout. Out-of-range indexes are ignored.
func (m *Machine) OpenSubmenu(i int) {
	if i < 0 || i >= m.size {
		return
	}
	m.set(MenuState{MobileOpen: true, OpenSubmenu: i}, CauseOpenSubmenu)
}

// CloseSubmenu hides the open submenu and keeps the menu open.
func (m *Machine) CloseSubmenu() {
	if !m.state.SubmenuOpen() {
		return
	}
	m.set(MenuState{MobileOpen: m.state.MobileOpen, OpenSubmenu: NoSubmenu}, CauseCloseSubmenu)
}

// SelectLeafLink closes everything; a leaf link is about to navigate.
func (m *Machine) SelectLeafLink() {
	m.set(ClosedState, CauseSelectLeaf)
}

// Escape closes the innermost open layer. It reports whether the whole menu
// was closed, in which case focus belongs on the hamburger trigger.
func (m *Machine) Escape() bool {
	switch {
	case m.state.SubmenuOpen():
		m.CloseSubmenu()
		return false
	case m.state.MobileOpen:
		m.set(ClosedState, CauseEscape)
		return true
	}
	return false
}

func (m *Machine) set(next MenuState, cause Cause) {
	if next == m.state {
		return
	}
	prev := m.state
	m.state = next
	m.generation++
	t := Transition{From: prev, To: next, Cause: cause, Generation: m.generation}
	for _, o := range m.observers {
		o(t)
	}
}
