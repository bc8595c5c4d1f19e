package nav

import "sync"

// EventKind enumerates the signals the controller accepts.
type EventKind string

const (
	EventKey     EventKind = "key"
	EventToggle  EventKind = "toggle"
	EventSubmenu EventKind = "submenu"
	EventSelect  EventKind = "select"
	EventResize  EventKind = "resize"
	EventScroll  EventKind = "scroll"
	EventFocus   EventKind = "focus"
)

// Event is a single input signal from the client.
type Event struct {
	Kind    EventKind `json:"kind" form:"kind" validate:"required,oneof=key toggle submenu select resize scroll focus"`
	Target  string    `json:"target,omitempty" form:"target" validate:"max=64"`
	Key     string    `json:"key,omitempty" form:"key" validate:"required_if=Kind key,max=32"`
	Shift   bool      `json:"shift,omitempty" form:"shift"`
	Width   int       `json:"width,omitempty" form:"width" validate:"min=0,max=100000"`
	ScrollY int       `json:"scrollY,omitempty" form:"scrollY" validate:"min=0"`
}

// Result tells the transport what to do with the event.
type Result struct {
	Handled   bool     `json:"handled"`
	Navigate  bool     `json:"navigate"`
	Contained bool     `json:"contained"`
	Changed   bool     `json:"changed"`
	// Redraw is set when the rendered navigation no longer matches the
	// controller: the menu state, viewport mode or scroll shadow moved, or a
	// deferred focus move is waiting for the next render.
	Redraw bool     `json:"redraw"`
	Focus  []string `json:"focus,omitempty"`
}

// Snapshot is everything a renderer needs to draw the navigation.
type Snapshot struct {
	Links    []Link
	MenuID   string
	State    MenuState
	Viewport Viewport
	ARIA     ARIA
}

// Options configures a Controller. Observers run while the controller is
// locked and must not call back into it.
type Options struct {
	Links     []Link
	MenuID    string
	Width     int
	Observers []Observer
}

// Controller composes the viewport classifier, state machine, keyboard
// router and focus guard for one mounted navigation. Events are applied one
// at a time, fully, before the next is accepted.
type Controller struct {
	mu sync.Mutex

	links    []Link
	menuID   string
	viewport Viewport
	machine  *Machine
	registry *Registry
	focus    *FocusTracker
	frames   *FrameQueue
	router   *Router
	guard    *Guard

	aria     ARIA
	rendered MenuState
	closed   bool
}

// NewController mounts a navigation in the closed state.
func NewController(opts Options) *Controller {
	links := NormalizeLinks(opts.Links)
	menuID := opts.MenuID
	if menuID == "" {
		menuID = "nav-menu"
	}
	c := &Controller{
		links:    links,
		menuID:   menuID,
		viewport: NewViewport(opts.Width),
		machine:  NewMachine(len(links)),
		registry: NewRegistry(links),
		frames:   NewFrameQueue(),
		rendered: ClosedState,
	}
	c.focus = NewFocusTracker(c.mounted)
	c.router = NewRouter(c.machine, c.registry, c.focus, c.frames)
	c.guard = NewGuard(c.machine, c.focus)
	c.aria = DeriveARIA(c.machine.State(), c.viewport)
	c.machine.Observe(func(Transition) {
		c.aria = DeriveARIA(c.machine.State(), c.viewport)
	})
	for _, o := range opts.Observers {
		c.machine.Observe(o)
	}
	return c
}

// Dispatch applies one event.
func (c *Controller) Dispatch(ev Event) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return Result{}
	}

	gen := c.machine.Generation()
	mode, scrolled := c.viewport.Mode, c.viewport.Scrolled
	var res Result
	switch ev.Kind {
	case EventKey:
		res = c.key(ev)
	case EventToggle:
		c.machine.ToggleMenu()
		res.Handled = true
	case EventSubmenu:
		if p, ok := c.registry.Locate(ev.Target); ok && p.TopLevel() && c.registry.IsParent(p.Index) {
			if c.machine.State().OpenSubmenu == p.Index {
				c.machine.CloseSubmenu()
			} else {
				c.machine.OpenSubmenu(p.Index)
			}
			res.Handled = true
		}
	case EventSelect:
		c.machine.SelectLeafLink()
		res.Navigate = true
	case EventResize:
		c.viewport.Resize(ev.Width)
		c.aria = DeriveARIA(c.machine.State(), c.viewport)
	case EventScroll:
		c.viewport.Scroll(ev.ScrollY)
	case EventFocus:
		c.focus.Report(ev.Target)
	}
	res.Changed = c.machine.Generation() != gen
	res.Redraw = res.Changed || mode != c.viewport.Mode || scrolled != c.viewport.Scrolled || c.frames.Pending() > 0
	res.Focus = c.focus.Drain()
	return res
}

func (c *Controller) key(ev Event) Result {
	if ev.Target != "" {
		c.focus.Report(ev.Target)
	}
	// The containment guard sees Tab first, like a capturing listener.
	if ev.Key == KeyTab && c.guard.HandleTab(ev.Shift) {
		return Result{Handled: true, Contained: true}
	}
	out := c.router.HandleKey(ev.Target, KeyEvent{Key: ev.Key, Shift: ev.Shift})
	return Result{Handled: out.Handled, Navigate: out.Navigate}
}

// RenderComplete tells the controller the latest snapshot is on screen. It
// runs deferred focus moves and returns the focus commands they issued.
func (c *Controller) RenderComplete() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.rendered = c.machine.State()
	c.frames.Flush()
	return c.focus.Drain()
}

// Snapshot returns the current render input.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Links:    c.links,
		MenuID:   c.menuID,
		State:    c.machine.State(),
		Viewport: c.viewport,
		ARIA:     c.aria,
	}
}

// Focused returns the element the controller believes has focus.
func (c *Controller) Focused() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focus.Focused()
}

// PendingFocus is the number of deferred focus moves waiting for a render.
func (c *Controller) PendingFocus() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames.Pending()
}

// Close unmounts the navigation. Pending deferred work is dropped and later
// events are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.router.Cancel()
	c.frames.Close()
}

// mounted reports whether id exists on the surface as last rendered.
func (c *Controller) mounted(id string) bool {
	switch id {
	case TriggerID:
		return true
	case SentinelStartID, SentinelEndID:
		return c.rendered.MobileOpen
	}
	p, ok := c.registry.Locate(id)
	if !ok {
		return false
	}
	if p.TopLevel() {
		return true
	}
	return c.rendered.OpenSubmenu == p.Index
}
