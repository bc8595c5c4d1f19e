package nav

// Focuser is the focus capability the controller drives. Implementations
// report whether the target was mounted; an unmounted target is a no-op.
type Focuser interface {
	Focus(id string) bool
	Focused() string
}

// FocusTracker is a Focuser for a remote rendering surface. It mirrors the
// focused element reported by the client and records the focus commands the
// client must apply.
type FocusTracker struct {
	focused  string
	mounted  func(id string) bool
	commands []string
}

// NewFocusTracker returns a tracker. mounted decides whether an element
// currently exists on the rendered surface; nil means every id exists.
func NewFocusTracker(mounted func(id string) bool) *FocusTracker {
	return &FocusTracker{mounted: mounted}
}

// Focus moves focus to id if it is mounted.
func (t *FocusTracker) Focus(id string) bool {
	if id == "" {
		return false
	}
	if t.mounted != nil && !t.mounted(id) {
		return false
	}
	t.focused = id
	t.commands = append(t.commands, id)
	return true
}

// Focused returns the id of the focused element, or "".
func (t *FocusTracker) Focused() string {
	return t.focused
}

// Report records focus changes made by the client itself.
func (t *FocusTracker) Report(id string) {
	t.focused = id
}

// Drain returns and clears the pending focus commands.
func (t *FocusTracker) Drain() []string {
	cmds := t.commands
	t.commands = nil
	return cmds
}
