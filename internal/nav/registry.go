package nav

import "fmt"

// Element ids shared between the controller and the rendered markup.
const (
	TriggerID       = "nav-trigger"
	SentinelStartID = "nav-sentinel-start"
	SentinelEndID   = "nav-sentinel-end"
)

// ItemID is the element id of top-level item i.
func ItemID(i int) string {
	return fmt.Sprintf("nav-item-%d", i)
}

// ChildID is the element id of child j in the submenu of item i.
func ChildID(i, j int) string {
	return fmt.Sprintf("nav-item-%d-%d", i, j)
}

// Position locates a focusable item. Child is -1 for top-level items.
type Position struct {
	Index int
	Child int
}

// TopLevel reports whether the position is a top-level item.
func (p Position) TopLevel() bool {
	return p.Child < 0
}

// Registry is the ordered set of focusable item handles, built once from the
// links instead of being re-derived from rendered output on every keystroke.
type Registry struct {
	items    []string
	children [][]string
	index    map[string]Position
}

// NewRegistry builds the registry for normalized links.
func NewRegistry(links []Link) *Registry {
	r := &Registry{
		items:    make([]string, len(links)),
		children: make([][]string, len(links)),
		index:    make(map[string]Position),
	}
	for i, l := range links {
		r.items[i] = ItemID(i)
		r.index[r.items[i]] = Position{Index: i, Child: -1}
		for j := range l.Children {
			id := ChildID(i, j)
			r.children[i] = append(r.children[i], id)
			r.index[id] = Position{Index: i, Child: j}
		}
	}
	return r
}

// Len is the number of top-level items.
func (r *Registry) Len() int {
	return len(r.items)
}

// Item returns the id of top-level item i.
func (r *Registry) Item(i int) string {
	return r.items[i]
}

// SubmenuLen is the number of children under item i.
func (r *Registry) SubmenuLen(i int) int {
	if i < 0 || i >= len(r.children) {
		return 0
	}
	return len(r.children[i])
}

// Child returns the id of child j under item i.
func (r *Registry) Child(i, j int) string {
	return r.children[i][j]
}

// IsParent reports whether item i has a submenu.
func (r *Registry) IsParent(i int) bool {
	return r.SubmenuLen(i) > 0
}

// Locate finds the position of an element id.
func (r *Registry) Locate(id string) (Position, bool) {
	p, ok := r.index[id]
	return p, ok
}
