package nav

// CompactBreakpoint is the width, in CSS pixels, below which the navigation
// collapses behind the hamburger trigger.
const CompactBreakpoint = 700

// DefaultViewportWidth is assumed until the client reports its real width.
const DefaultViewportWidth = 1024

// ViewportMode is the layout the navigation renders in.
type ViewportMode string

const (
	ModeCompact  ViewportMode = "compact"
	ModeExpanded ViewportMode = "expanded"
)

// Classify maps a viewport width to a layout mode.
func Classify(width int) ViewportMode {
	if width < CompactBreakpoint {
		return ModeCompact
	}
	return ModeExpanded
}

// Viewport holds the latest width and scroll signals. It is presentational
// only and never touches the menu state.
type Viewport struct {
	Width    int
	ScrollY  int
	Mode     ViewportMode
	Scrolled bool
}

// NewViewport classifies the initial width immediately so the first render
// does not wait for a resize signal.
func NewViewport(width int) Viewport {
	if width <= 0 {
		width = DefaultViewportWidth
	}
	return Viewport{Width: width, Mode: Classify(width)}
}

// Resize records a new width and recomputes the mode.
func (v *Viewport) Resize(width int) {
	if width <= 0 {
		return
	}
	v.Width = width
	v.Mode = Classify(width)
}

// Scroll records a new vertical scroll offset.
func (v *Viewport) Scroll(y int) {
	if y < 0 {
		y = 0
	}
	v.ScrollY = y
	v.Scrolled = y > 0
	v.Mode = Classify(v.Width)
}

// Compact reports whether the hamburger layout is in use.
func (v Viewport) Compact() bool {
	return v.Mode == ModeCompact
}
