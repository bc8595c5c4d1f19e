package nav

// Key values as reported by KeyboardEvent.key.
const (
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeyTab        = "Tab"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// KeyEvent is a keydown delivered to the navigation.
type KeyEvent struct {
	Key   string
	Shift bool
}
