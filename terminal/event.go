package terminal

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventError  // Read error
	EventClosed // Terminal finalized, no further events
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError

	// Mouse event fields
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// KeyEvent builds a key event
func KeyEvent(key Key, r rune, mods Modifier) Event {
	return Event{Type: EventKey, Key: key, Rune: r, Modifiers: mods}
}

// RuneEvent builds a printable-character key event
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// MouseEvent builds a mouse event at absolute screen coordinates
func MouseEvent(x, y int, btn MouseButton, action MouseAction) Event {
	return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseBtn: btn, MouseAction: action}
}

// ResizeEvent builds a resize event
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}
