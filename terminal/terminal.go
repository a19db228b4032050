// Package terminal is the driver boundary of the toolkit.
//
// The core composes views into a grid of Cells and hands that grid to a
// Terminal implementation. Drivers own everything below cell semantics:
// raw mode, escape encoding, color downsampling, input decoding. The
// production driver delegates all of it to tcell; the Sim driver keeps the
// grid in memory for tests.
package terminal

import "github.com/lixenwraith/termview/geom"

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Attribute is the opaque style value the core attaches to cells:
// a foreground/background pair plus style bits
type Attribute struct {
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// MakeAttribute builds an attribute from colors and style bits
func MakeAttribute(fg, bg RGB, attrs Attr) Attribute {
	return Attribute{Fg: fg, Bg: bg, Attrs: attrs}
}

// Cell represents a single terminal cell
type Cell struct {
	Rune rune
	Attr Attribute
}

// Terminal provides cell-level terminal access.
// Implementations must be safe to Fini more than once.
type Terminal interface {
	// Init acquires the terminal (raw mode, alternate screen)
	Init() error

	// Fini restores terminal state
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes the region of the cell buffer to the terminal.
	// Cells are row-major: cells[y*width + x]. The region is clipped to
	// the buffer; an empty region writes nothing.
	Flush(cells []Cell, width, height int, region geom.Rect)

	// MoveCursor positions the hardware cursor (0-indexed)
	MoveCursor(x, y int)

	// SetCursorVisible shows or hides the hardware cursor
	SetCursorVisible(visible bool)

	// Bell sounds the terminal bell
	Bell()

	// Sync forces a full repaint on the next Flush
	Sync()

	// PollEvent blocks until the next input event.
	// After Fini it returns an EventClosed event.
	PollEvent() Event

	// PostEvent injects a synthetic event into the queue
	PostEvent(Event)

	// SetMouseMode enables mouse reporting.
	// Modes can be combined: MouseModeClick | MouseModeDrag.
	SetMouseMode(mode MouseMode) error
}
