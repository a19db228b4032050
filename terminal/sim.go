package terminal

import (
	"strings"

	"github.com/lixenwraith/termview/geom"
)

// Sim is an in-memory Terminal for tests. It records flushed cells, cursor
// state and bell counts, and lets tests inject input and resizes.
type Sim struct {
	width  int
	height int
	cells  []Cell

	events chan Event

	CursorX       int
	CursorY       int
	CursorVisible bool
	BellCount     int
	FlushCount    int
	MouseMode     MouseMode
}

// NewSim creates a simulation terminal with the given dimensions
func NewSim(width, height int) *Sim {
	s := &Sim{events: make(chan Event, 64)}
	s.setSize(width, height)
	return s
}

func (s *Sim) setSize(width, height int) {
	s.width = width
	s.height = height
	s.cells = make([]Cell, width*height)
}

func (s *Sim) Init() error {
	return nil
}

func (s *Sim) Fini() {}

func (s *Sim) Size() (int, int) {
	return s.width, s.height
}

func (s *Sim) Flush(cells []Cell, width, height int, region geom.Rect) {
	s.FlushCount++
	region = region.Intersection(geom.NewRect(0, 0, width, height))
	region = region.Intersection(geom.NewRect(0, 0, s.width, s.height))
	for y := region.Y; y < region.MaxY(); y++ {
		for x := region.X; x < region.MaxX(); x++ {
			s.cells[y*s.width+x] = cells[y*width+x]
		}
	}
}

func (s *Sim) MoveCursor(x, y int) {
	s.CursorX = x
	s.CursorY = y
	s.CursorVisible = true
}

func (s *Sim) SetCursorVisible(visible bool) {
	s.CursorVisible = visible
}

func (s *Sim) Bell() {
	s.BellCount++
}

func (s *Sim) Sync() {}

func (s *Sim) PollEvent() Event {
	return <-s.events
}

func (s *Sim) PostEvent(ev Event) {
	s.events <- ev
}

func (s *Sim) SetMouseMode(mode MouseMode) error {
	s.MouseMode = mode
	return nil
}

// Resize changes the simulated terminal size and queues a resize event
func (s *Sim) Resize(width, height int) {
	s.setSize(width, height)
	s.PostEvent(ResizeEvent(width, height))
}

// CellAt returns the last flushed cell at x, y
func (s *Sim) CellAt(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{}
	}
	return s.cells[y*s.width+x]
}

// Line returns row y as a string, zero runes rendered as spaces
func (s *Sim) Line(y int) string {
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		r := s.CellAt(x, y).Rune
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}
