// Package render provides the per-view cell grid (Layer) and the transient
// drawing handle bound to it (Painter). Layers compose bottom-up: each view
// draws into its own layer, then layers blit into their parent's layer at the
// child frame origin, clipped to the parent bounds.
package render

import (
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/terminal"
)

// Layer is a 2D grid of cells owned by exactly one view.
// Cells are row-major: cells[y*width + x].
type Layer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewLayer creates a layer with the given dimensions
func NewLayer(width, height int) *Layer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Layer{
		cells:  make([]terminal.Cell, width*height),
		width:  width,
		height: height,
	}
}

// Resize adjusts layer dimensions, reallocating only if capacity is
// insufficient. Content is cleared.
func (l *Layer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(l.cells) < size {
		l.cells = make([]terminal.Cell, size)
	} else {
		l.cells = l.cells[:size]
		for i := range l.cells {
			l.cells[i] = terminal.Cell{}
		}
	}
	l.width = width
	l.height = height
}

// Width returns the layer width
func (l *Layer) Width() int {
	return l.width
}

// Height returns the layer height
func (l *Layer) Height() int {
	return l.height
}

// Bounds returns the layer extent at origin zero
func (l *Layer) Bounds() geom.Rect {
	return geom.Rect{Width: l.width, Height: l.height}
}

// Cell returns the cell at x, y, zero if out of bounds
func (l *Layer) Cell(x, y int) terminal.Cell {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return terminal.Cell{}
	}
	return l.cells[y*l.width+x]
}

// SetCell writes a cell with bounds checking
func (l *Layer) SetCell(x, y int, c terminal.Cell) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}
	l.cells[y*l.width+x] = c
}

// Fill sets every cell in the region, clipped to the layer
func (l *Layer) Fill(region geom.Rect, ch rune, attr terminal.Attribute) {
	region = region.Intersection(l.Bounds())
	for y := region.Y; y < region.MaxY(); y++ {
		row := y * l.width
		for x := region.X; x < region.MaxX(); x++ {
			l.cells[row+x] = terminal.Cell{Rune: ch, Attr: attr}
		}
	}
}

// Clear fills the whole layer with spaces in the given attribute
func (l *Layer) Clear(attr terminal.Attribute) {
	l.Fill(l.Bounds(), ' ', attr)
}

// Blit copies srcRect of src into this layer at dstX, dstY.
// The copy is clipped to both layers; src and dst must be distinct layers.
func (l *Layer) Blit(src *Layer, srcRect geom.Rect, dstX, dstY int) {
	srcRect = srcRect.Intersection(src.Bounds())
	// Clip against destination, adjusting the source origin in step
	dst := geom.NewRect(dstX, dstY, srcRect.Width, srcRect.Height).Intersection(l.Bounds())
	if dst.IsEmpty() {
		return
	}
	sx := srcRect.X + (dst.X - dstX)
	sy := srcRect.Y + (dst.Y - dstY)

	for y := 0; y < dst.Height; y++ {
		srcRow := (sy + y) * src.width
		dstRow := (dst.Y + y) * l.width
		copy(l.cells[dstRow+dst.X:dstRow+dst.X+dst.Width],
			src.cells[srcRow+sx:srcRow+sx+dst.Width])
	}
}

// Cells exposes the backing slice for the driver flush.
// Callers must not hold the slice across a Resize.
func (l *Layer) Cells() []terminal.Cell {
	return l.cells
}
