// Package geom provides integer cell-coordinate geometry for the toolkit.
// All values are plain value types; a Rect with zero width or height is empty.
package geom

import "fmt"

// Point is a position in cell coordinates
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair, never negative
type Size struct {
	Width, Height int
}

// IsEmpty returns true if either dimension is zero or negative
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an origin plus size in cell coordinates
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect builds a rect, clamping negative dimensions to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// IsEmpty returns true if the rect covers no cells
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rect dimensions
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MaxX returns the exclusive right edge
func (r Rect) MaxX() int {
	return r.X + r.Width
}

// MaxY returns the exclusive bottom edge
func (r Rect) MaxY() int {
	return r.Y + r.Height
}

// Contains returns true if the point lies inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Intersects returns true if the rects share at least one cell
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersection(o).IsEmpty()
}

// Intersection returns the overlapping region, empty if none
func (r Rect) Intersection(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.MaxX(), o.MaxX())
	y2 := min(r.MaxY(), o.MaxY())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Union returns the smallest rect covering both.
// An empty rect is the identity, so dirty-region accumulation can start from Rect{}.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.MaxX(), o.MaxX())
	y2 := max(r.MaxY(), o.MaxY())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Offset returns the rect translated by dx, dy
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// String returns "(x,y wxh)" for debugging
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
