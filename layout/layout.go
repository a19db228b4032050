// Package layout defines the constraint expressions used by computed view
// frames. Pos describes one coordinate, Dim one dimension. Both are closed
// tagged unions evaluated against a container extent; the variants referencing
// another view read that view's already-resolved frame through the Anchor
// interface. Values are immutable once constructed and safe to share.
package layout

import "github.com/lixenwraith/termview/geom"

// Anchor is implemented by views whose resolved frame a Pos or Dim can
// reference. Frames are in the shared parent coordinate space, so edge
// values are directly usable as sibling coordinates.
type Anchor interface {
	Frame() geom.Rect
}

// Edge selects a side of a referenced view's frame
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// Axis selects a dimension of a referenced view's frame
type Axis uint8

const (
	AxisWidth Axis = iota
	AxisHeight
)

// clampPercent reproduces the legacy behavior: values outside [0,100]
// resolve as zero, not an error
func clampPercent(p int) int {
	if p < 0 || p > 100 {
		return 0
	}
	return p
}
