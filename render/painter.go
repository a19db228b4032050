package render

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/terminal"
)

// Painter is a transient drawing handle bound to one layer for the duration
// of a single redraw call. It carries the cursor, current attribute and clip
// rectangle; none of that state survives the call that created it, so a
// failing draw cannot leak clip or attribute state into sibling draws.
type Painter struct {
	layer *Layer
	clip  geom.Rect
	attr  terminal.Attribute
	col   int
	row   int
}

// NewPainter creates a painter over the full layer bounds
func NewPainter(layer *Layer) *Painter {
	return &Painter{
		layer: layer,
		clip:  layer.Bounds(),
	}
}

// SetClip restricts drawing to region, intersected with the layer bounds
func (p *Painter) SetClip(region geom.Rect) {
	p.clip = region.Intersection(p.layer.Bounds())
}

// Clip returns the active clip rectangle
func (p *Painter) Clip() geom.Rect {
	return p.clip
}

// SetAttribute sets the attribute used by subsequent draws
func (p *Painter) SetAttribute(attr terminal.Attribute) {
	p.attr = attr
}

// Attribute returns the current attribute
func (p *Painter) Attribute() terminal.Attribute {
	return p.attr
}

// Goto moves the drawing cursor
func (p *Painter) Goto(col, row int) {
	p.col = col
	p.row = row
}

// Position returns the drawing cursor
func (p *Painter) Position() (col, row int) {
	return p.col, p.row
}

// DrawRune draws one rune at the cursor and advances by its cell width.
// Wide runes occupy two cells; the continuation cell gets a zero rune.
// Cells outside the clip rectangle are not written, but the cursor still
// advances so partially clipped text keeps its alignment.
func (p *Painter) DrawRune(r rune) {
	w := terminal.CellWidth(r)
	if w == 0 {
		return
	}
	p.drawCluster(r, w)
}

func (p *Painter) drawCluster(r rune, w int) {
	if p.clip.Contains(geom.Point{X: p.col, Y: p.row}) {
		p.layer.SetCell(p.col, p.row, terminal.Cell{Rune: r, Attr: p.attr})
		for i := 1; i < w; i++ {
			if p.clip.Contains(geom.Point{X: p.col + i, Y: p.row}) {
				p.layer.SetCell(p.col+i, p.row, terminal.Cell{Rune: 0, Attr: p.attr})
			}
		}
	}
	p.col += w
}

// DrawString draws a string at the cursor, one grapheme cluster per cell
// group. Combining sequences stay attached to their base cell instead of
// spilling into neighbors.
func (p *Painter) DrawString(s string) {
	g := graphemes.FromString(s)
	for g.Next() {
		cluster := g.Value()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		p.drawCluster(firstRune(cluster), w)
	}
}

// DrawStringAt positions the cursor and draws
func (p *Painter) DrawStringAt(col, row int, s string) {
	p.Goto(col, row)
	p.DrawString(s)
}

// Fill sets every cell of region within the clip to ch
func (p *Painter) Fill(region geom.Rect, ch rune) {
	p.layer.Fill(region.Intersection(p.clip), ch, p.attr)
}

// Clear fills the clip rectangle with spaces
func (p *Painter) Clear() {
	p.layer.Fill(p.clip, ' ', p.attr)
}

// Box drawing runes for frames
var (
	frameSingle = [6]rune{'─', '│', '┌', '┐', '└', '┘'}
	frameDouble = [6]rune{'═', '║', '╔', '╗', '╚', '╝'}
)

// DrawFrame draws a box border on the edge of region
func (p *Painter) DrawFrame(region geom.Rect, double bool) {
	if region.Width < 2 || region.Height < 2 {
		return
	}
	set := frameSingle
	if double {
		set = frameDouble
	}
	h, v := set[0], set[1]
	x2 := region.MaxX() - 1
	y2 := region.MaxY() - 1

	for x := region.X + 1; x < x2; x++ {
		p.set(x, region.Y, h)
		p.set(x, y2, h)
	}
	for y := region.Y + 1; y < y2; y++ {
		p.set(region.X, y, v)
		p.set(x2, y, v)
	}
	p.set(region.X, region.Y, set[2])
	p.set(x2, region.Y, set[3])
	p.set(region.X, y2, set[4])
	p.set(x2, y2, set[5])
}

func (p *Painter) set(x, y int, r rune) {
	if p.clip.Contains(geom.Point{X: x, Y: y}) {
		p.layer.SetCell(x, y, terminal.Cell{Rune: r, Attr: p.attr})
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
