package widget

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/terminal"
	"github.com/lixenwraith/termview/view"
)

// Box is a container with a border and an optional title. Subviews are
// positioned in the box's own coordinate space; Inner reports the region
// inside the border.
type Box struct {
	*view.View
	title  string
	double bool
}

// NewBox creates a bordered container
func NewBox(title string) *Box {
	b := &Box{View: view.New(), title: title}
	return b
}

// SetTitle replaces the border title
func (b *Box) SetTitle(title string) {
	if title == b.title {
		return
	}
	b.title = title
	b.SetNeedsDisplay()
}

// Title returns the border title
func (b *Box) Title() string {
	return b.title
}

// SetDouble switches between single and double line borders
func (b *Box) SetDouble(double bool) {
	b.double = double
	b.SetNeedsDisplay()
}

// Inner returns the content region inside the border
func (b *Box) Inner() geom.Rect {
	bounds := b.Bounds()
	if bounds.Width < 2 || bounds.Height < 2 {
		return geom.Rect{}
	}
	return geom.NewRect(1, 1, bounds.Width-2, bounds.Height-2)
}

func (b *Box) Redraw(region geom.Rect, p *render.Painter) {
	p.Clear()
	bounds := b.Bounds()
	p.DrawFrame(bounds, b.double)
	if b.title == "" || bounds.Width < 6 {
		return
	}
	title := truncate(" "+b.title+" ", bounds.Width-4)
	p.DrawStringAt(2, 0, title)
}

// truncate cuts s to at most max cells on grapheme cluster boundaries,
// so wide runes and combining sequences are never split
func truncate(s string, max int) string {
	if terminal.StringWidth(s) <= max {
		return s
	}
	var b strings.Builder
	cells := 0
	g := graphemes.FromString(s)
	for g.Next() {
		cluster := g.Value()
		w := terminal.StringWidth(cluster)
		if cells+w > max {
			break
		}
		b.WriteString(cluster)
		cells += w
	}
	return b.String()
}
