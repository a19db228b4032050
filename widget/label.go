package widget

import (
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/terminal"
	"github.com/lixenwraith/termview/view"
)

// Align controls horizontal text placement inside a label
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label is a single line of static text
type Label struct {
	*view.View
	text  string
	align Align
}

// NewLabel creates a label showing text
func NewLabel(text string) *Label {
	l := &Label{View: view.New(), text: text}
	return l
}

// SetText replaces the label text
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.SetNeedsDisplay()
}

// Text returns the current text
func (l *Label) Text() string {
	return l.text
}

// SetAlign sets horizontal alignment
func (l *Label) SetAlign(a Align) {
	l.align = a
	l.SetNeedsDisplay()
}

func (l *Label) Redraw(region geom.Rect, p *render.Painter) {
	p.Clear()
	x := 0
	switch l.align {
	case AlignCenter:
		x = (l.Bounds().Width - terminal.StringWidth(l.text)) / 2
	case AlignRight:
		x = l.Bounds().Width - terminal.StringWidth(l.text)
	}
	if x < 0 {
		x = 0
	}
	p.DrawStringAt(x, 0, l.text)
}
