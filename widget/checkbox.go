package widget

import (
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/terminal"
	"github.com/lixenwraith/termview/view"
)

// Checkbox is a toggleable boolean option
type Checkbox struct {
	*view.View
	text    string
	checked bool

	// OnChange, if set, is called after every toggle
	OnChange func(checked bool)
}

// NewCheckbox creates an unchecked checkbox with the given text
func NewCheckbox(text string) *Checkbox {
	c := &Checkbox{View: view.New(), text: text}
	c.SetCanFocus(true)
	return c
}

// Checked returns the current state
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked sets the state without invoking OnChange
func (c *Checkbox) SetChecked(checked bool) {
	if checked == c.checked {
		return
	}
	c.checked = checked
	c.SetNeedsDisplay()
}

// Toggle flips the state and invokes OnChange
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	c.SetNeedsDisplay()
	if c.OnChange != nil {
		c.OnChange(c.checked)
	}
}

func (c *Checkbox) Redraw(region geom.Rect, p *render.Painter) {
	cs := c.ColorScheme()
	attr := cs.Normal
	if c.HasFocus() {
		attr = cs.Focus
	}
	p.SetAttribute(attr)
	p.Clear()

	mark := ' '
	if c.checked {
		mark = 'x'
	}
	p.DrawStringAt(0, 0, "["+string(mark)+"] "+c.text)
}

func (c *Checkbox) ProcessKey(ev *terminal.Event) bool {
	if ev.Key == terminal.KeySpace || ev.Rune == ' ' {
		c.Toggle()
		return true
	}
	return false
}

func (c *Checkbox) MouseEvent(ev *view.MouseEvent) bool {
	if ev.Action == terminal.MouseActionPress && ev.Button == terminal.MouseBtnLeft {
		c.Toggle()
		return true
	}
	return false
}

// PositionCursor parks the cursor on the check mark while focused
func (c *Checkbox) PositionCursor() (geom.Point, bool) {
	return geom.Point{X: 1, Y: 0}, true
}
