package widget

import (
	"unicode"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/terminal"
	"github.com/lixenwraith/termview/view"
)

// Button is a push button. The label may carry an '&' accelerator; Alt plus
// that rune presses the button from anywhere in the toplevel. A default
// button additionally answers Enter during the cold phase, after the
// focused widget declined it.
type Button struct {
	*view.View
	text      string
	accel     rune
	accelAt   int
	isDefault bool
	onPress   func()

	pressed bool
}

// NewButton creates a button invoking onPress when activated
func NewButton(label string, onPress func()) *Button {
	b := &Button{View: view.New(), onPress: onPress}
	b.text, b.accel, b.accelAt = parseAccel(label)
	b.SetCanFocus(true)
	return b
}

// SetDefault marks the button as the toplevel's default action
func (b *Button) SetDefault(isDefault bool) {
	b.isDefault = isDefault
	b.SetNeedsDisplay()
}

// Press activates the button programmatically
func (b *Button) Press() {
	if b.onPress != nil {
		b.onPress()
	}
}

func (b *Button) Redraw(region geom.Rect, p *render.Painter) {
	cs := b.ColorScheme()
	attr, hotAttr := cs.Normal, cs.HotNormal
	if b.HasFocus() {
		attr, hotAttr = cs.Focus, cs.HotFocus
	}
	p.SetAttribute(attr)
	p.Clear()

	label := b.text
	if b.isDefault {
		label = "< " + label + " >"
	} else {
		label = "[ " + label + " ]"
	}
	x := (b.Bounds().Width - terminal.StringWidth(label)) / 2
	if x < 0 {
		x = 0
	}
	p.DrawStringAt(x, 0, label)

	if b.accelAt >= 0 {
		p.SetAttribute(hotAttr)
		p.Goto(x+2+b.accelAt, 0)
		p.DrawRune(b.accel)
	}
}

func (b *Button) ProcessHotKey(ev *terminal.Event) bool {
	if b.accel == 0 || ev.Modifiers&terminal.ModAlt == 0 {
		return false
	}
	if unicode.ToLower(ev.Rune) != unicode.ToLower(b.accel) {
		return false
	}
	b.Press()
	return true
}

func (b *Button) ProcessKey(ev *terminal.Event) bool {
	if ev.Key == terminal.KeyEnter || ev.Key == terminal.KeySpace || ev.Rune == ' ' {
		b.Press()
		return true
	}
	return false
}

func (b *Button) ProcessColdKey(ev *terminal.Event) bool {
	if b.isDefault && ev.Key == terminal.KeyEnter {
		b.Press()
		return true
	}
	return false
}

func (b *Button) MouseEvent(ev *view.MouseEvent) bool {
	switch ev.Action {
	case terminal.MouseActionPress:
		if ev.Button != terminal.MouseBtnLeft {
			return false
		}
		b.pressed = true
		return true
	case terminal.MouseActionRelease:
		if !b.pressed {
			return false
		}
		b.pressed = false
		if b.Bounds().Contains(geom.Point{X: ev.X, Y: ev.Y}) {
			b.Press()
		}
		return true
	}
	return false
}
