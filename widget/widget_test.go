package widget

import (
	"strings"
	"testing"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/terminal"
	"github.com/lixenwraith/termview/theme"
	"github.com/lixenwraith/termview/view"
)

// framed is the widget surface the render helper needs; every widget in
// this package satisfies it through the embedded view
type framed interface {
	view.Widget
	SetFrame(geom.Rect)
	Layer() *render.Layer
}

// renderWidget puts the widget alone in a toplevel sized width x height
// and runs one full render pass, returning the widget's layer
func renderWidget(t *testing.T, w framed, width, height int) *render.Layer {
	t.Helper()
	sim := terminal.NewSim(width, height)
	app := view.NewApp(sim)
	tl := view.NewToplevel()
	tl.AddSubview(w)
	w.SetFrame(geom.NewRect(0, 0, width, height))
	app.Push(tl)
	app.Refresh()
	return w.Layer()
}

func layerLine(l *render.Layer, y int) string {
	var b strings.Builder
	for x := 0; x < l.Width(); x++ {
		r := l.Cell(x, y).Rune
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestParseAccel(t *testing.T) {
	tests := []struct {
		in     string
		text   string
		accel  rune
		offset int
	}{
		{"&Ok", "Ok", 'O', 0},
		{"C&ancel", "Cancel", 'a', 1},
		{"Plain", "Plain", 0, -1},
		{"Save && Exit", "Save & Exit", 0, -1},
		{"&A && &B", "A & B", 'A', 0},
	}
	for _, tt := range tests {
		text, accel, offset := parseAccel(tt.in)
		if text != tt.text || accel != tt.accel || offset != tt.offset {
			t.Errorf("parseAccel(%q) = (%q, %q, %d), want (%q, %q, %d)",
				tt.in, text, accel, offset, tt.text, tt.accel, tt.offset)
		}
	}
}

func TestLabelAlignment(t *testing.T) {
	l := NewLabel("hi")
	layer := renderWidget(t, l, 8, 1)
	if got := layerLine(layer, 0); got != "hi      " {
		t.Errorf("left aligned = %q", got)
	}

	l.SetAlign(AlignCenter)
	layer = renderWidget(t, l, 8, 1)
	if got := layerLine(layer, 0); got != "   hi   " {
		t.Errorf("centered = %q", got)
	}

	l.SetAlign(AlignRight)
	layer = renderWidget(t, l, 8, 1)
	if got := layerLine(layer, 0); got != "      hi" {
		t.Errorf("right aligned = %q", got)
	}
}

func TestLabelSetTextInvalidates(t *testing.T) {
	l := NewLabel("a")
	renderWidget(t, l, 10, 1)
	if !l.NeedsDisplay().IsEmpty() {
		t.Fatal("still dirty after a render pass")
	}
	l.SetText("b")
	if l.NeedsDisplay().IsEmpty() {
		t.Error("SetText did not invalidate")
	}
	if l.Text() != "b" {
		t.Errorf("text = %q", l.Text())
	}
}

func TestBoxBorderAndTitle(t *testing.T) {
	b := NewBox("Log")
	layer := renderWidget(t, b, 10, 3)
	if got := layerLine(layer, 0); got != "┌─ Log ──┐" {
		t.Errorf("top border = %q", got)
	}
	if got := layerLine(layer, 2); got != "└────────┘" {
		t.Errorf("bottom border = %q", got)
	}
	if got := b.Inner(); got != geom.NewRect(1, 1, 8, 1) {
		t.Errorf("inner = %v", got)
	}
}

func TestTruncateClusterBoundaries(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"abc", 5, "abc"},
		{"abcdef", 3, "abc"},
		{"日本語", 6, "日本語"},
		// A wide rune never splits across the limit
		{"日本語", 3, "日"},
		{"日本語", 4, "日本"},
		// Combining mark stays with its base
		{"née", 2, "né"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestBoxWideTitleTruncation(t *testing.T) {
	b := NewBox("日本語タイトル")
	layer := renderWidget(t, b, 10, 3)
	// 6 cells fit:  ' ' + 日 + 本, then the border resumes; continuation
	// cells of wide runes read back as blanks
	if got := layerLine(layer, 0); got != "┌─ 日 本 ──┐" {
		t.Errorf("top border = %q", got)
	}
}

func TestBoxTooSmallForBorder(t *testing.T) {
	b := NewBox("t")
	if !b.Inner().IsEmpty() {
		t.Errorf("inner of zero box = %v, want empty", b.Inner())
	}
}

func TestButtonActivation(t *testing.T) {
	presses := 0
	b := NewButton("&Ok", func() { presses++ })

	enter := terminal.KeyEvent(terminal.KeyEnter, 0, 0)
	if !b.ProcessKey(&enter) {
		t.Error("enter not handled")
	}
	space := terminal.RuneEvent(' ')
	b.ProcessKey(&space)

	alt := terminal.KeyEvent(terminal.KeyRune, 'o', terminal.ModAlt)
	if !b.ProcessHotKey(&alt) {
		t.Error("accelerator not handled")
	}
	plain := terminal.RuneEvent('o')
	if b.ProcessHotKey(&plain) {
		t.Error("accelerator fired without Alt")
	}

	if presses != 3 {
		t.Errorf("presses = %d, want 3", presses)
	}
}

func TestButtonDefaultAnswersColdEnter(t *testing.T) {
	presses := 0
	b := NewButton("Ok", func() { presses++ })

	enter := terminal.KeyEvent(terminal.KeyEnter, 0, 0)
	if b.ProcessColdKey(&enter) {
		t.Error("non-default button answered cold enter")
	}
	b.SetDefault(true)
	if !b.ProcessColdKey(&enter) {
		t.Error("default button ignored cold enter")
	}
	if presses != 1 {
		t.Errorf("presses = %d, want 1", presses)
	}
}

func TestButtonClick(t *testing.T) {
	presses := 0
	b := NewButton("Ok", func() { presses++ })
	b.SetFrame(geom.NewRect(0, 0, 8, 1))

	press := view.MouseEvent{X: 2, Y: 0, Button: terminal.MouseBtnLeft, Action: terminal.MouseActionPress}
	release := view.MouseEvent{X: 2, Y: 0, Button: terminal.MouseBtnLeft, Action: terminal.MouseActionRelease}
	b.MouseEvent(&press)
	b.MouseEvent(&release)
	if presses != 1 {
		t.Errorf("presses after click = %d, want 1", presses)
	}

	// Press then release outside cancels
	outside := view.MouseEvent{X: 20, Y: 0, Button: terminal.MouseBtnLeft, Action: terminal.MouseActionRelease}
	b.MouseEvent(&press)
	b.MouseEvent(&outside)
	if presses != 1 {
		t.Errorf("presses after cancelled click = %d, want 1", presses)
	}
}

func TestCheckboxToggle(t *testing.T) {
	var last bool
	c := NewCheckbox("verbose")
	c.OnChange = func(checked bool) { last = checked }

	space := terminal.RuneEvent(' ')
	c.ProcessKey(&space)
	if !c.Checked() || !last {
		t.Error("space did not check")
	}

	click := view.MouseEvent{Button: terminal.MouseBtnLeft, Action: terminal.MouseActionPress}
	c.MouseEvent(&click)
	if c.Checked() || last {
		t.Error("click did not uncheck")
	}

	c.SetChecked(true)
	if !c.Checked() {
		t.Error("SetChecked ignored")
	}
	if last {
		t.Error("SetChecked must not invoke OnChange")
	}
}

func TestCheckboxRendering(t *testing.T) {
	c := NewCheckbox("opt")
	layer := renderWidget(t, c, 10, 1)
	if got := layerLine(layer, 0); got != "[ ] opt   " {
		t.Errorf("unchecked = %q", got)
	}
	c.SetChecked(true)
	layer = renderWidget(t, c, 10, 1)
	if got := layerLine(layer, 0); got != "[x] opt   " {
		t.Errorf("checked = %q", got)
	}
}

func TestButtonFocusStyle(t *testing.T) {
	b := NewButton("Ok", nil)
	sim := terminal.NewSim(10, 1)
	app := view.NewApp(sim)
	tl := view.NewToplevel()
	tl.AddSubview(b)
	b.SetFrame(geom.NewRect(0, 0, 10, 1))
	app.Push(tl)
	app.Refresh()

	cs := theme.Default
	x := 2 // Inside "[ Ok ]" centered in 10 cells
	if got := b.Layer().Cell(x, 0).Attr; got != cs.Focus {
		t.Errorf("focused button attr = %+v, want focus style", got)
	}
}
