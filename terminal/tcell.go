package terminal

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termview/geom"
)

// tcellTerminal implements Terminal on top of a tcell.Screen.
// tcell owns raw mode, escape encoding and color downsampling; this layer
// only translates between cell/event models.
type tcellTerminal struct {
	screen tcell.Screen

	events chan Event
	closed atomic.Bool

	mu          sync.Mutex
	initialized bool
	finalized   bool
	lastBtns    tcell.ButtonMask
}

// New creates a Terminal backed by the process's real terminal
func New() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "terminal: create screen")
	}
	return &tcellTerminal{
		screen: screen,
		events: make(chan Event, 64),
	}, nil
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "terminal: init screen")
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.initialized = true

	// Pump tcell events into the queue. PollEvent returns nil after Fini,
	// which shuts the pump down.
	go t.pump()
	return nil
}

func (t *tcellTerminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			t.events <- Event{Type: EventClosed}
			return
		}
		if e, ok := t.translate(ev); ok {
			t.events <- e
		}
	}
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerminal) Flush(cells []Cell, width, height int, region geom.Rect) {
	region = region.Intersection(geom.NewRect(0, 0, width, height))
	if region.IsEmpty() {
		return
	}
	for y := region.Y; y < region.MaxY(); y++ {
		for x := region.X; x < region.MaxX(); x++ {
			c := cells[y*width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, tcellStyle(c.Attr))
		}
	}
	t.screen.Show()
}

func (t *tcellTerminal) MoveCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *tcellTerminal) SetCursorVisible(visible bool) {
	if !visible {
		t.screen.HideCursor()
	}
}

func (t *tcellTerminal) Bell() {
	_ = t.screen.Beep()
}

func (t *tcellTerminal) Sync() {
	t.screen.Sync()
}

func (t *tcellTerminal) PollEvent() Event {
	if t.closed.Load() {
		return Event{Type: EventClosed}
	}
	ev := <-t.events
	if ev.Type == EventClosed {
		t.closed.Store(true)
	}
	return ev
}

func (t *tcellTerminal) PostEvent(ev Event) {
	if t.closed.Load() {
		return
	}
	t.events <- ev
}

func (t *tcellTerminal) SetMouseMode(mode MouseMode) error {
	if mode == MouseModeNone {
		t.screen.DisableMouse()
		return nil
	}
	var flags tcell.MouseFlags
	if mode&MouseModeClick != 0 {
		flags |= tcell.MouseButtonEvents
	}
	if mode&MouseModeDrag != 0 {
		flags |= tcell.MouseDragEvents
	}
	if mode&MouseModeMotion != 0 {
		flags |= tcell.MouseMotionEvents
	}
	t.screen.EnableMouse(flags)
	return nil
}

// tcellStyle converts an Attribute to a tcell style
func tcellStyle(a Attribute) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(a.Fg.R), int32(a.Fg.G), int32(a.Fg.B))).
		Background(tcell.NewRGBColor(int32(a.Bg.R), int32(a.Bg.G), int32(a.Bg.B)))
	if a.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if a.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if a.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if a.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if a.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if a.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// ctrlKeys maps control letters to Key constants. The toolkit's constant
// block skips H, I and M because those arrive as Backspace, Tab and Enter.
var ctrlKeys = func() map[rune]Key {
	m := make(map[rune]Key)
	letters := "ABCDEFGJKLNOPQRSTUVWXYZ"
	for i, r := range letters {
		m[r] = KeyCtrlA + Key(i)
	}
	return m
}()

func (t *tcellTerminal) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev), true
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent(w, h), true
	case *tcell.EventMouse:
		return t.translateMouse(ev), true
	}
	return Event{}, false
}

func translateKey(ev *tcell.EventKey) Event {
	mods := ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune(), Modifiers: mods}
	case tcell.KeyEscape:
		return KeyEvent(KeyEscape, 0, mods)
	case tcell.KeyEnter:
		return KeyEvent(KeyEnter, 0, mods)
	case tcell.KeyTab:
		return KeyEvent(KeyTab, 0, mods)
	case tcell.KeyBacktab:
		return KeyEvent(KeyBacktab, 0, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent(KeyBackspace, 0, mods)
	case tcell.KeyDelete:
		return KeyEvent(KeyDelete, 0, mods)
	case tcell.KeyUp:
		return KeyEvent(KeyUp, 0, mods)
	case tcell.KeyDown:
		return KeyEvent(KeyDown, 0, mods)
	case tcell.KeyLeft:
		return KeyEvent(KeyLeft, 0, mods)
	case tcell.KeyRight:
		return KeyEvent(KeyRight, 0, mods)
	case tcell.KeyHome:
		return KeyEvent(KeyHome, 0, mods)
	case tcell.KeyEnd:
		return KeyEvent(KeyEnd, 0, mods)
	case tcell.KeyPgUp:
		return KeyEvent(KeyPageUp, 0, mods)
	case tcell.KeyPgDn:
		return KeyEvent(KeyPageDown, 0, mods)
	case tcell.KeyInsert:
		return KeyEvent(KeyInsert, 0, mods)
	default:
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			return KeyEvent(KeyF1+Key(k-tcell.KeyF1), 0, mods)
		}
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			letter := rune('A' + int(k-tcell.KeyCtrlA))
			if key, ok := ctrlKeys[letter]; ok {
				return KeyEvent(key, 0, mods|ModCtrl)
			}
		}
		return KeyEvent(KeyNone, 0, mods)
	}
}

func (t *tcellTerminal) translateMouse(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	btns := ev.Buttons()

	if btns&tcell.WheelUp != 0 {
		return MouseEvent(x, y, MouseBtnWheelUp, MouseActionPress)
	}
	if btns&tcell.WheelDown != 0 {
		return MouseEvent(x, y, MouseBtnWheelDown, MouseActionPress)
	}

	pressed := btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	prev := t.lastBtns
	t.lastBtns = pressed

	button := func(m tcell.ButtonMask) MouseButton {
		switch {
		case m&tcell.Button1 != 0:
			return MouseBtnLeft
		case m&tcell.Button2 != 0:
			return MouseBtnMiddle
		case m&tcell.Button3 != 0:
			return MouseBtnRight
		}
		return MouseBtnNone
	}

	switch {
	case pressed != 0 && prev == 0:
		return MouseEvent(x, y, button(pressed), MouseActionPress)
	case pressed == 0 && prev != 0:
		return MouseEvent(x, y, button(prev), MouseActionRelease)
	case pressed != 0:
		return MouseEvent(x, y, button(pressed), MouseActionDrag)
	default:
		return MouseEvent(x, y, MouseBtnNone, MouseActionMove)
	}
}
