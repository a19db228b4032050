package view

import (
	"errors"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/terminal"
	"github.com/lixenwraith/termview/theme"
)

// App is the explicit application context: it owns the toplevel stack, the
// screen composition layer, the mouse grab and the root mouse observers.
// Nothing here is process-global, so independent instances can coexist
// (the tests rely on that).
type App struct {
	term   terminal.Terminal
	screen *render.Layer

	toplevels []*Toplevel
	scheme    theme.ColorScheme

	grab      Widget
	observers []func(MouseEvent)

	screenDirty geom.Rect // Screen regions invalidated outside any toplevel pass
	errs        []error
}

// NewApp creates an application context over a terminal driver
func NewApp(term terminal.Terminal) *App {
	w, h := term.Size()
	return &App{
		term:   term,
		screen: render.NewLayer(w, h),
		scheme: theme.Default,
	}
}

// SetDefaultScheme sets the scheme toplevels inherit when they have none
func (a *App) SetDefaultScheme(cs theme.ColorScheme) {
	a.scheme = cs
}

// Top returns the current (input-receiving) toplevel, nil when the stack
// is empty
func (a *App) Top() *Toplevel {
	if len(a.toplevels) == 0 {
		return nil
	}
	return a.toplevels[len(a.toplevels)-1]
}

// Push places t on top of the stack, sizes it to the screen and gives it
// initial focus
func (a *App) Push(t *Toplevel) {
	tb := t.base()
	tb.self = t
	if tb.scheme == nil {
		cs := a.scheme
		tb.scheme = &cs
	}
	w, h := a.term.Size()
	a.placeToplevel(t, w, h)
	a.toplevels = append(a.toplevels, t)
	t.EnsureFocus()
	t.SetNeedsDisplay()
}

// Pop removes the top of the stack, exposing what it covered
func (a *App) Pop() *Toplevel {
	if len(a.toplevels) == 0 {
		return nil
	}
	t := a.toplevels[len(a.toplevels)-1]
	a.toplevels = a.toplevels[:len(a.toplevels)-1]
	a.screenDirty = a.screenDirty.Union(t.base().frame)
	return t
}

// placeToplevel sizes a toplevel against the screen. A computed toplevel
// resolves its own constraints against the screen extent (dialogs center
// themselves this way); a fixed one spans the whole screen.
func (a *App) placeToplevel(t *Toplevel, sw, sh int) {
	tb := t.base()
	if tb.mode == LayoutComputed {
		x, w := resolveAxis(tb.x, tb.width, sw)
		y, h := resolveAxis(tb.y, tb.height, sh)
		tb.applyFrame(geom.Rect{X: x, Y: y, Width: w, Height: h})
		tb.setNeedsLayout()
		return
	}
	tb.applyFrame(geom.NewRect(0, 0, sw, sh))
	tb.setNeedsLayout()
}

// Run drives t's modal loop: layout and render, wait for one event,
// dispatch it to completion, repeat until the toplevel stops. Nested calls
// implement nested modals. It returns any layout or render errors
// accumulated while the loop ran.
func (a *App) Run(t *Toplevel) error {
	a.Push(t)
	t.running = true
	for t.running {
		a.Refresh()
		ev := a.term.PollEvent()
		if ev.Type == terminal.EventClosed {
			t.running = false
			break
		}
		a.HandleEvent(ev)
	}
	a.Pop()
	a.Refresh()
	return a.Err()
}

// RequestStop stops the current toplevel's loop after the in-flight event
// completes
func (a *App) RequestStop() {
	if top := a.Top(); top != nil {
		top.running = false
	}
}

// Err returns layout/render errors accumulated since the last call
func (a *App) Err() error {
	err := errors.Join(a.errs...)
	a.errs = nil
	return err
}

// HandleEvent dispatches one input event to completion. With an empty
// toplevel stack this is a no-op.
func (a *App) HandleEvent(ev terminal.Event) {
	if len(a.toplevels) == 0 {
		return
	}
	switch ev.Type {
	case terminal.EventKey:
		a.processKey(&ev)
	case terminal.EventMouse:
		a.processMouse(&ev)
	case terminal.EventResize:
		a.resize(ev.Width, ev.Height)
	}
}

func (a *App) processKey(ev *terminal.Event) bool {
	return dispatchKey(a.Top(), ev)
}

func (a *App) processMouse(ev *terminal.Event) {
	me := MouseEvent{
		AbsX:   ev.MouseX,
		AbsY:   ev.MouseY,
		Button: ev.MouseBtn,
		Action: ev.MouseAction,
	}

	// Root observers see every event first and cannot consume it
	for _, ob := range a.observers {
		ob(me)
	}

	if a.grab != nil {
		o := a.grab.base().absOrigin()
		m := me
		m.X = me.AbsX - o.X
		m.Y = me.AbsY - o.Y
		a.grab.MouseEvent(&m)
		return
	}

	top := a.Top()
	tb := top.base()
	target, lx, ly := hitTest(top, me.AbsX-tb.frame.X, me.AbsY-tb.frame.Y)
	m := me
	m.X = lx
	m.Y = ly
	target.MouseEvent(&m)
}

// GrabMouse redirects all mouse events to w until UngrabMouse
func (a *App) GrabMouse(w Widget) {
	a.grab = w
}

// UngrabMouse restores normal hit-testing
func (a *App) UngrabMouse() {
	a.grab = nil
}

// AddMouseObserver registers a root-level observer invoked for every mouse
// event before tree dispatch
func (a *App) AddMouseObserver(fn func(MouseEvent)) {
	a.observers = append(a.observers, fn)
}

// resize is the forced full refresh: every toplevel is re-placed against
// the new extent, marked entirely dirty, and both passes re-run
func (a *App) resize(w, h int) {
	a.screen.Resize(w, h)
	a.term.Sync()
	for _, t := range a.toplevels {
		a.placeToplevel(t, w, h)
		t.SetNeedsDisplay()
	}
	a.screenDirty = a.screen.Bounds()
}

// Refresh runs pending layout, the render and compose passes, flushes the
// changed screen region to the driver and positions the hardware cursor
func (a *App) Refresh() {
	for _, t := range a.toplevels {
		if t.base().needsLayout {
			if err := t.LayoutSubviews(); err != nil {
				a.errs = append(a.errs, err)
			}
		}
	}

	dirty := a.screenDirty
	a.screenDirty = geom.Rect{}
	if !dirty.IsEmpty() {
		// Background for screen cells no toplevel covers
		a.screen.Fill(dirty, ' ', a.scheme.Normal)
	}

	// Compose toplevels back-to-front, same accumulation as child layers:
	// a later toplevel re-blits over anything recomposed beneath it
	for _, t := range a.toplevels {
		tb := t.base()
		var td geom.Rect
		if !tb.needsDisplay.IsEmpty() || tb.childNeedsDisplay {
			td = redrawTree(t, &a.errs)
		}
		need := td.Offset(tb.frame.X, tb.frame.Y).Union(dirty.Intersection(tb.frame))
		need = need.Intersection(tb.frame).Intersection(a.screen.Bounds())
		if need.IsEmpty() {
			continue
		}
		a.screen.Blit(tb.layer, need.Offset(-tb.frame.X, -tb.frame.Y), need.X, need.Y)
		dirty = dirty.Union(need)
	}

	if !dirty.IsEmpty() {
		a.term.Flush(a.screen.Cells(), a.screen.Width(), a.screen.Height(), dirty)
	}
	a.updateCursor()
}

// updateCursor parks the hardware cursor at the focused view's reported
// position, or hides it
func (a *App) updateCursor() {
	top := a.Top()
	if top != nil {
		if leaf := top.base().FocusedLeaf(); leaf != nil {
			if pt, ok := leaf.PositionCursor(); ok {
				o := leaf.base().absOrigin()
				a.term.MoveCursor(o.X+pt.X, o.Y+pt.Y)
				return
			}
		}
	}
	a.term.SetCursorVisible(false)
}
