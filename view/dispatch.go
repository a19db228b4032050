package view

import (
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/terminal"
)

// MouseEvent is a mouse event translated into a view's local coordinates
type MouseEvent struct {
	X, Y       int // Local to the receiving view
	AbsX, AbsY int // Screen coordinates
	Button     terminal.MouseButton
	Action     terminal.MouseAction
}

// dispatchKey runs the three key phases against a toplevel: hot keys
// tree-wide, then the focused leaf bubbling up the responder chain, then
// cold keys tree-wide. The first phase that handles the event wins and
// later phases never run.
func dispatchKey(top Widget, ev *terminal.Event) bool {
	if walkHotKey(top, ev) {
		return true
	}

	tb := top.base()
	if leaf := tb.FocusedLeaf(); leaf != nil {
		for w := leaf; ; {
			if w.ProcessKey(ev) {
				return true
			}
			wb := w.base()
			if wb == tb || wb.parent == nil {
				break
			}
			w = wb.parent.outer()
		}
	} else if top.ProcessKey(ev) {
		return true
	}

	return walkColdKey(top, ev)
}

func walkHotKey(w Widget, ev *terminal.Event) bool {
	if w.ProcessHotKey(ev) {
		return true
	}
	subviews := w.base().subviews
	for _, c := range subviews {
		if walkHotKey(c, ev) {
			return true
		}
	}
	return false
}

func walkColdKey(w Widget, ev *terminal.Event) bool {
	if w.ProcessColdKey(ev) {
		return true
	}
	subviews := w.base().subviews
	for _, c := range subviews {
		if walkColdKey(c, ev) {
			return true
		}
	}
	return false
}

// hitTest descends from w testing children front-to-back (reverse z-order,
// since later children paint on top), translating x, y into each matched
// child's local space. The deepest match receives the event; with no child
// match the container itself is the target.
func hitTest(w Widget, x, y int) (Widget, int, int) {
	subviews := w.base().subviews
	for i := len(subviews) - 1; i >= 0; i-- {
		cf := subviews[i].base().frame
		if cf.Contains(geom.Point{X: x, Y: y}) {
			return hitTest(subviews[i], x-cf.X, y-cf.Y)
		}
	}
	return w, x, y
}
