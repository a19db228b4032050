package view

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/terminal"
)

func TestDispatchPhaseOrder(t *testing.T) {
	var order []string
	phase := func(name string, consume bool) func(*terminal.Event) bool {
		return func(*terminal.Event) bool {
			order = append(order, name)
			return consume
		}
	}

	top := newProbe("top", 0)
	top.self = top
	top.SetFrame(geom.NewRect(0, 0, 20, 5))
	leaf := newProbe("leaf", 0)
	leaf.SetCanFocus(true)
	top.AddSubview(leaf)
	top.SetFocus(leaf)

	top.hot = phase("hot:top", false)
	leaf.hot = phase("hot:leaf", false)
	leaf.key = phase("key:leaf", false)
	top.key = phase("key:top", false)
	top.cold = phase("cold:top", false)
	leaf.cold = phase("cold:leaf", false)

	ev := terminal.RuneEvent('x')
	if dispatchKey(top, &ev) {
		t.Error("unhandled event reported as consumed")
	}
	want := []string{"hot:top", "hot:leaf", "key:leaf", "key:top", "cold:top", "cold:leaf"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("phase order = %v, want %v", order, want)
	}
}

func TestDispatchHotKeyShortCircuits(t *testing.T) {
	top := newProbe("top", 0)
	top.SetFrame(geom.NewRect(0, 0, 20, 5))
	leaf := newProbe("leaf", 0)
	leaf.SetCanFocus(true)
	top.AddSubview(leaf)
	top.SetFocus(leaf)

	hotSeen, keySeen, coldSeen := 0, 0, 0
	top.hot = func(*terminal.Event) bool { hotSeen++; return true }
	leaf.key = func(*terminal.Event) bool { keySeen++; return true }
	top.cold = func(*terminal.Event) bool { coldSeen++; return true }

	ev := terminal.RuneEvent('x')
	if !dispatchKey(top, &ev) {
		t.Error("consumed event reported as unhandled")
	}
	if hotSeen != 1 || keySeen != 0 || coldSeen != 0 {
		t.Errorf("hot consume leaked: hot %d key %d cold %d", hotSeen, keySeen, coldSeen)
	}
}

func TestDispatchKeyBubbles(t *testing.T) {
	top := newProbe("top", 0)
	top.SetFrame(geom.NewRect(0, 0, 20, 5))
	mid := newProbe("mid", 0)
	leaf := newProbe("leaf", 0)
	top.AddSubview(mid)
	mid.AddSubview(leaf)
	leaf.SetCanFocus(true)
	top.SetFocus(leaf)

	var coldRan bool
	mid.key = func(*terminal.Event) bool { return true }
	top.key = func(*terminal.Event) bool { t.Error("event bubbled past its consumer"); return false }
	top.cold = func(*terminal.Event) bool { coldRan = true; return false }

	ev := terminal.RuneEvent('x')
	if !dispatchKey(top, &ev) {
		t.Error("bubbled consume reported as unhandled")
	}
	if coldRan {
		t.Error("cold phase ran after the normal phase consumed")
	}
}

func TestDispatchNoFocusTargetsToplevel(t *testing.T) {
	top := newProbe("top", 0)
	top.SetFrame(geom.NewRect(0, 0, 20, 5))
	child := newProbe("child", 0)
	top.AddSubview(child)

	topKeys, childKeys := 0, 0
	top.key = func(*terminal.Event) bool { topKeys++; return true }
	child.key = func(*terminal.Event) bool { childKeys++; return true }

	ev := terminal.RuneEvent('x')
	dispatchKey(top, &ev)
	if topKeys != 1 || childKeys != 0 {
		t.Errorf("unfocused tree: toplevel keys %d child keys %d, want 1 and 0", topKeys, childKeys)
	}
}

func TestHitTestTranslatesCoordinates(t *testing.T) {
	top := newProbe("top", 0)
	top.SetFrame(geom.NewRect(0, 0, 40, 10))
	panel := newProbe("panel", 0)
	top.AddSubview(panel)
	panel.SetFrame(geom.NewRect(10, 2, 20, 6))
	btn := newProbe("btn", 0)
	panel.AddSubview(btn)
	btn.SetFrame(geom.NewRect(4, 1, 8, 2))

	w, x, y := hitTest(top, 15, 4)
	if w != Widget(btn) {
		t.Fatalf("hit %v, want btn", w.base().Name())
	}
	if x != 1 || y != 1 {
		t.Errorf("local coords = (%d, %d), want (1, 1)", x, y)
	}

	w, x, y = hitTest(top, 5, 5)
	if w != Widget(top) {
		t.Errorf("miss should fall back to the container, got %v", w.base().Name())
	}
	if x != 5 || y != 5 {
		t.Errorf("fallback coords = (%d, %d), want untranslated (5, 5)", x, y)
	}
}

func TestHitTestPrefersFrontSibling(t *testing.T) {
	top := newProbe("top", 0)
	top.SetFrame(geom.NewRect(0, 0, 20, 5))
	back := newProbe("back", 0)
	front := newProbe("front", 0)
	top.AddSubview(back)
	top.AddSubview(front)
	back.SetFrame(geom.NewRect(0, 0, 10, 5))
	front.SetFrame(geom.NewRect(5, 0, 10, 5))

	if w, _, _ := hitTest(top, 7, 2); w != Widget(front) {
		t.Errorf("overlap hit %v, want the frontmost sibling", w.base().Name())
	}
}

func TestToplevelTabNavigation(t *testing.T) {
	tl := NewToplevel()
	tl.self = tl
	tl.SetFrame(geom.NewRect(0, 0, 20, 5))
	v1 := newProbe("v1", 0)
	v2 := newProbe("v2", 0)
	v1.SetCanFocus(true)
	v2.SetCanFocus(true)
	tl.AddSubview(v1)
	tl.AddSubview(v2)
	tl.EnsureFocus()

	tab := terminal.KeyEvent(terminal.KeyTab, 0, 0)
	if !dispatchKey(tl, &tab) {
		t.Fatal("tab not handled")
	}
	if !v2.HasFocus() {
		t.Error("tab did not advance focus")
	}

	backtab := terminal.KeyEvent(terminal.KeyBacktab, 0, 0)
	dispatchKey(tl, &backtab)
	if !v1.HasFocus() {
		t.Error("backtab did not move focus backward")
	}

	shiftTab := terminal.KeyEvent(terminal.KeyTab, 0, terminal.ModShift)
	dispatchKey(tl, &shiftTab)
	if !v2.HasFocus() {
		t.Error("shift-tab did not move focus backward")
	}
}

func TestToplevelTabYieldsToFocusedWidget(t *testing.T) {
	tl := NewToplevel()
	tl.self = tl
	tl.SetFrame(geom.NewRect(0, 0, 20, 5))
	editor := newProbe("editor", 0)
	other := newProbe("other", 0)
	editor.SetCanFocus(true)
	other.SetCanFocus(true)
	tl.AddSubview(editor)
	tl.AddSubview(other)
	tl.SetFocus(editor)

	editor.key = func(ev *terminal.Event) bool {
		return ev.Key == terminal.KeyTab // Editor inserts tabs itself
	}

	tab := terminal.KeyEvent(terminal.KeyTab, 0, 0)
	dispatchKey(tl, &tab)
	if !editor.HasFocus() {
		t.Error("toplevel stole tab from the focused widget")
	}
}
