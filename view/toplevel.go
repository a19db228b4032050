package view

import "github.com/lixenwraith/termview/terminal"

// Toplevel is a view that can root an independent modal tree. The
// application keeps a back-to-front stack of toplevels; only the top of
// the stack receives input.
type Toplevel struct {
	*View
	running bool
}

// NewToplevel creates an empty toplevel
func NewToplevel() *Toplevel {
	return &Toplevel{View: New()}
}

// Running reports whether the toplevel's dispatch loop should continue.
// It is checked between events, never mid-pass.
func (t *Toplevel) Running() bool {
	return t.running
}

// ProcessKey provides the default toplevel navigation: Tab and Shift-Tab
// cycle focus through the tree. It runs last in the responder chain, so a
// focused widget that wants Tab for itself keeps it.
func (t *Toplevel) ProcessKey(ev *terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyTab:
		if ev.Modifiers&terminal.ModShift != 0 {
			return t.FocusPrev()
		}
		return t.FocusNext()
	case terminal.KeyBacktab:
		return t.FocusPrev()
	}
	return false
}
