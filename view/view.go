// Package view implements the toolkit core: the view tree, the constraint
// layout engine, the layer-backed composition pipeline and the focus and
// event dispatch chain.
//
// Views form a tree with owning references down and weak back-references up.
// Each view owns a render.Layer sized to its frame; a render pass draws dirty
// views into their own layers and a compose pass blits child layers into
// parents bottom-up, so a clean view never re-renders when an ancestor or
// sibling changes.
//
// All tree mutation, layout and rendering is single-threaded: one event is
// dispatched to completion before the next.
package view

import (
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/layout"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/terminal"
	"github.com/lixenwraith/termview/theme"
)

// Widget is the capability surface concrete widgets implement by embedding
// *View and overriding the methods they care about. The core only ever
// dispatches through this interface, never through concrete widget types.
type Widget interface {
	base() *View

	// Redraw draws the view's own content into its layer. The painter is
	// clipped to the invalidated region intersected with the view bounds
	// and its attribute starts at the view's normal scheme color.
	// Implementations must not draw subviews; composition layers them.
	Redraw(region geom.Rect, p *render.Painter)

	// ProcessHotKey is the tree-wide accelerator phase, offered pre-order
	// to every view before the focused view sees the event
	ProcessHotKey(ev *terminal.Event) bool

	// ProcessKey is the normal phase, delivered to the focused leaf and
	// bubbled through its ancestors
	ProcessKey(ev *terminal.Event) bool

	// ProcessColdKey is the tree-wide fallback phase after the normal
	// phase leaves the event unhandled
	ProcessColdKey(ev *terminal.Event) bool

	// MouseEvent receives a mouse event with coordinates local to the view
	MouseEvent(ev *MouseEvent) bool

	// PositionCursor reports where the hardware cursor belongs, in local
	// coordinates, while this view has focus
	PositionCursor() (geom.Point, bool)

	// FinalRenderPass runs after subviews are composed into this view's
	// layer, for overlays that sit above child content
	FinalRenderPass(p *render.Painter)
}

// LayoutMode selects how a view's frame is determined
type LayoutMode uint8

const (
	// LayoutFixed frames are set directly and never recomputed
	LayoutFixed LayoutMode = iota
	// LayoutComputed frames are derived from Pos/Dim expressions each pass
	LayoutComputed
)

// View is the tree node. It implements Widget with default behavior so
// concrete widgets embed *View and override selectively.
type View struct {
	self     Widget // Outermost widget, set when attached
	parent   *View
	subviews []Widget

	name string

	frame geom.Rect
	layer *render.Layer

	mode   LayoutMode
	x, y   layout.Pos
	width  layout.Dim
	height layout.Dim

	needsDisplay      geom.Rect
	childNeedsDisplay bool
	needsLayout       bool

	canFocus bool
	hasFocus bool
	focused  Widget // Focused child, one chain per tree

	scheme *theme.ColorScheme // nil inherits from the nearest ancestor
}

// New creates an empty fixed-layout view with a zero frame
func New() *View {
	return &View{layer: render.NewLayer(0, 0)}
}

func (v *View) base() *View {
	return v
}

// outer returns the widget v belongs to, or v itself when it was never
// attached as one (a bare root). Dispatch goes through this so overridden
// methods on the embedding widget are reached.
func (v *View) outer() Widget {
	if v.self != nil {
		return v.self
	}
	return v
}

// Name returns the debug name used in layout error reports
func (v *View) Name() string {
	return v.name
}

// SetName sets the debug name
func (v *View) SetName(name string) {
	v.name = name
}

// Frame returns the view's frame in parent coordinates.
// This satisfies layout.Anchor so sibling constraints can reference it.
func (v *View) Frame() geom.Rect {
	return v.frame
}

// Bounds returns the frame size at origin zero
func (v *View) Bounds() geom.Rect {
	return geom.Rect{Width: v.frame.Width, Height: v.frame.Height}
}

// Layer returns the view's backing layer
func (v *View) Layer() *render.Layer {
	return v.layer
}

// LayoutMode returns how this view's frame is determined
func (v *View) LayoutMode() LayoutMode {
	return v.mode
}

// SetFrame sets the frame directly and switches the view to fixed layout.
// The frame is then authoritative: layout passes never change it.
func (v *View) SetFrame(frame geom.Rect) {
	v.mode = LayoutFixed
	v.applyFrame(geom.NewRect(frame.X, frame.Y, frame.Width, frame.Height))
	v.setNeedsLayout()
}

// SetX sets the x constraint and switches the view to computed layout
func (v *View) SetX(p layout.Pos) {
	v.x = p
	v.mode = LayoutComputed
	v.setNeedsLayout()
}

// SetY sets the y constraint and switches the view to computed layout
func (v *View) SetY(p layout.Pos) {
	v.y = p
	v.mode = LayoutComputed
	v.setNeedsLayout()
}

// SetWidth sets the width constraint and switches the view to computed layout
func (v *View) SetWidth(d layout.Dim) {
	v.width = d
	v.mode = LayoutComputed
	v.setNeedsLayout()
}

// SetHeight sets the height constraint and switches the view to computed layout
func (v *View) SetHeight(d layout.Dim) {
	v.height = d
	v.mode = LayoutComputed
	v.setNeedsLayout()
}

// applyFrame moves/resizes the view, invalidating what the change exposes:
// the view's own content on resize, and both the old and new regions in the
// parent so stale pixels get erased
func (v *View) applyFrame(frame geom.Rect) {
	if frame == v.frame {
		return
	}
	old := v.frame
	v.frame = frame

	if frame.Width != old.Width || frame.Height != old.Height {
		v.layer.Resize(frame.Width, frame.Height)
		v.SetNeedsDisplayRect(v.Bounds())
		v.setNeedsLayout()
	}
	if v.parent != nil {
		v.parent.SetNeedsDisplayRect(old)
		v.parent.SetNeedsDisplayRect(frame)
	}
}

// Superview returns the parent widget, nil at the root
func (v *View) Superview() Widget {
	if v.parent == nil {
		return nil
	}
	return v.parent.outer()
}

// Subviews returns the children in z-order (back to front).
// Callers must treat the slice as read-only.
func (v *View) Subviews() []Widget {
	return v.subviews
}

// AddSubview appends w as the frontmost child and marks the subtree for
// layout. A widget already attached elsewhere is detached first.
func (v *View) AddSubview(w Widget) {
	wb := w.base()
	if wb == v {
		return
	}
	if wb.parent != nil {
		wb.parent.RemoveSubview(w)
	}
	v.subviews = append(v.subviews, w)
	wb.parent = v
	wb.self = w
	wb.SetNeedsDisplayRect(wb.Bounds())
	v.setNeedsLayout()
}

// RemoveSubview detaches w. If the focus chain ran through w it is cleared
// from this container down; the container keeps no focused child until the
// next EnsureFocus.
func (v *View) RemoveSubview(w Widget) {
	idx := -1
	for i, c := range v.subviews {
		if c == w {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	v.subviews = append(v.subviews[:idx:idx], v.subviews[idx+1:]...)

	wb := w.base()
	wb.parent = nil

	if v.focused == w {
		v.focused = nil
		if leaf := wb.FocusedLeaf(); leaf != nil {
			leaf.base().hasFocus = false
		}
		wb.hasFocus = false
		wb.clearFocusChain()
	}

	v.SetNeedsDisplayRect(wb.frame)
	v.setNeedsLayout()
}

// BringSubviewToFront moves w to the end of the z-order
func (v *View) BringSubviewToFront(w Widget) {
	for i, c := range v.subviews {
		if c == w {
			v.subviews = append(append(v.subviews[:i:i], v.subviews[i+1:]...), w)
			v.SetNeedsDisplayRect(w.base().frame)
			return
		}
	}
}

// SendSubviewToBack moves w to the start of the z-order
func (v *View) SendSubviewToBack(w Widget) {
	for i, c := range v.subviews {
		if c == w {
			rest := append(v.subviews[:i:i], v.subviews[i+1:]...)
			v.subviews = append([]Widget{w}, rest...)
			v.SetNeedsDisplayRect(w.base().frame)
			return
		}
	}
}

// SetNeedsDisplay invalidates the whole view
func (v *View) SetNeedsDisplay() {
	v.SetNeedsDisplayRect(v.Bounds())
}

// SetNeedsDisplayRect accumulates region into the dirty bounding rect and
// flags every ancestor so composition knows to descend here
func (v *View) SetNeedsDisplayRect(region geom.Rect) {
	if region.IsEmpty() {
		return
	}
	v.needsDisplay = v.needsDisplay.Union(region)
	for p := v.parent; p != nil && !p.childNeedsDisplay; p = p.parent {
		p.childNeedsDisplay = true
	}
}

// NeedsDisplay returns the accumulated dirty rect, empty when clean
func (v *View) NeedsDisplay() geom.Rect {
	return v.needsDisplay
}

// setNeedsLayout flags this view and every ancestor for re-layout
func (v *View) setNeedsLayout() {
	for p := v; p != nil; p = p.parent {
		if p.needsLayout {
			break
		}
		p.needsLayout = true
	}
}

// NeedsLayout returns true if a layout pass is pending for this subtree
func (v *View) NeedsLayout() bool {
	return v.needsLayout
}

// SetColorScheme sets an explicit scheme; subviews without their own
// inherit it
func (v *View) SetColorScheme(cs theme.ColorScheme) {
	v.scheme = &cs
	v.SetNeedsDisplay()
}

// ColorScheme resolves the effective scheme from the nearest ancestor that
// sets one, falling back to theme.Default
func (v *View) ColorScheme() theme.ColorScheme {
	for p := v; p != nil; p = p.parent {
		if p.scheme != nil {
			return *p.scheme
		}
	}
	return theme.Default
}

// SetCanFocus marks the view as a focus target
func (v *View) SetCanFocus(can bool) {
	v.canFocus = can
}

// CanFocus returns true if the view can receive focus
func (v *View) CanFocus() bool {
	return v.canFocus
}

// HasFocus returns true if this view is the focused leaf
func (v *View) HasFocus() bool {
	return v.hasFocus
}

// Default Widget behavior. Concrete widgets override what they need.

// Redraw fills the invalidated region with the scheme background
func (v *View) Redraw(region geom.Rect, p *render.Painter) {
	p.Clear()
}

// ProcessHotKey ignores the event
func (v *View) ProcessHotKey(ev *terminal.Event) bool {
	return false
}

// ProcessKey ignores the event
func (v *View) ProcessKey(ev *terminal.Event) bool {
	return false
}

// ProcessColdKey ignores the event
func (v *View) ProcessColdKey(ev *terminal.Event) bool {
	return false
}

// MouseEvent ignores the event
func (v *View) MouseEvent(ev *MouseEvent) bool {
	return false
}

// PositionCursor reports no cursor
func (v *View) PositionCursor() (geom.Point, bool) {
	return geom.Point{}, false
}

// FinalRenderPass draws nothing
func (v *View) FinalRenderPass(p *render.Painter) {}

// absOrigin returns the view's origin in screen coordinates
func (v *View) absOrigin() geom.Point {
	var pt geom.Point
	for p := v; p != nil; p = p.parent {
		pt.X += p.frame.X
		pt.Y += p.frame.Y
	}
	return pt
}

// anchorView maps a layout.Anchor back to the view it belongs to.
// Anchors are widgets from this package or types embedding *View, so the
// base accessor is always reachable through the interface.
func anchorView(a layout.Anchor) *View {
	if w, ok := a.(interface{ base() *View }); ok {
		return w.base()
	}
	return nil
}
