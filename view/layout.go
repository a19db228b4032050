package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/layout"
)

// CycleError reports views whose constraints reference each other in a
// cycle. No frame in the affected container is changed.
type CycleError struct {
	Views []string
}

func (e *CycleError) Error() string {
	return "layout: cyclic dependency among views: " + strings.Join(e.Views, ", ")
}

// UnresolvedReferenceError reports a constraint referencing a view that is
// not a sibling in the container being laid out
type UnresolvedReferenceError struct {
	View string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("layout: view %s references a view outside its container", e.View)
}

// LayoutSubviews resolves the frame of every descendant from its
// constraints. A failed container keeps all of its children's frames
// unchanged; independent sibling containers still lay out, and every error
// is reported.
func (v *View) LayoutSubviews() error {
	var errs []error
	if err := v.layoutChildren(); err != nil {
		errs = append(errs, err)
	}
	for _, c := range v.subviews {
		if err := c.base().LayoutSubviews(); err != nil {
			errs = append(errs, err)
		}
	}
	v.needsLayout = false
	return errors.Join(errs...)
}

// layoutChildren resolves the direct children of v in dependency order.
// Cycles and unresolved references are detected before any frame is
// evaluated, so a failure applies nothing.
func (v *View) layoutChildren() error {
	children := v.subviews
	if len(children) == 0 {
		return nil
	}

	byView := make(map[*View]int, len(children))
	for i, c := range children {
		byView[c.base()] = i
	}

	// deps[i] lists the children i's expressions reference
	deps := make([][]int, len(children))
	rdeps := make([][]int, len(children))
	var refs []layout.Anchor
	for i, c := range children {
		cb := c.base()
		if cb.mode != LayoutComputed {
			continue
		}
		refs = refs[:0]
		refs = cb.x.Refs(refs)
		refs = cb.y.Refs(refs)
		refs = cb.width.Refs(refs)
		refs = cb.height.Refs(refs)
		for _, a := range refs {
			ab := anchorView(a)
			if ab == nil {
				return &UnresolvedReferenceError{View: v.childName(i)}
			}
			j, ok := byView[ab]
			if !ok {
				return &UnresolvedReferenceError{View: v.childName(i)}
			}
			deps[i] = append(deps[i], j)
			rdeps[j] = append(rdeps[j], i)
		}
	}

	order, unresolved := topoOrder(deps, rdeps)
	if len(unresolved) > 0 {
		names := make([]string, len(unresolved))
		for k, i := range unresolved {
			names[k] = v.childName(i)
		}
		return &CycleError{Views: names}
	}

	// All dependencies check out; apply in topological order so referenced
	// frames are final when an expression reads them
	bounds := v.Bounds()
	for _, i := range order {
		cb := children[i].base()
		if cb.mode != LayoutComputed {
			continue
		}
		x, w := resolveAxis(cb.x, cb.width, bounds.Width)
		y, h := resolveAxis(cb.y, cb.height, bounds.Height)
		cb.applyFrame(geom.Rect{X: x, Y: y, Width: w, Height: h})
	}
	return nil
}

// resolveAxis resolves one axis of a computed frame. The position comes
// first so a fill dimension stretches from there to the container's far
// edge; a centering position instead needs the size, which then anchors
// against the full extent because no position is known yet.
func resolveAxis(pos layout.Pos, dim layout.Dim, extent int) (p, d int) {
	if pos.NeedsSize() {
		d = dim.Anchor(extent)
		p = pos.Anchor(extent, d)
		return p, d
	}
	p = pos.Anchor(extent, 0)
	if dim.Fills() {
		remaining := extent - p
		if remaining < 0 {
			remaining = 0
		}
		d = dim.Anchor(remaining)
		return p, d
	}
	d = dim.Anchor(extent)
	return p, d
}

// topoOrder runs Kahn's algorithm. order holds every node whose
// dependencies resolved; unresolved holds the rest, the set participating
// in (or blocked behind) a cycle.
func topoOrder(deps, rdeps [][]int) (order, unresolved []int) {
	n := len(deps)
	indegree := make([]int, n)
	for i := range deps {
		indegree[i] = len(deps[i])
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order = make([]int, 0, n)
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		order = append(order, j)
		for _, i := range rdeps[j] {
			indegree[i]--
			if indegree[i] == 0 {
				queue = append(queue, i)
			}
		}
	}

	for i := 0; i < n; i++ {
		if indegree[i] > 0 {
			unresolved = append(unresolved, i)
		}
	}
	return order, unresolved
}

// childName names child i for error reports
func (v *View) childName(i int) string {
	if name := v.subviews[i].base().name; name != "" {
		return name
	}
	return fmt.Sprintf("#%d", i)
}
