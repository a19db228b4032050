package view

import (
	"fmt"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/render"
)

// redrawTree is the per-subtree render+compose pass. It re-renders views
// with a pending dirty region into their own layers, blits changed child
// layers into v's layer in z-order, runs the final render pass over the
// changed region and clears all dirty state. It returns the region of v's
// layer that changed, in v's coordinates.
//
// Layers persist between passes, so a clean child is composed with a plain
// blit and never re-renders.
func redrawTree(w Widget, errs *[]error) geom.Rect {
	v := w.base()

	region := v.needsDisplay.Intersection(v.Bounds())
	// Dirty state is cleared before drawing so a panicking Redraw cannot
	// re-trigger itself forever
	v.needsDisplay = geom.Rect{}
	v.childNeedsDisplay = false

	var dirty geom.Rect
	if !region.IsEmpty() {
		p := render.NewPainter(v.layer)
		p.SetClip(region)
		p.SetAttribute(v.ColorScheme().Normal)
		if err := safeRedraw(w, region, p); err != nil {
			*errs = append(*errs, err)
		}
		dirty = region
	}

	// Snapshot the children against structural mutation from callbacks
	subviews := v.subviews
	for _, c := range subviews {
		cb := c.base()
		var childDirty geom.Rect
		if !cb.needsDisplay.IsEmpty() || cb.childNeedsDisplay {
			childDirty = redrawTree(c, errs)
		}

		// Recompose where the child changed or the parent drew under it.
		// dirty grows as children are processed in z-order, so a later
		// child re-blits over an earlier child's recomposed overlap.
		need := childDirty.Offset(cb.frame.X, cb.frame.Y).Union(dirty.Intersection(cb.frame))
		need = need.Intersection(cb.frame).Intersection(v.Bounds())
		if need.IsEmpty() {
			continue
		}
		v.layer.Blit(cb.layer, need.Offset(-cb.frame.X, -cb.frame.Y), need.X, need.Y)
		dirty = dirty.Union(need)
	}

	if !dirty.IsEmpty() {
		p := render.NewPainter(v.layer)
		p.SetClip(dirty)
		p.SetAttribute(v.ColorScheme().Normal)
		w.FinalRenderPass(p)
	}
	return dirty
}

// safeRedraw isolates a failing widget draw. The painter is per-call, so
// no clip or attribute state can leak into sibling draws either way.
func safeRedraw(w Widget, region geom.Rect, p *render.Painter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			name := w.base().name
			if name == "" {
				name = "view"
			}
			err = fmt.Errorf("view: redraw of %s panicked: %v", name, r)
		}
	}()
	w.Redraw(region, p)
	return nil
}
