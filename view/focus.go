package view

// Focus is a single chain of focused-child pointers from a root down to
// one leaf: at most one leaf in the tree has HasFocus true at a time.

// FocusedLeaf returns the focused leaf in v's subtree, nil if none.
// A chain that no longer ends at a view holding focus (the leaf was
// removed) reports nil rather than the dangling container.
func (v *View) FocusedLeaf() Widget {
	node := v
	for node.focused != nil {
		node = node.focused.base()
	}
	if node.hasFocus {
		return node.outer()
	}
	return nil
}

// FocusedChild returns v's focused direct child, nil if none
func (v *View) FocusedChild() Widget {
	return v.focused
}

// SetFocus moves focus to target, which must be a focusable view inside
// v's subtree; anything else is a no-op. The old chain is torn down, the
// new one is built from the leaf upward so every intermediate container's
// focused-child pointer agrees with the final leaf.
func (v *View) SetFocus(target Widget) bool {
	if target == nil {
		return false
	}
	t := target.base()
	if !t.canFocus || !t.isInSubtree(v) {
		return false
	}
	if cur := v.FocusedLeaf(); cur != nil {
		if cur.base() == t {
			return true
		}
		cur.base().SetNeedsDisplay()
	}
	v.clearFocusChain()

	t.self = target
	t.hasFocus = true
	t.SetNeedsDisplay()
	child := target
	for p := t.parent; p != nil; p = p.parent {
		p.focused = child
		if p == v {
			break
		}
		child = p.outer()
	}
	return true
}

// EnsureFocus focuses the first focusable descendant if nothing in v's
// subtree holds focus
func (v *View) EnsureFocus() {
	if v.FocusedLeaf() == nil {
		v.FocusFirst()
	}
}

// FocusFirst focuses the first focusable descendant in tree order
func (v *View) FocusFirst() bool {
	targets := collectFocusable(v, nil)
	if len(targets) == 0 {
		return false
	}
	return v.SetFocus(targets[0])
}

// FocusLast focuses the last focusable descendant in tree order
func (v *View) FocusLast() bool {
	targets := collectFocusable(v, nil)
	if len(targets) == 0 {
		return false
	}
	return v.SetFocus(targets[len(targets)-1])
}

// FocusNext advances focus through the subtree's focusable views in
// pre-order, wrapping at the end. Tab order is tree order; there is no
// separate tab index.
func (v *View) FocusNext() bool {
	return v.advanceFocus(1)
}

// FocusPrev moves focus backward through the subtree, wrapping at the start
func (v *View) FocusPrev() bool {
	return v.advanceFocus(-1)
}

func (v *View) advanceFocus(delta int) bool {
	targets := collectFocusable(v, nil)
	if len(targets) == 0 {
		return false
	}
	idx := -1
	if cur := v.FocusedLeaf(); cur != nil {
		curb := cur.base()
		for i, w := range targets {
			if w.base() == curb {
				idx = i
				break
			}
		}
	}
	var next Widget
	switch {
	case idx < 0 && delta > 0:
		next = targets[0]
	case idx < 0:
		next = targets[len(targets)-1]
	default:
		next = targets[(idx+delta+len(targets))%len(targets)]
	}
	return v.SetFocus(next)
}

// clearFocusChain removes the chain from v down, clearing the leaf's flag
func (v *View) clearFocusChain() {
	node := v
	node.hasFocus = false
	for node.focused != nil {
		next := node.focused.base()
		node.focused = nil
		next.hasFocus = false
		node = next
	}
}

// isInSubtree returns true if root is v or an ancestor of v
func (v *View) isInSubtree(root *View) bool {
	for p := v; p != nil; p = p.parent {
		if p == root {
			return true
		}
	}
	return false
}

// collectFocusable appends v's focusable descendants in pre-order
func collectFocusable(v *View, dst []Widget) []Widget {
	for _, c := range v.subviews {
		cb := c.base()
		if cb.canFocus {
			dst = append(dst, c)
		}
		dst = collectFocusable(cb, dst)
	}
	return dst
}
