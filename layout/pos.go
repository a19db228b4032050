package layout

type posKind uint8

const (
	posAbsolute posKind = iota
	posPercent
	posCenter
	posAnchorEnd
	posEdge
	posCombine
)

type combineOp uint8

const (
	opAdd combineOp = iota
	opSub
)

// Pos describes one coordinate of a computed frame.
// The zero value is At(0).
type Pos struct {
	kind posKind
	n    int // absolute value, percent, or anchor-end margin
	ref  Anchor
	edge Edge
	op   combineOp
	lhs  *Pos
	rhs  *Pos
}

// At returns an absolute position
func At(n int) Pos {
	return Pos{kind: posAbsolute, n: n}
}

// PosPercent returns a position at p percent of the container extent.
// Values outside [0,100] resolve as zero.
func PosPercent(p int) Pos {
	return Pos{kind: posPercent, n: p}
}

// Center returns a position centering the view on its axis.
// The engine resolves the view's dimension first and centers using it.
func Center() Pos {
	return Pos{kind: posCenter}
}

// AnchorEnd returns a position of margin cells before the container's far edge
func AnchorEnd(margin int) Pos {
	return Pos{kind: posAnchorEnd, n: margin}
}

// Left returns the referenced view's left edge
func Left(of Anchor) Pos {
	return Pos{kind: posEdge, ref: of, edge: EdgeLeft}
}

// Top returns the referenced view's top edge
func Top(of Anchor) Pos {
	return Pos{kind: posEdge, ref: of, edge: EdgeTop}
}

// Right returns the referenced view's right edge (exclusive)
func Right(of Anchor) Pos {
	return Pos{kind: posEdge, ref: of, edge: EdgeRight}
}

// Bottom returns the referenced view's bottom edge (exclusive)
func Bottom(of Anchor) Pos {
	return Pos{kind: posEdge, ref: of, edge: EdgeBottom}
}

// Add returns the sum of two positions
func (p Pos) Add(q Pos) Pos {
	return Pos{kind: posCombine, op: opAdd, lhs: &p, rhs: &q}
}

// Sub returns the difference of two positions
func (p Pos) Sub(q Pos) Pos {
	return Pos{kind: posCombine, op: opSub, lhs: &p, rhs: &q}
}

// Anchor resolves the position against a container extent.
// size is the view's already-resolved dimension on the same axis; only the
// center variant reads it. Referenced frames must already be resolved.
func (p Pos) Anchor(extent, size int) int {
	switch p.kind {
	case posAbsolute:
		return p.n
	case posPercent:
		return clampPercent(p.n) * extent / 100
	case posCenter:
		return (extent - size) / 2
	case posAnchorEnd:
		return extent - p.n
	case posEdge:
		f := p.ref.Frame()
		switch p.edge {
		case EdgeLeft:
			return f.X
		case EdgeTop:
			return f.Y
		case EdgeRight:
			return f.MaxX()
		default:
			return f.MaxY()
		}
	case posCombine:
		l := p.lhs.Anchor(extent, size)
		r := p.rhs.Anchor(extent, size)
		if p.op == opSub {
			return l - r
		}
		return l + r
	}
	return 0
}

// NeedsSize reports whether resolving the position reads the view's own
// resolved size. Any center term does, so the engine must resolve the
// dimension on that axis first.
func (p Pos) NeedsSize() bool {
	switch p.kind {
	case posCenter:
		return true
	case posCombine:
		return p.lhs.NeedsSize() || p.rhs.NeedsSize()
	}
	return false
}

// Refs appends every view referenced by this expression to dst.
// The engine uses this to build the per-container dependency graph.
func (p Pos) Refs(dst []Anchor) []Anchor {
	switch p.kind {
	case posEdge:
		dst = append(dst, p.ref)
	case posCombine:
		dst = p.lhs.Refs(dst)
		dst = p.rhs.Refs(dst)
	}
	return dst
}
