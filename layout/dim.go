package layout

type dimKind uint8

// dimFill is the zero kind so an unset Dim fills its container
const (
	dimFill dimKind = iota
	dimAbsolute
	dimPercent
	dimAxis
	dimCombine
)

// Dim describes one dimension of a computed frame.
// The zero value is Fill(0).
type Dim struct {
	kind dimKind
	n    int // absolute value, percent, or fill margin
	ref  Anchor
	axis Axis
	op   combineOp
	lhs  *Dim
	rhs  *Dim
}

// Abs returns a fixed dimension
func Abs(n int) Dim {
	return Dim{kind: dimAbsolute, n: n}
}

// DimPercent returns a dimension of p percent of the container extent.
// Values outside [0,100] resolve as zero.
func DimPercent(p int) Dim {
	return Dim{kind: dimPercent, n: p}
}

// Fill returns a dimension stretching to the container extent minus margin,
// never negative
func Fill(margin int) Dim {
	return Dim{kind: dimFill, n: margin}
}

// WidthOf returns the referenced view's resolved width
func WidthOf(of Anchor) Dim {
	return Dim{kind: dimAxis, ref: of, axis: AxisWidth}
}

// HeightOf returns the referenced view's resolved height
func HeightOf(of Anchor) Dim {
	return Dim{kind: dimAxis, ref: of, axis: AxisHeight}
}

// Add returns the sum of two dimensions
func (d Dim) Add(e Dim) Dim {
	return Dim{kind: dimCombine, op: opAdd, lhs: &d, rhs: &e}
}

// Sub returns the difference of two dimensions
func (d Dim) Sub(e Dim) Dim {
	return Dim{kind: dimCombine, op: opSub, lhs: &d, rhs: &e}
}

// Anchor resolves the dimension against a container extent.
// The result is clamped to zero; lengths are never negative.
func (d Dim) Anchor(extent int) int {
	n := d.eval(extent)
	if n < 0 {
		return 0
	}
	return n
}

func (d Dim) eval(extent int) int {
	switch d.kind {
	case dimFill:
		return extent - d.n
	case dimAbsolute:
		return d.n
	case dimPercent:
		return clampPercent(d.n) * extent / 100
	case dimAxis:
		f := d.ref.Frame()
		if d.axis == AxisWidth {
			return f.Width
		}
		return f.Height
	case dimCombine:
		l := d.lhs.eval(extent)
		r := d.rhs.eval(extent)
		if d.op == opSub {
			return l - r
		}
		return l + r
	}
	return 0
}

// Fills reports whether the dimension contains a fill term. The engine
// anchors a filling dimension against the extent remaining after the
// view's resolved position, so fill stretches to the container's far edge
// rather than to the container's full width.
func (d Dim) Fills() bool {
	switch d.kind {
	case dimFill:
		return true
	case dimCombine:
		return d.lhs.Fills() || d.rhs.Fills()
	}
	return false
}

// Refs appends every view referenced by this expression to dst
func (d Dim) Refs(dst []Anchor) []Anchor {
	switch d.kind {
	case dimAxis:
		dst = append(dst, d.ref)
	case dimCombine:
		dst = d.lhs.Refs(dst)
		dst = d.rhs.Refs(dst)
	}
	return dst
}
