package gesture

import mandel "github.com/marben/mandel_julia"

// OpKind names a viewport mutation.
type OpKind int

const (
	OpNone OpKind = iota
	OpPan
	OpZoom
)

func (k OpKind) String() string {
	switch k {
	case OpPan:
		return "pan"
	case OpZoom:
		return "zoom"
	default:
		return "none"
	}
}

// Op is a viewport mutation: Pan(Delta) or ZoomAt(Pivot, Factor).
type Op struct {
	Kind   OpKind
	Delta  mandel.ComplexPoint
	Pivot  mandel.ComplexPoint
	Factor float64
}

// Intent is what the controller asks of its owner after an input event.
//
// With Commit unset the op is visual only: the owner previews the raster as
// if Op had been applied, without touching the viewport or recomputing.
// With Commit set the owner applies Op and requests a new raster.
// Offset and Scale/PixelPivot describe the same preview in pixel space.
type Intent struct {
	Op     Op
	Commit bool

	Offset     mandel.PixelPoint // drag translation on screen
	Scale      float64           // wheel scale about PixelPivot
	PixelPivot mandel.PixelPoint
}

// None reports whether the intent asks for nothing.
func (in Intent) None() bool {
	return in.Op.Kind == OpNone
}
