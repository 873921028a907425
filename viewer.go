package mandel

import (
	"image"
)

//go:generate irpc viewer.go

// InputKind says what a browser input event is.
type InputKind uint8

const (
	InputDown InputKind = iota
	InputMove
	InputUp
	InputWheel
	InputEnter
	InputLeave
	InputKey
	InputMaxIters
	InputOrbitLength
)

func (k InputKind) String() string {
	switch k {
	case InputDown:
		return "down"
	case InputMove:
		return "move"
	case InputUp:
		return "up"
	case InputWheel:
		return "wheel"
	case InputEnter:
		return "enter"
	case InputLeave:
		return "leave"
	case InputKey:
		return "key"
	case InputMaxIters:
		return "iters"
	case InputOrbitLength:
		return "orbit"
	default:
		return "unknown"
	}
}

// View ids of the browser viewer.
const (
	ViewMandelbrot = 0
	ViewJulia      = 1
)

// Input is one browser input event. X and Y are canvas offsets; Button
// follows MouseEvent.button.
type Input struct {
	Kind   InputKind
	View   int
	X, Y   float64
	Button int
	DeltaY float64
	Key    string
	N      int
}

// ViewerViewStatus is the readout of one view.
type ViewerViewStatus struct {
	Center        ComplexPoint
	PixelsPerUnit float64
	Phase         string
	Hovered       bool
	Pointer       ComplexPoint
	HasPointer    bool
}

// ViewerStatus is the readout of a whole viewer.
type ViewerStatus struct {
	JuliaParam  ComplexPoint
	OrbitSeed   ComplexPoint
	OrbitLength int
	MaxIters    int
	Views       []ViewerViewStatus
}

// ViewerControl is served by the engine side of a viewer connection.
// The browser forwards its input through it.
type ViewerControl interface {
	Input(in Input) error
}

// ViewerDisplay is served by the browser side of a viewer connection.
// The engine pushes finished frames and status readouts through it.
type ViewerDisplay interface {
	ShowFrame(view int, img image.RGBA) error
	ShowStatus(st ViewerStatus) error
}
