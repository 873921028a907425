package session

import (
	"image"

	"github.com/marben/mandel_julia/gesture"
	"github.com/marben/mandel_julia/viewport"
)

// Event is an input delivered to a Session.
type Event interface {
	event()
}

// PointerDown is a button press over a view. X and Y are device
// coordinates, clamped into the raster by the session.
type PointerDown struct {
	View   ViewID
	X, Y   float64
	Button gesture.Button
}

// PointerMove is a pointer motion over a view.
type PointerMove struct {
	View ViewID
	X, Y float64
}

// PointerUp is a button release anywhere; it ends drags in every view.
type PointerUp struct {
	Button gesture.Button
}

// Wheel is a wheel step over a view. Positive DeltaY zooms out.
type Wheel struct {
	View   ViewID
	X, Y   float64
	DeltaY float64
}

// PointerEnter and PointerLeave track which view keyboard commands go to.
type PointerEnter struct{ View ViewID }
type PointerLeave struct{ View ViewID }

// Key is a key press, named like KeyboardEvent.key ("c", "r", "ArrowUp", ...).
type Key struct {
	Key string
}

// SetMaxIters sets the iteration budget, as typed into an input field.
type SetMaxIters struct{ N int }

// SetOrbitLength sets the number of orbit points drawn.
type SetOrbitLength struct{ N int }

type zoomDue struct{ view ViewID }

type itersDue struct{}

type rasterDone struct {
	view ViewID
	gen  uint64
	m    viewport.Mapper
	img  *image.RGBA
	err  error
}

func (PointerDown) event()    {}
func (PointerMove) event()    {}
func (PointerUp) event()      {}
func (Wheel) event()          {}
func (PointerEnter) event()   {}
func (PointerLeave) event()   {}
func (Key) event()            {}
func (SetMaxIters) event()    {}
func (SetOrbitLength) event() {}
func (zoomDue) event()        {}
func (itersDue) event()       {}
func (rasterDone) event()     {}
