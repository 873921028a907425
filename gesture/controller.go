package gesture

import (
	"math"
	"time"

	mandel "github.com/marben/mandel_julia"
)

// Phase is the state of a controller's gesture machine.
type Phase int

const (
	Idle Phase = iota
	Dragging
	WheelZooming
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case WheelZooming:
		return "wheel-zooming"
	default:
		return "unknown"
	}
}

// Button follows the browser MouseEvent.button numbering.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// Mapping is the read-only view of a viewport the controller needs.
// *viewport.Viewport satisfies it.
type Mapping interface {
	PixelToComplex(mandel.PixelPoint) mandel.ComplexPoint
	Clamp(x, y float64) mandel.PixelPoint
}

// Config tunes the controller. See config.Config for defaults.
type Config struct {
	Debounce         time.Duration // wheel pause before the zoom commits
	WheelSensitivity float64       // scale change per unit of wheel delta
	MinFactor        float64       // per-gesture zoom factor bounds
	MaxFactor        float64
}

func (c Config) clampFactor(f float64) float64 {
	return math.Min(math.Max(f, c.MinFactor), c.MaxFactor)
}

// Controller turns raw pointer and wheel input for one view into intents.
// It never mutates the viewport; its owner applies committed ops.
//
// Drags preview on every move and commit once on release. Wheel events
// preview immediately and commit once the wheel has been quiet for
// Config.Debounce; the owner calls Expire when the deadline passes.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	cfg Config
	m   Mapping

	phase Phase

	// Dragging
	startPixel   mandel.PixelPoint
	startComplex mandel.ComplexPoint
	moved        bool
	translation  mandel.ComplexPoint
	offset       mandel.PixelPoint

	// WheelZooming
	pivotPixel   mandel.PixelPoint
	pivotComplex mandel.ComplexPoint
	wheelScale   float64 // accumulated, clamped only when read
	deadline     time.Time

	// hover tracking, independent of the gesture
	hovered    bool
	pointer    mandel.PixelPoint
	hasPointer bool
}

func NewController(m Mapping, cfg Config) *Controller {
	return &Controller{cfg: cfg, m: m, wheelScale: 1}
}

func (c *Controller) Phase() Phase { return c.phase }

// PointerDown starts a drag on a primary press while idle.
func (c *Controller) PointerDown(x, y float64, b Button) Intent {
	p := c.track(x, y)
	if b != ButtonPrimary || c.phase != Idle {
		return Intent{}
	}
	c.phase = Dragging
	c.startPixel = p
	c.startComplex = c.m.PixelToComplex(p)
	c.moved = false
	c.translation = mandel.ComplexPoint{}
	c.offset = mandel.PixelPoint{}
	mandel.Logger().Debug("drag start", "pixel", p, "complex", c.startComplex)
	return Intent{}
}

// PointerMove previews the drag translation, if dragging.
func (c *Controller) PointerMove(x, y float64) Intent {
	p := c.track(x, y)
	if c.phase != Dragging {
		return Intent{}
	}
	c.moved = true
	c.translation = c.startComplex.Sub(c.m.PixelToComplex(p))
	c.offset = p.Sub(c.startPixel)
	return c.dragIntent(false)
}

// PointerUp ends a drag. It commits the pan only if the pointer moved since
// the press; the release position itself is not used because releases may
// arrive from outside the view.
func (c *Controller) PointerUp(b Button) Intent {
	if b != ButtonPrimary || c.phase != Dragging {
		return Intent{}
	}
	c.phase = Idle
	if !c.moved {
		return Intent{}
	}
	in := c.dragIntent(true)
	mandel.Logger().Debug("drag commit", "delta", c.translation)
	c.moved = false
	return in
}

func (c *Controller) dragIntent(commit bool) Intent {
	return Intent{
		Op:     Op{Kind: OpPan, Delta: c.translation},
		Commit: commit,
		Offset: c.offset,
		Scale:  1,
	}
}

// Wheel accumulates a wheel step and previews the zoom. The pivot is fixed
// by the first event of the gesture; each event pushes the deadline back.
func (c *Controller) Wheel(x, y, deltaY float64, now time.Time) Intent {
	p := c.track(x, y)
	if c.phase == Dragging {
		return Intent{}
	}
	if c.phase == Idle {
		c.phase = WheelZooming
		c.pivotPixel = p
		c.pivotComplex = c.m.PixelToComplex(p)
		c.wheelScale = 1
		mandel.Logger().Debug("wheel zoom start", "pixel", p, "complex", c.pivotComplex)
	}
	if !math.IsNaN(deltaY) && !math.IsInf(deltaY, 0) {
		c.wheelScale -= deltaY * c.cfg.WheelSensitivity
	}
	c.deadline = now.Add(c.cfg.Debounce)
	return c.zoomIntent(false)
}

// Deadline returns when the pending wheel zoom becomes due.
func (c *Controller) Deadline() (time.Time, bool) {
	return c.deadline, c.phase == WheelZooming
}

// Expire commits the pending wheel zoom if its deadline has passed.
// Early or duplicate calls are no-ops.
func (c *Controller) Expire(now time.Time) Intent {
	if c.phase != WheelZooming || now.Before(c.deadline) {
		return Intent{}
	}
	in := c.zoomIntent(true)
	c.phase = Idle
	c.wheelScale = 1
	mandel.Logger().Debug("wheel zoom commit", "pivot", in.Op.Pivot, "factor", in.Op.Factor)
	return in
}

func (c *Controller) zoomIntent(commit bool) Intent {
	f := c.TransientScale()
	return Intent{
		Op:         Op{Kind: OpZoom, Pivot: c.pivotComplex, Factor: f},
		Commit:     commit,
		Scale:      f,
		PixelPivot: c.pivotPixel,
	}
}

// TransientScale is the clamped scale of the pending wheel zoom, 1 otherwise.
func (c *Controller) TransientScale() float64 {
	if c.phase != WheelZooming {
		return 1
	}
	return c.cfg.clampFactor(c.wheelScale)
}

// Cancel drops any gesture in progress without committing it.
func (c *Controller) Cancel() {
	c.phase = Idle
	c.moved = false
	c.wheelScale = 1
}

// Enter and Leave track whether the pointer is over the view. Leaving does
// not end a gesture.
func (c *Controller) Enter() { c.hovered = true }
func (c *Controller) Leave() { c.hovered = false }

func (c *Controller) Hovered() bool { return c.hovered }

// Pointer returns the last known pointer position in raster space.
func (c *Controller) Pointer() (mandel.PixelPoint, bool) {
	return c.pointer, c.hasPointer
}

// PointerComplex maps the last known pointer position through the viewport.
func (c *Controller) PointerComplex() (mandel.ComplexPoint, bool) {
	if !c.hasPointer {
		return mandel.ComplexPoint{}, false
	}
	return c.m.PixelToComplex(c.pointer), true
}

func (c *Controller) track(x, y float64) mandel.PixelPoint {
	c.pointer = c.m.Clamp(x, y)
	c.hasPointer = true
	return c.pointer
}
