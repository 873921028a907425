package gesture

import (
	"math"
	"testing"
	"time"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/viewport"
)

var testConfig = Config{
	Debounce:         100 * time.Millisecond,
	WheelSensitivity: 0.01,
	MinFactor:        0.02,
	MaxFactor:        50,
}

func newTestController(t *testing.T) (*Controller, *viewport.Viewport) {
	t.Helper()
	v, err := viewport.New(500, mandel.ComplexPoint{Re: -0.5}, 4, viewport.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	return NewController(v, testConfig), v
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

func TestDragCommitsPan(t *testing.T) {
	c, v := newTestController(t)

	if in := c.PointerDown(250, 250, ButtonPrimary); !in.None() {
		t.Errorf("PointerDown intent = %+v, want none", in)
	}
	if c.Phase() != Dragging {
		t.Fatalf("phase = %v, want dragging", c.Phase())
	}

	in := c.PointerMove(300, 250)
	if in.Commit || in.Op.Kind != OpPan {
		t.Fatalf("PointerMove intent = %+v, want pan preview", in)
	}
	if in.Offset != (mandel.PixelPoint{X: 50}) {
		t.Errorf("preview offset = %v, want (50, 0)", in.Offset)
	}

	in = c.PointerUp(ButtonPrimary)
	if !in.Commit || in.Op.Kind != OpPan {
		t.Fatalf("PointerUp intent = %+v, want committed pan", in)
	}
	if d := in.Op.Delta; !near(d.Re, -0.4) || d.Im != 0 {
		t.Errorf("pan delta = %v, want (-0.4, 0)", d)
	}
	if c.Phase() != Idle {
		t.Errorf("phase after release = %v, want idle", c.Phase())
	}

	if err := v.Pan(in.Op.Delta); err != nil {
		t.Fatal(err)
	}
	if got := v.Center(); !near(got.Re, -0.9) || got.Im != 0 {
		t.Errorf("center after drag = %v, want (-0.9, 0)", got)
	}
}

func TestDragUsesLastMoveNotRelease(t *testing.T) {
	c, _ := newTestController(t)
	c.PointerDown(100, 100, ButtonPrimary)
	c.PointerMove(100, 225)
	// the release carries no position; the last move decides
	in := c.PointerUp(ButtonPrimary)
	if d := in.Op.Delta; d.Re != 0 || !near(d.Im, 1) {
		t.Errorf("pan delta = %v, want (0, 1)", d)
	}
}

func TestClickWithoutMoveIsNoop(t *testing.T) {
	c, _ := newTestController(t)
	c.PointerDown(10, 20, ButtonPrimary)
	if in := c.PointerUp(ButtonPrimary); !in.None() {
		t.Errorf("click intent = %+v, want none", in)
	}
	if c.Phase() != Idle {
		t.Errorf("phase = %v, want idle", c.Phase())
	}
}

func TestNonPrimaryButtonsIgnored(t *testing.T) {
	c, _ := newTestController(t)
	for _, b := range []Button{ButtonMiddle, ButtonSecondary} {
		c.PointerDown(10, 10, b)
		if c.Phase() != Idle {
			t.Errorf("button %d started a drag", b)
		}
	}

	c.PointerDown(10, 10, ButtonPrimary)
	c.PointerMove(20, 10)
	if in := c.PointerUp(ButtonSecondary); !in.None() || c.Phase() != Dragging {
		t.Errorf("secondary release ended the drag: %+v, phase %v", in, c.Phase())
	}
}

func TestMoveWithoutDragOnlyTracks(t *testing.T) {
	c, _ := newTestController(t)
	if in := c.PointerMove(600, -3); !in.None() {
		t.Errorf("idle move intent = %+v, want none", in)
	}
	p, ok := c.Pointer()
	if !ok || p != (mandel.PixelPoint{X: 500, Y: 0}) {
		t.Errorf("pointer = %v %v, want clamped (500, 0)", p, ok)
	}
	z, ok := c.PointerComplex()
	if !ok || !near(z.Re, 1.5) || !near(z.Im, 2) {
		t.Errorf("pointer complex = %v, want (1.5, 2)", z)
	}
}

func TestWheelCommitsOnceAfterQuiet(t *testing.T) {
	c, v := newTestController(t)
	t0 := time.Unix(1000, 0)

	in := c.Wheel(250, 250, -6000, t0)
	if in.Commit || in.Op.Kind != OpZoom {
		t.Fatalf("first wheel intent = %+v, want zoom preview", in)
	}
	if in.Scale != 50 {
		t.Errorf("preview scale = %v, want clamped 50", in.Scale)
	}
	if c.Phase() != WheelZooming {
		t.Fatalf("phase = %v, want wheel-zooming", c.Phase())
	}

	in = c.Wheel(400, 400, 2000, t0.Add(50*time.Millisecond))
	if !near(in.Scale, 41) {
		t.Errorf("accumulated scale = %v, want 41", in.Scale)
	}
	// pivot belongs to the first event
	if in.PixelPivot != (mandel.PixelPoint{X: 250, Y: 250}) {
		t.Errorf("pivot = %v, want (250, 250)", in.PixelPivot)
	}

	deadline, ok := c.Deadline()
	if want := t0.Add(150 * time.Millisecond); !ok || !deadline.Equal(want) {
		t.Errorf("deadline = %v %v, want %v", deadline, ok, want)
	}

	if in := c.Expire(t0.Add(100 * time.Millisecond)); !in.None() {
		t.Errorf("early Expire = %+v, want none", in)
	}

	in = c.Expire(t0.Add(150 * time.Millisecond))
	if !in.Commit || in.Op.Kind != OpZoom {
		t.Fatalf("Expire intent = %+v, want committed zoom", in)
	}
	if !near(in.Op.Factor, 41) {
		t.Errorf("committed factor = %v, want 41", in.Op.Factor)
	}
	if in.Op.Pivot != (mandel.ComplexPoint{Re: -0.5}) {
		t.Errorf("committed pivot = %v, want (-0.5, 0)", in.Op.Pivot)
	}

	if in := c.Expire(t0.Add(time.Second)); !in.None() {
		t.Errorf("second Expire = %+v, want none", in)
	}
	if c.TransientScale() != 1 {
		t.Errorf("transient scale after commit = %v, want 1", c.TransientScale())
	}

	if err := v.ZoomAt(in.Op.Pivot, in.Op.Factor); err != nil {
		t.Fatal(err)
	}
}

func TestWheelFactorClampedLow(t *testing.T) {
	c, _ := newTestController(t)
	t0 := time.Unix(0, 0)
	c.Wheel(0, 0, 1000, t0)
	in := c.Expire(t0.Add(time.Hour))
	if in.Op.Factor != 0.02 {
		t.Errorf("factor = %v, want 0.02", in.Op.Factor)
	}
}

func TestWheelIgnoredWhileDragging(t *testing.T) {
	c, _ := newTestController(t)
	c.PointerDown(0, 0, ButtonPrimary)
	if in := c.Wheel(0, 0, -100, time.Now()); !in.None() {
		t.Errorf("wheel during drag = %+v, want none", in)
	}
	if c.Phase() != Dragging {
		t.Errorf("phase = %v, want dragging", c.Phase())
	}
}

func TestPressDuringWheelIgnored(t *testing.T) {
	c, _ := newTestController(t)
	c.Wheel(0, 0, -100, time.Now())
	c.PointerDown(0, 0, ButtonPrimary)
	if c.Phase() != WheelZooming {
		t.Errorf("phase = %v, want wheel-zooming", c.Phase())
	}
}

func TestCancel(t *testing.T) {
	c, _ := newTestController(t)
	t0 := time.Unix(0, 0)
	c.Wheel(0, 0, -100, t0)
	c.Cancel()
	if c.Phase() != Idle || c.TransientScale() != 1 {
		t.Errorf("after Cancel: phase %v scale %v", c.Phase(), c.TransientScale())
	}
	if in := c.Expire(t0.Add(time.Hour)); !in.None() {
		t.Errorf("Expire after Cancel = %+v, want none", in)
	}
}

func TestHover(t *testing.T) {
	c, _ := newTestController(t)
	if c.Hovered() {
		t.Fatal("new controller is hovered")
	}
	c.Enter()
	if !c.Hovered() {
		t.Error("Enter did not hover")
	}
	c.PointerDown(5, 5, ButtonPrimary)
	c.Leave()
	if c.Hovered() || c.Phase() != Dragging {
		t.Errorf("Leave: hovered %v phase %v, want false dragging", c.Hovered(), c.Phase())
	}
}
