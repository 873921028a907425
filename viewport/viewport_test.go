package viewport

import (
	"errors"
	"math"
	"testing"

	mandel "github.com/marben/mandel_julia"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func nearPixel(a, b mandel.PixelPoint, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}

var testMappers = []Mapper{
	{Size: 500, Center: mandel.ComplexPoint{Re: -0.5}, PPU: 125},
	{Size: 500, Center: mandel.ComplexPoint{Re: 0.25, Im: -0.75}, PPU: 3},
	{Size: 640, Center: mandel.ComplexPoint{Re: -0.743643887, Im: 0.131825904}, PPU: 1e9},
	{Size: 640, Center: mandel.ComplexPoint{Re: -0.743643887, Im: 0.131825904}, PPU: 1e14},
	{Size: 101, Center: mandel.ComplexPoint{Re: 1e3, Im: -1e3}, PPU: 0.5},
}

// roundTripTol is the pixel error a pixel -> plane -> pixel trip may pick
// up: a few ulps of the plane coordinate, magnified by the scale, plus a few
// ulps of the pixel coordinate itself.
func roundTripTol(m Mapper, z mandel.ComplexPoint) float64 {
	const eps = 0x1p-52
	mag := math.Max(1, math.Max(
		math.Max(math.Abs(m.Center.Re), math.Abs(m.Center.Im)),
		math.Max(math.Abs(z.Re), math.Abs(z.Im))))
	return 8 * eps * (m.PPU*mag + float64(m.Size))
}

func TestMapperInvertible(t *testing.T) {
	for _, m := range testMappers {
		n := float64(m.Size)
		for _, p := range []mandel.PixelPoint{
			{X: 0, Y: 0}, {X: n, Y: n}, {X: n / 2, Y: n / 2},
			{X: 1.25, Y: n - 3.5}, {X: n / 3, Y: 2 * n / 7},
		} {
			z := m.PixelToComplex(p)
			got := m.ComplexToPixel(z)
			tol := roundTripTol(m, z)
			if math.Abs(got.X-p.X) > tol || math.Abs(got.Y-p.Y) > tol {
				t.Errorf("mapper %+v: round trip of %v = %v, tolerance %g px", m, p, got, tol)
			}
		}
	}
}

func TestMapperOrientation(t *testing.T) {
	m := Mapper{Size: 500, Center: mandel.ComplexPoint{Re: -0.5}, PPU: 125}

	if got, want := m.PixelToComplex(mandel.PixelPoint{X: 250, Y: 250}), m.Center; got != want {
		t.Errorf("raster center maps to %v, want %v", got, want)
	}
	// top-left corner is the smallest real and the largest imaginary part
	if got, want := m.PixelToComplex(mandel.PixelPoint{}), (mandel.ComplexPoint{Re: -2.5, Im: 2}); got != want {
		t.Errorf("top-left maps to %v, want %v", got, want)
	}
	if got, want := m.ComplexToPixel(mandel.ComplexPoint{Re: -0.5, Im: 1}), (mandel.PixelPoint{X: 250, Y: 125}); got != want {
		t.Errorf("(-0.5, 1) maps to %v, want %v", got, want)
	}
}

func TestMapperRegion(t *testing.T) {
	m := Mapper{Size: 500, Center: mandel.ComplexPoint{Re: -0.5}, PPU: 125}
	want := mandel.Region{Xmin: -2.5, Xmax: 1.5, Ymin: -2, Ymax: 2}
	if got := m.Region(); got != want {
		t.Errorf("Region = %+v, want %+v", got, want)
	}
}

func TestTransform(t *testing.T) {
	from := Mapper{Size: 500, Center: mandel.ComplexPoint{Re: -0.5}, PPU: 125}
	to := from.ZoomAt(mandel.ComplexPoint{Re: 0.1, Im: 0.3}, 2.5).Pan(mandel.ComplexPoint{Re: 0.05})

	scale, off := Transform(from, to)
	for _, p := range []mandel.PixelPoint{{X: 0, Y: 0}, {X: 123, Y: 456}, {X: 500, Y: 17}} {
		want := to.ComplexToPixel(from.PixelToComplex(p))
		got := p.Mul(scale).Add(off)
		if !nearPixel(got, want, 1e-9) {
			t.Errorf("Transform maps %v to %v, want %v", p, got, want)
		}
	}
}

func newTestViewport(t *testing.T) *Viewport {
	t.Helper()
	v, err := New(500, mandel.ComplexPoint{Re: -0.5}, 4, Limits{MinPPU: 1, MaxPPU: 1e14})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v
}

func TestNew(t *testing.T) {
	v := newTestViewport(t)
	if got := v.PixelsPerUnit(); got != 125 {
		t.Errorf("PixelsPerUnit = %v, want 125", got)
	}

	bad := []struct {
		name     string
		size     int
		center   mandel.ComplexPoint
		diameter float64
	}{
		{"zero size", 0, mandel.ComplexPoint{}, 4},
		{"zero diameter", 500, mandel.ComplexPoint{}, 0},
		{"negative diameter", 500, mandel.ComplexPoint{}, -1},
		{"nan diameter", 500, mandel.ComplexPoint{}, math.NaN()},
		{"inf center", 500, mandel.ComplexPoint{Re: math.Inf(1)}, 4},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.size, tt.center, tt.diameter, Limits{}); !errors.Is(err, mandel.ErrInvalidViewport) {
				t.Errorf("New error = %v, want ErrInvalidViewport", err)
			}
		})
	}
}

func TestFromRegion(t *testing.T) {
	v, err := FromRegion(500, mandel.Region{Xmin: -2.5, Xmax: 1.5, Ymin: -1, Ymax: 1}, Limits{})
	if err != nil {
		t.Fatalf("FromRegion: %v", err)
	}
	if got, want := v.Center(), (mandel.ComplexPoint{Re: -0.5}); got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
	if got := v.PixelsPerUnit(); got != 125 {
		t.Errorf("PixelsPerUnit = %v, want 125", got)
	}
}

func TestPan(t *testing.T) {
	v := newTestViewport(t)
	if err := v.Pan(mandel.ComplexPoint{Re: -0.4, Im: 0.1}); err != nil {
		t.Fatalf("Pan: %v", err)
	}
	if got, want := v.Center(), (mandel.ComplexPoint{Re: -0.9, Im: 0.1}); !near(got.Re, want.Re, 1e-15) || !near(got.Im, want.Im, 1e-15) {
		t.Errorf("Center = %v, want %v", got, want)
	}
}

func TestZoomAtKeepsPivot(t *testing.T) {
	pivots := []mandel.ComplexPoint{
		{Re: -0.5}, {Re: 0.3, Im: 0.6}, {Re: -1.75, Im: -0.02}, {Re: 2, Im: -2},
	}
	factors := []float64{0.02, 0.5, 1, 1.01, 3, 50}
	for _, z := range pivots {
		for _, f := range factors {
			v := newTestViewport(t)
			before := v.ComplexToPixel(z)
			if err := v.ZoomAt(z, f); err != nil {
				t.Fatalf("ZoomAt(%v, %v): %v", z, f, err)
			}
			if after := v.ComplexToPixel(z); !nearPixel(before, after, 1e-9) {
				t.Errorf("ZoomAt(%v, %v): pivot moved from %v to %v", z, f, before, after)
			}
			if got, want := v.PixelsPerUnit(), 125*f; !near(got, want, 1e-12) {
				t.Errorf("ZoomAt(%v, %v): ppu = %v, want %v", z, f, got, want)
			}
		}
	}
}

func TestZoomAtScaleLimits(t *testing.T) {
	v, err := New(500, mandel.ComplexPoint{Re: -0.5}, 4, Limits{MinPPU: 100, MaxPPU: 1000})
	if err != nil {
		t.Fatal(err)
	}
	z := mandel.ComplexPoint{Re: 0.2, Im: -0.4}
	before := v.ComplexToPixel(z)

	if err := v.ZoomAt(z, 50); err != nil {
		t.Fatalf("ZoomAt: %v", err)
	}
	if got := v.PixelsPerUnit(); got != 1000 {
		t.Errorf("ppu = %v, want clamped 1000", got)
	}
	if after := v.ComplexToPixel(z); !nearPixel(before, after, 1e-9) {
		t.Errorf("clamped zoom moved pivot from %v to %v", before, after)
	}

	if err := v.ZoomAt(z, 1e-6); err != nil {
		t.Fatalf("ZoomAt: %v", err)
	}
	if got := v.PixelsPerUnit(); !near(got, 100, 1e-12) {
		t.Errorf("ppu = %v, want clamped 100", got)
	}
}

func TestInvalidMutationsKeepState(t *testing.T) {
	v := newTestViewport(t)
	want := v.Mapper()

	errs := []error{
		v.ZoomAt(mandel.ComplexPoint{}, 0),
		v.ZoomAt(mandel.ComplexPoint{}, -2),
		v.ZoomAt(mandel.ComplexPoint{}, math.NaN()),
		v.ZoomAt(mandel.ComplexPoint{}, math.Inf(1)),
		v.ZoomAt(mandel.ComplexPoint{Re: math.NaN()}, 2),
		v.Pan(mandel.ComplexPoint{Re: math.Inf(1)}),
		v.Pan(mandel.ComplexPoint{Im: math.NaN()}),
		v.Recenter(mandel.ComplexPoint{Re: math.NaN()}, 2),
		v.Recenter(mandel.ComplexPoint{}, 0),
	}
	for i, err := range errs {
		if !errors.Is(err, mandel.ErrInvalidViewport) {
			t.Errorf("mutation %d: error = %v, want ErrInvalidViewport", i, err)
		}
	}
	if got := v.Mapper(); got != want {
		t.Errorf("state after rejected mutations = %+v, want %+v", got, want)
	}
}

func TestRecenter(t *testing.T) {
	v := newTestViewport(t)
	z := mandel.ComplexPoint{Re: 0.25, Im: 0.5}
	if err := v.Recenter(z, 2); err != nil {
		t.Fatalf("Recenter: %v", err)
	}
	if v.Center() != z || v.PixelsPerUnit() != 250 {
		t.Errorf("after Recenter: center %v ppu %v, want %v 250", v.Center(), v.PixelsPerUnit(), z)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	v := newTestViewport(t)
	initial := v.Mapper()

	_ = v.Pan(mandel.ComplexPoint{Re: 0.123, Im: -0.456})
	_ = v.ZoomAt(mandel.ComplexPoint{Re: -1.2, Im: 0.3}, 37)
	_ = v.ZoomAt(mandel.ComplexPoint{Re: 0.7}, 0.03)
	_ = v.Recenter(mandel.ComplexPoint{Re: 1}, 0.5)

	v.Reset()
	if got := v.Mapper(); got != initial {
		t.Errorf("after Reset = %+v, want %+v", got, initial)
	}
	v.Reset()
	if got := v.Mapper(); got != initial {
		t.Errorf("after second Reset = %+v, want %+v", got, initial)
	}
}

func TestPreviewsDoNotMutate(t *testing.T) {
	v := newTestViewport(t)
	want := v.Mapper()

	panned, err := v.Panned(mandel.ComplexPoint{Re: 1})
	if err != nil {
		t.Fatal(err)
	}
	zoomed, err := v.Zoomed(mandel.ComplexPoint{Re: 1}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v.Mapper() != want {
		t.Fatalf("Panned/Zoomed changed the viewport")
	}
	if panned.Center.Re != 0.5 {
		t.Errorf("Panned center = %v, want 0.5", panned.Center)
	}
	if zoomed.PPU != 250 {
		t.Errorf("Zoomed ppu = %v, want 250", zoomed.PPU)
	}
}
