package viewport

import (
	"fmt"
	"math"

	mandel "github.com/marben/mandel_julia"
)

// Limits bounds the absolute scale. A zero bound is not enforced.
type Limits struct {
	MinPPU, MaxPPU float64
}

func (l Limits) clamp(ppu float64) float64 {
	if l.MinPPU > 0 && ppu < l.MinPPU {
		return l.MinPPU
	}
	if l.MaxPPU > 0 && ppu > l.MaxPPU {
		return l.MaxPPU
	}
	return ppu
}

// Viewport owns the committed center and scale of one view together with
// the state captured at construction, which Reset restores.
//
// Every mutation validates the resulting state and leaves the viewport
// untouched when it fails with ErrInvalidViewport.
type Viewport struct {
	m       Mapper
	initial Mapper
	limits  Limits
}

// New creates a viewport of size×size pixels showing diameter units of the
// plane around center.
func New(size int, center mandel.ComplexPoint, diameter float64, limits Limits) (*Viewport, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: raster size %d", mandel.ErrInvalidViewport, size)
	}
	if math.IsNaN(diameter) || math.IsInf(diameter, 0) || diameter <= 0 {
		return nil, fmt.Errorf("%w: diameter %g", mandel.ErrInvalidViewport, diameter)
	}
	m := Mapper{Size: size, Center: center, PPU: limits.clamp(float64(size) / diameter)}
	if !m.Valid() {
		return nil, fmt.Errorf("%w: center %v", mandel.ErrInvalidViewport, center)
	}
	return &Viewport{m: m, initial: m, limits: limits}, nil
}

// FromRegion creates a square viewport covering r.
func FromRegion(size int, r mandel.Region, limits Limits) (*Viewport, error) {
	return New(size, r.Center(), r.Diameter(), limits)
}

func (v *Viewport) Mapper() Mapper                       { return v.m }
func (v *Viewport) Size() int                            { return v.m.Size }
func (v *Viewport) Center() mandel.ComplexPoint          { return v.m.Center }
func (v *Viewport) PixelsPerUnit() float64               { return v.m.PPU }
func (v *Viewport) Initial() Mapper                      { return v.initial }
func (v *Viewport) Clamp(x, y float64) mandel.PixelPoint { return v.m.Clamp(x, y) }

func (v *Viewport) PixelToComplex(p mandel.PixelPoint) mandel.ComplexPoint {
	return v.m.PixelToComplex(p)
}

func (v *Viewport) ComplexToPixel(z mandel.ComplexPoint) mandel.PixelPoint {
	return v.m.ComplexToPixel(z)
}

// Panned returns the state Pan(delta) would commit.
func (v *Viewport) Panned(delta mandel.ComplexPoint) (Mapper, error) {
	return checked(v.m.Pan(delta))
}

// Zoomed returns the state ZoomAt(pivot, factor) would commit. When the
// absolute scale limits cut the factor short, the reduced factor is applied
// about the same pivot so the pivot still keeps its pixel.
func (v *Viewport) Zoomed(pivot mandel.ComplexPoint, factor float64) (Mapper, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return Mapper{}, fmt.Errorf("%w: zoom factor %g", mandel.ErrInvalidViewport, factor)
	}
	if !pivot.IsFinite() {
		return Mapper{}, fmt.Errorf("%w: zoom pivot %v", mandel.ErrInvalidViewport, pivot)
	}
	ppu := v.limits.clamp(v.m.PPU * factor)
	return checked(v.m.ZoomAt(pivot, ppu/v.m.PPU))
}

// Pan moves the center by delta.
func (v *Viewport) Pan(delta mandel.ComplexPoint) error {
	m, err := v.Panned(delta)
	if err != nil {
		return err
	}
	v.m = m
	return nil
}

// ZoomAt rescales by factor around pivot.
func (v *Viewport) ZoomAt(pivot mandel.ComplexPoint, factor float64) error {
	m, err := v.Zoomed(pivot, factor)
	if err != nil {
		return err
	}
	v.m = m
	return nil
}

// Recenter moves the center to z and multiplies the scale by factor.
func (v *Viewport) Recenter(z mandel.ComplexPoint, factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return fmt.Errorf("%w: zoom factor %g", mandel.ErrInvalidViewport, factor)
	}
	m, err := checked(Mapper{Size: v.m.Size, Center: z, PPU: v.limits.clamp(v.m.PPU * factor)})
	if err != nil {
		return err
	}
	v.m = m
	return nil
}

// Reset restores the construction-time center and scale.
func (v *Viewport) Reset() {
	v.m = v.initial
}

func checked(m Mapper) (Mapper, error) {
	if !m.Valid() {
		return Mapper{}, fmt.Errorf("%w: center %v, %g px/unit", mandel.ErrInvalidViewport, m.Center, m.PPU)
	}
	return m, nil
}
