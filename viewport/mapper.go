package viewport

import (
	"math"

	mandel "github.com/marben/mandel_julia"
)

// Mapper converts between raster pixels and the complex plane for one
// viewport state. It is a plain value: copying it takes a snapshot.
//
// The raster center (Size/2, Size/2) maps to Center. Raster Y grows downward
// while the imaginary axis grows upward, hence the sign flip on Im.
type Mapper struct {
	Size   int
	Center mandel.ComplexPoint
	PPU    float64 // pixels per unit of complex distance
}

func (m Mapper) half() float64 {
	return float64(m.Size) / 2
}

// PixelToComplex maps a raster position to the complex plane.
func (m Mapper) PixelToComplex(p mandel.PixelPoint) mandel.ComplexPoint {
	h := m.half()
	return mandel.ComplexPoint{
		Re: m.Center.Re + (p.X-h)/m.PPU,
		Im: m.Center.Im - (p.Y-h)/m.PPU,
	}
}

// ComplexToPixel is the inverse of PixelToComplex.
func (m Mapper) ComplexToPixel(z mandel.ComplexPoint) mandel.PixelPoint {
	h := m.half()
	return mandel.PixelPoint{
		X: h + m.PPU*(z.Re-m.Center.Re),
		Y: h - m.PPU*(z.Im-m.Center.Im),
	}
}

// Clamp turns device coordinates into a raster position.
func (m Mapper) Clamp(x, y float64) mandel.PixelPoint {
	return mandel.ClampPixel(x, y, m.Size)
}

// Pan moves the center by delta.
func (m Mapper) Pan(delta mandel.ComplexPoint) Mapper {
	m.Center = m.Center.Add(delta)
	return m
}

// ZoomAt multiplies the scale by factor keeping pivot on the same pixel.
func (m Mapper) ZoomAt(pivot mandel.ComplexPoint, factor float64) Mapper {
	m.Center = m.Center.Mul(1 / factor).Add(pivot.Mul(1 - 1/factor))
	m.PPU *= factor
	return m
}

// Region returns the part of the plane covered by the raster.
func (m Mapper) Region() mandel.Region {
	r := m.half() / m.PPU
	return mandel.Region{
		Xmin: m.Center.Re - r,
		Xmax: m.Center.Re + r,
		Ymin: m.Center.Im - r,
		Ymax: m.Center.Im + r,
	}
}

// Valid reports whether the mapper satisfies the viewport invariants.
func (m Mapper) Valid() bool {
	return m.Size > 0 && m.Center.IsFinite() &&
		!math.IsNaN(m.PPU) && !math.IsInf(m.PPU, 0) && m.PPU > 0
}

// Request builds the raster kernel input for this mapper.
func (m Mapper) Request(maxIters int, mode mandel.Mode, juliaParam mandel.ComplexPoint) mandel.RasterRequest {
	return mandel.RasterRequest{
		Size:          m.Size,
		Center:        m.Center,
		PixelsPerUnit: m.PPU,
		MaxIters:      maxIters,
		Mode:          mode,
		JuliaParam:    juliaParam,
	}
}

// Transform returns the affine map taking pixels of a raster computed for
// from onto pixels of to: dst = Scale·src + Offset (same scale on both axes).
func Transform(from, to Mapper) (scale float64, offset mandel.PixelPoint) {
	scale = to.PPU / from.PPU
	offset = to.ComplexToPixel(from.PixelToComplex(mandel.PixelPoint{}))
	return scale, offset
}
