package mandel

import "math"

// ComplexPoint is a point of the complex plane. Values are immutable;
// every operation returns a new point.
type ComplexPoint struct {
	Re, Im float64
}

// Add returns p + q.
func (p ComplexPoint) Add(q ComplexPoint) ComplexPoint {
	return ComplexPoint{Re: p.Re + q.Re, Im: p.Im + q.Im}
}

// Sub returns p - q.
func (p ComplexPoint) Sub(q ComplexPoint) ComplexPoint {
	return ComplexPoint{Re: p.Re - q.Re, Im: p.Im - q.Im}
}

// Mul scales p by s.
func (p ComplexPoint) Mul(s float64) ComplexPoint {
	return ComplexPoint{Re: s * p.Re, Im: s * p.Im}
}

// Distance returns the euclidean distance between p and q.
func (p ComplexPoint) Distance(q ComplexPoint) float64 {
	return math.Hypot(p.Re-q.Re, p.Im-q.Im)
}

// IsFinite reports whether both components are finite.
func (p ComplexPoint) IsFinite() bool {
	return isFinite(p.Re) && isFinite(p.Im)
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q ComplexPoint) ComplexPoint {
	return p.Add(q).Mul(0.5)
}

// PixelPoint is a position in raster space. Y grows downward.
type PixelPoint struct {
	X, Y float64
}

// Add returns p + q.
func (p PixelPoint) Add(q PixelPoint) PixelPoint {
	return PixelPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p PixelPoint) Sub(q PixelPoint) PixelPoint {
	return PixelPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales p by s.
func (p PixelPoint) Mul(s float64) PixelPoint {
	return PixelPoint{X: s * p.X, Y: s * p.Y}
}

// Distance returns the euclidean distance between p and q.
func (p PixelPoint) Distance(q PixelPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ClampPixel turns raw device coordinates into a PixelPoint inside [0, size]².
// NaN coordinates clamp to 0.
func ClampPixel(x, y float64, size int) PixelPoint {
	return PixelPoint{X: clampAxis(x, size), Y: clampAxis(y, size)}
}

func clampAxis(v float64, size int) float64 {
	dim := float64(size)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > dim:
		return dim
	default:
		return v
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
