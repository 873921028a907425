// Package present composites a view for display: the last raster, moved to
// where the shown viewport state puts it, plus the overlay marks.
package present

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/viewport"
)

var (
	Background = gg.Hex("#3a3a6e")
	MarkColor  = gg.RGB(1, 0, 0)
)

const (
	paramRadius = 4
	orbitRadius = 5
)

// Overlay holds the vector marks drawn on top of a raster, in plane
// coordinates.
type Overlay struct {
	JuliaParam *mandel.ComplexPoint // dot on the Mandelbrot view
	Orbit      []mandel.ComplexPoint
}

// Frame is one composited image request.
//
// Raster was computed for RasterMap; Display is the state to show, either
// the committed viewport or a gesture preview. When they differ the raster
// is scaled and translated so every plane point lands where Display puts it,
// which gives drag and wheel feedback without recomputing.
type Frame struct {
	Raster    *image.RGBA
	RasterMap viewport.Mapper
	Display   viewport.Mapper
	Overlay   Overlay
}

// Compose renders f into a new Display.Size square image.
func Compose(f Frame) image.Image {
	n := f.Display.Size
	dc := gg.NewContext(n, n)
	defer dc.Close()

	dc.ClearWithColor(Background)
	if f.Raster != nil && f.RasterMap.Valid() && f.Display.Valid() {
		scale, off := viewport.Transform(f.RasterMap, f.Display)
		dc.Push()
		dc.Translate(off.X, off.Y)
		dc.Scale(scale, scale)
		dc.DrawImage(gg.ImageBufFromImage(f.Raster), 0, 0)
		dc.Pop()
	}

	drawOverlay(dc, f.Display, f.Overlay)
	return dc.Image()
}

func drawOverlay(dc *gg.Context, m viewport.Mapper, ov Overlay) {
	dc.SetColor(MarkColor.Color())
	dc.SetLineWidth(1)

	if ov.JuliaParam != nil {
		if p, ok := toPixel(m, *ov.JuliaParam); ok {
			dc.DrawCircle(p.X, p.Y, paramRadius)
			_ = dc.Fill()
		}
	}

	if len(ov.Orbit) == 0 {
		return
	}
	var pts []mandel.PixelPoint
	for _, z := range ov.Orbit {
		p, ok := toPixel(m, z)
		if !ok {
			// diverged to infinity; nothing further is drawable
			break
		}
		pts = append(pts, p)
	}
	if len(pts) > 1 {
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
		_ = dc.Stroke()
	}
	for _, p := range pts {
		dc.DrawCircle(p.X, p.Y, orbitRadius)
		_ = dc.Fill()
	}
}

// toPixel maps z and pulls far points into a guard band around the raster
// so the rasterizer never sees huge coordinates.
func toPixel(m viewport.Mapper, z mandel.ComplexPoint) (mandel.PixelPoint, bool) {
	if !z.IsFinite() {
		return mandel.PixelPoint{}, false
	}
	p := m.ComplexToPixel(z)
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return mandel.PixelPoint{}, false
	}
	band := 4 * float64(m.Size)
	p.X = math.Min(math.Max(p.X, -band), float64(m.Size)+band)
	p.Y = math.Min(math.Max(p.Y, -band), float64(m.Size)+band)
	return p, true
}
