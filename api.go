package mandel

import (
	"context"
	"image"
)

// Mode selects which set the raster kernel iterates.
type Mode int

const (
	ModeMandelbrot Mode = iota
	ModeJulia
)

func (m Mode) String() string {
	switch m {
	case ModeMandelbrot:
		return "mandelbrot"
	case ModeJulia:
		return "julia"
	default:
		return "unknown"
	}
}

// RasterRequest carries everything the raster kernel needs for one square raster.
type RasterRequest struct {
	Size          int // width and height in pixels
	Center        ComplexPoint
	PixelsPerUnit float64
	MaxIters      int
	Mode          Mode
	JuliaParam    ComplexPoint // only read in ModeJulia
}

// Renderer computes a whole raster. Output is row-major, top-to-bottom.
type Renderer interface {
	Render(ctx context.Context, req RasterRequest) (*image.RGBA, error)
}

// TileRenderer computes the part of the raster covered by tile.
// The returned image carries global coordinates (tile.Min .. tile.Max).
type TileRenderer interface {
	RenderTile(ctx context.Context, req RasterRequest, tile image.Rectangle) (*image.RGBA, error)
}
