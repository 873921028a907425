// Package render is the escape-time raster kernel for Mandelbrot and Julia
// rasters.
package render

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/viewport"
)

const defaultTileSize = 64

// RendererImpl renders rasters on the calling goroutine, tile by tile,
// and gives up between tiles once ctx is done.
type RendererImpl struct {
	Palette      *Palette // DefaultPalette when nil
	TileSize     int      // 64 when zero
	OnTileRender func(tile image.Rectangle)
}

var (
	_ mandel.Renderer     = RendererImpl{}
	_ mandel.TileRenderer = RendererImpl{}
)

// Render computes the whole raster described by req.
func (imp RendererImpl) Render(ctx context.Context, req mandel.RasterRequest) (*image.RGBA, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	tileSize := imp.TileSize
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}

	img := image.NewRGBA(image.Rect(0, 0, req.Size, req.Size))
	for _, tile := range splitRectNoClip(img.Bounds(), tileSize, tileSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tileImg, err := imp.RenderTile(ctx, req, tile)
		if err != nil {
			return nil, fmt.Errorf("render tile %s: %w", tile, err)
		}
		draw.Draw(
			img,
			tileImg.Bounds(),     // destination rectangle (global coords)
			tileImg,              // source image
			tileImg.Bounds().Min, // source start
			draw.Src,
		)
	}
	return img, nil
}

// RenderTile computes the part of the raster covered by tile.
func (imp RendererImpl) RenderTile(ctx context.Context, req mandel.RasterRequest, tile image.Rectangle) (*image.RGBA, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if imp.OnTileRender != nil {
		imp.OnTileRender(tile)
	}
	pal := imp.Palette
	if pal == nil {
		pal = DefaultPalette()
	}
	m := viewport.Mapper{Size: req.Size, Center: req.Center, PPU: req.PixelsPerUnit}
	param := complex(req.JuliaParam.Re, req.JuliaParam.Im)

	// Image has global coordinates (tile.Min .. tile.Max)
	img := image.NewRGBA(tile)
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		for px := tile.Min.X; px < tile.Max.X; px++ {
			p := m.PixelToComplex(mandel.PixelPoint{X: float64(px), Y: float64(py)})
			z := complex(p.Re, p.Im)

			var mu float64
			var escaped bool
			if req.Mode == mandel.ModeJulia {
				mu, escaped = Escape(z, param, req.MaxIters)
			} else {
				mu, escaped = Escape(0, z, req.MaxIters)
			}
			img.SetRGBA(px, py, pal.Color(mu, escaped))
		}
	}
	return img, nil
}

func validate(req mandel.RasterRequest) error {
	m := viewport.Mapper{Size: req.Size, Center: req.Center, PPU: req.PixelsPerUnit}
	if !m.Valid() {
		return fmt.Errorf("%w: size %d, center %v, %g px/unit",
			mandel.ErrInvalidViewport, req.Size, req.Center, req.PixelsPerUnit)
	}
	if req.MaxIters < 1 {
		return fmt.Errorf("%w: iteration budget %d", mandel.ErrOutOfRange, req.MaxIters)
	}
	if req.Mode == mandel.ModeJulia && !req.JuliaParam.IsFinite() {
		return fmt.Errorf("%w: julia parameter %v", mandel.ErrOutOfRange, req.JuliaParam)
	}
	return nil
}
