package main

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/marben/mandel_julia/session"
)

// layout places the two views side by side. A cell is one pixel wide and
// two pixels tall (upper and lower half block), so a view of side pixels
// takes side columns and side/2 rows. The last row holds the status line.
type layout struct {
	side   int // view size in pixels
	gap    int // columns between the views
	raster int // session raster size
}

func newLayout(width, height, raster int) layout {
	const gap = 1
	side := min((width-gap)/2, (height-1)*2)
	side -= side % 2
	return layout{side: max(side, 0), gap: gap, raster: raster}
}

func (l layout) origin(id session.ViewID) int {
	if id == session.Julia {
		return l.side + l.gap
	}
	return 0
}

func (l layout) statusRow() int {
	return l.side / 2
}

// viewAt maps a cell to the view under it and the raster position of the
// cell's center.
func (l layout) viewAt(col, row int) (id session.ViewID, x, y float64, ok bool) {
	if l.side == 0 || row < 0 || row >= l.side/2 {
		return 0, 0, 0, false
	}
	switch {
	case col >= 0 && col < l.side:
		id = session.Mandelbrot
	case col >= l.side+l.gap && col < 2*l.side+l.gap:
		id = session.Julia
	default:
		return 0, 0, 0, false
	}
	scale := float64(l.raster) / float64(l.side)
	x = (float64(col-l.origin(id)) + 0.5) * scale
	y = (float64(2*row) + 1) * scale
	return id, x, y, true
}

// fit scales a frame down (or up) to the view's pixel grid.
func (l layout) fit(frame image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, l.side, l.side))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), frame, frame.Bounds(), draw.Src, nil)
	return dst
}
