package render

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"

	mandel "github.com/marben/mandel_julia"
)

func TestPoolMatchesSerialRender(t *testing.T) {
	req := request(mandel.ModeMandelbrot)
	req.Size = 150

	want, err := RendererImpl{}.Render(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{0, 1, 3, 16} {
		got, err := Pool{Workers: workers, TileSize: 32}.Render(context.Background(), req)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if got.Bounds() != want.Bounds() {
			t.Fatalf("workers=%d: bounds %v, want %v", workers, got.Bounds(), want.Bounds())
		}
		for i := range want.Pix {
			if got.Pix[i] != want.Pix[i] {
				t.Fatalf("workers=%d: raster differs at byte %d", workers, i)
			}
		}
	}
}

func TestPoolRendersEveryTile(t *testing.T) {
	var mu sync.Mutex
	seen := map[image.Rectangle]int{}
	r := RendererImpl{OnTileRender: func(tile image.Rectangle) {
		mu.Lock()
		seen[tile]++
		mu.Unlock()
	}}
	req := request(mandel.ModeJulia)
	req.Size = 100

	if _, err := (Pool{Workers: 4, Renderer: r, TileSize: 25}).Render(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 16 {
		t.Errorf("distinct tiles rendered = %d, want 16", len(seen))
	}
}

type failingRenderer struct{}

var errTile = errors.New("tile failed")

func (failingRenderer) RenderTile(context.Context, mandel.RasterRequest, image.Rectangle) (*image.RGBA, error) {
	return nil, errTile
}

func TestPoolPropagatesTileError(t *testing.T) {
	_, err := Pool{Workers: 2, Renderer: failingRenderer{}}.Render(context.Background(), request(mandel.ModeMandelbrot))
	if !errors.Is(err, errTile) {
		t.Errorf("Render error = %v, want %v", err, errTile)
	}
}

func TestPoolCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img, err := Pool{Workers: 2}.Render(ctx, request(mandel.ModeMandelbrot))
	if !errors.Is(err, context.Canceled) || img != nil {
		t.Errorf("Render = (%v, %v), want (nil, context.Canceled)", img, err)
	}
}

func TestPoolRejectsBadRequest(t *testing.T) {
	req := request(mandel.ModeMandelbrot)
	req.MaxIters = 0
	if _, err := (Pool{}).Render(context.Background(), req); !errors.Is(err, mandel.ErrOutOfRange) {
		t.Errorf("Render error = %v, want ErrOutOfRange", err)
	}
}
