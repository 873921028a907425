package render

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"runtime"
	"sync"

	mandel "github.com/marben/mandel_julia"
)

// Pool renders one raster with several workers in parallel. Each worker
// pulls tiles until none is left; once every tile has been handed out, idle
// workers pick tiles still in flight, so a slow worker does not hold up the
// raster.
type Pool struct {
	Workers  int                 // runtime.NumCPU when zero
	Renderer mandel.TileRenderer // RendererImpl when nil
	TileSize int                 // 64 when zero
}

var _ mandel.Renderer = Pool{}

// Render implements mandel.Renderer.
func (p Pool) Render(ctx context.Context, req mandel.RasterRequest) (*image.RGBA, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	renderer := p.Renderer
	if renderer == nil {
		renderer = RendererImpl{}
	}
	tileSize := p.TileSize
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	job := newTileJob(req, tileSize)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := job.render(ctx, renderer); err != nil {
				errs <- err
				cancel()
			}
		}()
	}
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}
	if !job.complete() {
		return nil, ctx.Err()
	}
	return job.img, nil
}

type tileJob struct {
	req mandel.RasterRequest
	img *image.RGBA

	totalPixels    int
	finishedPixels int

	unstarted map[image.Rectangle]struct{}
	inProcess map[image.Rectangle]struct{}
	m         sync.Mutex
}

func newTileJob(req mandel.RasterRequest, tileSize int) *tileJob {
	img := image.NewRGBA(image.Rect(0, 0, req.Size, req.Size))
	allTilesSlice := splitRectNoClip(img.Bounds(), tileSize, tileSize)
	allTiles := make(map[image.Rectangle]struct{}, len(allTilesSlice))
	for _, t := range allTilesSlice {
		allTiles[t] = struct{}{}
	}
	return &tileJob{
		req:         req,
		img:         img,
		unstarted:   allTiles,
		inProcess:   make(map[image.Rectangle]struct{}),
		totalPixels: req.Size * req.Size,
	}
}

func (j *tileJob) popTile() (tile image.Rectangle, found bool) {
	j.m.Lock()
	defer j.m.Unlock()

	// Get unstarted tile
	if len(j.unstarted) > 0 {
		for tile = range j.unstarted {
			break
		}
		delete(j.unstarted, tile)

		// Move popped tile to currently processed tiles
		j.inProcess[tile] = struct{}{}
		return tile, true
	}

	// If there is no unstarted tile, we work again on a started one
	if len(j.inProcess) > 0 {
		for tile = range j.inProcess {
			break
		}
		return tile, true
	}

	return image.Rectangle{}, false
}

func (j *tileJob) finished() float64 {
	j.m.Lock()
	defer j.m.Unlock()
	return float64(j.finishedPixels) / float64(j.totalPixels)
}

func (j *tileJob) complete() bool {
	j.m.Lock()
	defer j.m.Unlock()
	return len(j.unstarted) == 0 && len(j.inProcess) == 0
}

func (j *tileJob) tileFinished(tileImg *image.RGBA) {
	rect := tileImg.Bounds()
	j.m.Lock()
	defer j.m.Unlock()

	_, found := j.inProcess[rect]
	if !found {
		// a faster worker already delivered it
		return
	}
	draw.Draw(
		j.img,
		rect,     // destination rectangle (global coords)
		tileImg,  // source image
		rect.Min, // source start
		draw.Src,
	)
	j.finishedPixels += rect.Dx() * rect.Dy()
	delete(j.inProcess, rect)
}

// render renders unfinished tiles on r until none is left.
// Called from multiple goroutines in parallel.
func (j *tileJob) render(ctx context.Context, r mandel.TileRenderer) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		tile, found := j.popTile()
		if !found {
			return nil
		}
		tileImg, err := r.RenderTile(ctx, j.req, tile)
		if err != nil {
			return fmt.Errorf("render tile %s: %w", tile, err)
		}
		j.tileFinished(tileImg)
		mandel.Logger().Debug("tile finished", "tile", tile, "progress", j.finished())
	}
}
