// cliclient.go is a CLI client for the Mandelbrot/Julia engine.
// It renders one view, a named landmark region or any center and diameter,
// optionally with the viewer's overlay marks, and saves it as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"slices"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/config"
	"github.com/marben/mandel_julia/present"
	"github.com/marben/mandel_julia/render"
	"github.com/marben/mandel_julia/viewport"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

type options struct {
	cfg     config.Config
	region  string
	julia   bool
	param   mandel.ComplexPoint // julia parameter
	seed    mandel.ComplexPoint // orbit seed
	overlay bool
	out     string
	workers int
	verbose bool
}

func parseFlags(args []string) (options, error) {
	opts := options{cfg: config.Default()}
	fs := flag.NewFlagSet("cliclient", flag.ContinueOnError)
	opts.cfg.RegisterFlags(fs)
	fs.StringVar(&opts.region, "region", "", "landmark region to render instead of the configured view: "+landmarkNames())
	fs.BoolVar(&opts.julia, "julia", false, "render the Julia view instead of the Mandelbrot view")
	fs.Float64Var(&opts.param.Re, "c-re", 0, "julia parameter, real part")
	fs.Float64Var(&opts.param.Im, "c-im", 0, "julia parameter, imaginary part")
	fs.Float64Var(&opts.seed.Re, "seed-re", 0, "orbit seed, real part")
	fs.Float64Var(&opts.seed.Im, "seed-im", 0, "orbit seed, imaginary part")
	fs.BoolVar(&opts.overlay, "overlay", false, "draw the julia parameter mark or the orbit")
	fs.StringVar(&opts.out, "o", "mandel.png", "output file")
	fs.IntVar(&opts.workers, "workers", 0, "render workers, 0 for one per CPU")
	fs.BoolVar(&opts.verbose, "v", false, "log every tile")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if err := opts.cfg.Validate(); err != nil {
		return options{}, err
	}
	if opts.region != "" {
		if _, ok := mandel.Landmarks[opts.region]; !ok {
			return options{}, fmt.Errorf("unknown region %q, known: %s", opts.region, landmarkNames())
		}
	}
	return opts, nil
}

func landmarkNames() string {
	names := make([]string, 0, len(mandel.Landmarks))
	for name := range mandel.Landmarks {
		names = append(names, name)
	}
	slices.Sort(names)
	return fmt.Sprint(names)
}

// run renders the requested view and saves it as a PNG file.
// Returns an error if any step fails.
func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.verbose {
		mandel.SetLogger(slog.Default())
	}

	img, err := renderImage(context.Background(), opts)
	if err != nil {
		return err
	}

	log.Printf("Saving rendered image to %q...", opts.out)
	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	log.Printf("Fully rendered image saved to %q", opts.out)
	return nil
}

func renderImage(ctx context.Context, opts options) (image.Image, error) {
	cfg := opts.cfg
	view, mode := cfg.Mandelbrot, mandel.ModeMandelbrot
	if opts.julia {
		view, mode = cfg.Julia, mandel.ModeJulia
	}

	var vp *viewport.Viewport
	var err error
	if opts.region != "" {
		vp, err = viewport.FromRegion(cfg.RasterSize, mandel.Landmarks[opts.region], cfg.Limits())
	} else {
		vp, err = viewport.New(cfg.RasterSize, view.Center(), view.Diameter, cfg.Limits())
	}
	if err != nil {
		return nil, err
	}
	m := vp.Mapper()

	renderer := render.Pool{
		Workers: opts.workers,
		Renderer: render.RendererImpl{OnTileRender: func(tile image.Rectangle) {
			if opts.verbose {
				log.Printf("Rendering tile: %s", tile)
			}
		}},
	}
	log.Printf("Rendering %s view around %v at %g px/unit...", mode, m.Center, m.PPU)
	raster, err := renderer.Render(ctx, m.Request(cfg.MaxIters, mode, opts.param))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	var ov present.Overlay
	if opts.overlay {
		if opts.julia {
			ov.Orbit = mandel.GenerateOrbit(opts.seed, cfg.OrbitLength-1, opts.param)
		} else {
			ov.JuliaParam = &opts.param
		}
	}
	return present.Compose(present.Frame{Raster: raster, RasterMap: m, Display: m, Overlay: ov}), nil
}
