// Package config holds the tunables of the viewer. Commands load and
// validate a Config; the rest of the module only consumes validated values.
package config

import (
	"flag"
	"fmt"
	"math"
	"time"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/gesture"
	"github.com/marben/mandel_julia/viewport"
)

// View is the initial state of one viewport.
type View struct {
	CenterRe, CenterIm float64
	Diameter           float64
}

func (v View) Center() mandel.ComplexPoint {
	return mandel.ComplexPoint{Re: v.CenterRe, Im: v.CenterIm}
}

type Config struct {
	RasterSize int

	MaxIters      int
	MaxItersLimit int
	ItersDebounce time.Duration

	OrbitLength    int // points drawn, seed included
	OrbitLengthMax int

	ZoomDebounce     time.Duration
	WheelSensitivity float64
	MinZoomFactor    float64
	MaxZoomFactor    float64
	MinPPU           float64
	MaxPPU           float64

	Mandelbrot View
	Julia      View
}

// Default mirrors the original viewer: a 500px raster, 100 iterations,
// 8 orbit points, and both views 4 units wide.
func Default() Config {
	return Config{
		RasterSize:       500,
		MaxIters:         100,
		MaxItersLimit:    100000,
		ItersDebounce:    200 * time.Millisecond,
		OrbitLength:      8,
		OrbitLengthMax:   1000,
		ZoomDebounce:     100 * time.Millisecond,
		WheelSensitivity: 0.01,
		MinZoomFactor:    0.02,
		MaxZoomFactor:    50,
		MinPPU:           1,
		MaxPPU:           1e14,
		Mandelbrot:       View{CenterRe: -0.5, CenterIm: 0, Diameter: 4},
		Julia:            View{CenterRe: 0, CenterIm: 0, Diameter: 4},
	}
}

// RegisterFlags binds every field to a flag on fs, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.RasterSize, "size", c.RasterSize, "raster width and height in pixels")
	fs.IntVar(&c.MaxIters, "iters", c.MaxIters, "iteration budget")
	fs.IntVar(&c.MaxItersLimit, "iters-max", c.MaxItersLimit, "upper bound of the iteration budget")
	fs.DurationVar(&c.ItersDebounce, "iters-debounce", c.ItersDebounce, "delay before a changed iteration budget recomputes")
	fs.IntVar(&c.OrbitLength, "orbit", c.OrbitLength, "orbit points drawn on the Julia view")
	fs.IntVar(&c.OrbitLengthMax, "orbit-max", c.OrbitLengthMax, "upper bound of the orbit length")
	fs.DurationVar(&c.ZoomDebounce, "zoom-debounce", c.ZoomDebounce, "wheel pause before a zoom commits")
	fs.Float64Var(&c.WheelSensitivity, "wheel", c.WheelSensitivity, "zoom scale change per unit of wheel delta")
	fs.Float64Var(&c.MinZoomFactor, "zoom-min", c.MinZoomFactor, "smallest zoom factor of one wheel gesture")
	fs.Float64Var(&c.MaxZoomFactor, "zoom-max", c.MaxZoomFactor, "largest zoom factor of one wheel gesture")
	fs.Float64Var(&c.MinPPU, "ppu-min", c.MinPPU, "smallest pixels per unit")
	fs.Float64Var(&c.MaxPPU, "ppu-max", c.MaxPPU, "largest pixels per unit")
	fs.Float64Var(&c.Mandelbrot.CenterRe, "mandel-re", c.Mandelbrot.CenterRe, "initial Mandelbrot center, real part")
	fs.Float64Var(&c.Mandelbrot.CenterIm, "mandel-im", c.Mandelbrot.CenterIm, "initial Mandelbrot center, imaginary part")
	fs.Float64Var(&c.Mandelbrot.Diameter, "mandel-diameter", c.Mandelbrot.Diameter, "initial Mandelbrot view width")
	fs.Float64Var(&c.Julia.CenterRe, "julia-re", c.Julia.CenterRe, "initial Julia center, real part")
	fs.Float64Var(&c.Julia.CenterIm, "julia-im", c.Julia.CenterIm, "initial Julia center, imaginary part")
	fs.Float64Var(&c.Julia.Diameter, "julia-diameter", c.Julia.Diameter, "initial Julia view width")
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	switch {
	case c.RasterSize < 1:
		return rangeErr("size", c.RasterSize)
	case c.MaxItersLimit < 1:
		return rangeErr("iters-max", c.MaxItersLimit)
	case c.MaxIters < 1 || c.MaxIters > c.MaxItersLimit:
		return rangeErr("iters", c.MaxIters)
	case c.ItersDebounce < 0:
		return rangeErr("iters-debounce", c.ItersDebounce)
	case c.OrbitLengthMax < 1:
		return rangeErr("orbit-max", c.OrbitLengthMax)
	case c.OrbitLength < 1 || c.OrbitLength > c.OrbitLengthMax:
		return rangeErr("orbit", c.OrbitLength)
	case c.ZoomDebounce < 0:
		return rangeErr("zoom-debounce", c.ZoomDebounce)
	case !(c.WheelSensitivity > 0) || math.IsInf(c.WheelSensitivity, 1):
		return rangeErr("wheel", c.WheelSensitivity)
	case !(c.MinZoomFactor > 0) || c.MinZoomFactor > 1:
		return rangeErr("zoom-min", c.MinZoomFactor)
	case !(c.MaxZoomFactor >= 1):
		return rangeErr("zoom-max", c.MaxZoomFactor)
	case !(c.MinPPU > 0):
		return rangeErr("ppu-min", c.MinPPU)
	case !(c.MaxPPU >= c.MinPPU):
		return rangeErr("ppu-max", c.MaxPPU)
	case !(c.Mandelbrot.Diameter > 0):
		return rangeErr("mandel-diameter", c.Mandelbrot.Diameter)
	case !(c.Julia.Diameter > 0):
		return rangeErr("julia-diameter", c.Julia.Diameter)
	}
	return nil
}

func rangeErr(name string, v any) error {
	return fmt.Errorf("config %s=%v: %w", name, v, mandel.ErrOutOfRange)
}

// Limits returns the absolute scale bounds.
func (c Config) Limits() viewport.Limits {
	return viewport.Limits{MinPPU: c.MinPPU, MaxPPU: c.MaxPPU}
}

// Gesture returns the gesture controller settings.
func (c Config) Gesture() gesture.Config {
	return gesture.Config{
		Debounce:         c.ZoomDebounce,
		WheelSensitivity: c.WheelSensitivity,
		MinFactor:        c.MinZoomFactor,
		MaxFactor:        c.MaxZoomFactor,
	}
}

// ClampIters clamps an iteration budget into [1, MaxItersLimit].
func (c Config) ClampIters(n int) int {
	return clampInt(n, 1, c.MaxItersLimit)
}

// ClampOrbit clamps an orbit length into [1, OrbitLengthMax].
func (c Config) ClampOrbit(n int) int {
	return clampInt(n, 1, c.OrbitLengthMax)
}

func clampInt(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
