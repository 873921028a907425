// Package session runs the dual Mandelbrot/Julia viewer: two independent
// views, the values they share, and the single event loop that mutates them.
package session

import (
	"context"
	"errors"
	"fmt"
	"image"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/config"
	"github.com/marben/mandel_julia/gesture"
	"github.com/marben/mandel_julia/present"
	"github.com/marben/mandel_julia/viewport"
)

// ViewID names one of the two views.
type ViewID int

const (
	Mandelbrot ViewID = iota
	Julia
)

func (id ViewID) String() string {
	return id.Mode().String()
}

// Mode is the raster kernel mode of the view.
func (id ViewID) Mode() mandel.Mode {
	if id == Julia {
		return mandel.ModeJulia
	}
	return mandel.ModeMandelbrot
}

// Valid reports whether id names a view.
func (id ViewID) Valid() bool {
	return id == Mandelbrot || id == Julia
}

// Presenter receives composited frames, on the session goroutine.
type Presenter interface {
	Present(id ViewID, frame image.Image)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(id ViewID, frame image.Image)

func (f PresenterFunc) Present(id ViewID, frame image.Image) { f(id, frame) }

// Shared holds the values both views read. They change only through
// keyboard commands and SetMaxIters / SetOrbitLength.
type Shared struct {
	JuliaParam  mandel.ComplexPoint
	OrbitSeed   mandel.ComplexPoint
	OrbitLength int // points, seed included
	MaxIters    int
}

type view struct {
	id   ViewID
	vp   *viewport.Viewport
	ctl  *gesture.Controller
	zoom *gesture.Debouncer

	display viewport.Mapper // state on screen, committed or previewed

	raster    *image.RGBA
	rasterMap viewport.Mapper

	gen    uint64 // bumped by every recompute request
	cancel context.CancelFunc
}

// Session owns both views. All state changes happen in Handle, which must be
// called from one goroutine; Run does that for events sent with Post.
type Session struct {
	cfg       config.Config
	renderer  mandel.Renderer
	presenter Presenter
	clock     gesture.Clock

	views  [2]*view
	shared Shared
	iters  *gesture.Debouncer

	onStatus func(Status)

	events chan Event
	done   chan struct{}
	ctx    context.Context
	stop   context.CancelFunc
	spawn  func(func())
}

type Option func(*Session)

// WithClock replaces the wall clock, for the debounce timers.
func WithClock(c gesture.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithStatus registers f to receive the session status after every handled
// input event, on the session goroutine.
func WithStatus(f func(Status)) Option {
	return func(s *Session) { s.onStatus = f }
}

// New builds a session from a validated configuration.
func New(cfg config.Config, r mandel.Renderer, p Presenter, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	ctx, stop := context.WithCancel(context.Background())
	s := &Session{
		cfg:       cfg,
		renderer:  r,
		presenter: p,
		clock:     gesture.SystemClock{},
		shared: Shared{
			OrbitLength: cfg.OrbitLength,
			MaxIters:    cfg.MaxIters,
		},
		events: make(chan Event, 256),
		done:   make(chan struct{}),
		ctx:    ctx,
		stop:   stop,
		spawn:  func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.iters = gesture.NewDebouncer(s.clock)

	for id, vc := range map[ViewID]config.View{Mandelbrot: cfg.Mandelbrot, Julia: cfg.Julia} {
		vp, err := viewport.New(cfg.RasterSize, vc.Center(), vc.Diameter, cfg.Limits())
		if err != nil {
			stop()
			return nil, fmt.Errorf("%s viewport: %w", id, err)
		}
		s.views[id] = &view{
			id:      id,
			vp:      vp,
			ctl:     gesture.NewController(vp, cfg.Gesture()),
			zoom:    gesture.NewDebouncer(s.clock),
			display: vp.Mapper(),
		}
	}
	return s, nil
}

// Post queues ev for Run. It is safe to call from any goroutine and drops
// the event once Run has returned.
func (s *Session) Post(ev Event) {
	select {
	case s.events <- ev:
	case <-s.done:
	}
}

// Run computes the initial rasters and handles posted events until ctx ends.
func (s *Session) Run(ctx context.Context) error {
	defer s.shutdown()

	s.Start()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-s.events:
			s.Handle(ev)
		}
	}
}

func (s *Session) shutdown() {
	s.stop()
	s.iters.Stop()
	for _, v := range s.views {
		v.zoom.Stop()
	}
	close(s.done)
}

// Start requests the first raster of both views and shows their overlays.
func (s *Session) Start() {
	for _, v := range s.views {
		s.recompute(v)
		s.present(v)
	}
}

// Handle applies one event.
func (s *Session) Handle(ev Event) {
	switch ev := ev.(type) {
	case PointerDown:
		if v := s.view(ev.View); v != nil {
			s.apply(v, v.ctl.PointerDown(ev.X, ev.Y, ev.Button))
		}
	case PointerMove:
		if v := s.view(ev.View); v != nil {
			s.apply(v, v.ctl.PointerMove(ev.X, ev.Y))
		}
	case PointerUp:
		for _, v := range s.views {
			s.apply(v, v.ctl.PointerUp(ev.Button))
		}
	case Wheel:
		if v := s.view(ev.View); v != nil {
			s.wheel(v, ev)
		}
	case PointerEnter:
		if v := s.view(ev.View); v != nil {
			v.ctl.Enter()
		}
	case PointerLeave:
		if v := s.view(ev.View); v != nil {
			v.ctl.Leave()
		}
	case Key:
		s.key(ev.Key)
	case SetMaxIters:
		s.setMaxIters(ev.N)
	case SetOrbitLength:
		s.setOrbitLength(ev.N)
	case zoomDue:
		if v := s.view(ev.view); v != nil {
			s.apply(v, v.ctl.Expire(s.clock.Now()))
		}
	case itersDue:
		for _, v := range s.views {
			s.recompute(v)
		}
	case rasterDone:
		s.rasterDone(ev)
		return
	}
	if s.onStatus != nil {
		s.onStatus(s.Status())
	}
}

func (s *Session) view(id ViewID) *view {
	if !id.Valid() {
		mandel.Logger().Debug("event for unknown view", "view", int(id))
		return nil
	}
	return s.views[id]
}

func (s *Session) wheel(v *view, ev Wheel) {
	in := v.ctl.Wheel(ev.X, ev.Y, ev.DeltaY, s.clock.Now())
	s.apply(v, in)
	if _, pending := v.ctl.Deadline(); pending {
		id := v.id
		v.zoom.Schedule(s.cfg.ZoomDebounce, func() { s.Post(zoomDue{view: id}) })
	}
}

// apply carries out a controller intent: previews move the shown state
// only, commits mutate the viewport and request a raster.
func (s *Session) apply(v *view, in gesture.Intent) {
	if in.None() {
		return
	}
	if !in.Commit {
		m, err := s.preview(v, in.Op)
		if err != nil {
			mandel.Logger().Debug("preview rejected", "view", v.id, "op", in.Op.Kind, "err", err)
			return
		}
		v.display = m
		s.present(v)
		return
	}

	var err error
	switch in.Op.Kind {
	case gesture.OpPan:
		err = v.vp.Pan(in.Op.Delta)
	case gesture.OpZoom:
		err = v.vp.ZoomAt(in.Op.Pivot, in.Op.Factor)
	}
	v.display = v.vp.Mapper()
	if err != nil {
		mandel.Logger().Warn("viewport mutation rejected", "view", v.id, "op", in.Op.Kind, "err", err)
		s.present(v)
		return
	}
	mandel.Logger().Info("viewport committed", "view", v.id, "op", in.Op.Kind,
		"center", v.vp.Center(), "ppu", v.vp.PixelsPerUnit())
	s.recompute(v)
	s.present(v)
}

func (s *Session) preview(v *view, op gesture.Op) (viewport.Mapper, error) {
	switch op.Kind {
	case gesture.OpPan:
		return v.vp.Panned(op.Delta)
	case gesture.OpZoom:
		return v.vp.Zoomed(op.Pivot, op.Factor)
	default:
		return v.vp.Mapper(), nil
	}
}

// recompute asks the renderer for a raster of the committed state. It
// supersedes any raster still in flight for the view.
func (s *Session) recompute(v *view) {
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++

	ctx, cancel := context.WithCancel(s.ctx)
	v.cancel = cancel

	m := v.vp.Mapper()
	req := m.Request(s.shared.MaxIters, v.id.Mode(), s.shared.JuliaParam)
	id, gen := v.id, v.gen
	s.spawn(func() {
		img, err := s.renderer.Render(ctx, req)
		s.Post(rasterDone{view: id, gen: gen, m: m, img: img, err: err})
	})
}

func (s *Session) rasterDone(d rasterDone) {
	v := s.view(d.view)
	if v == nil {
		return
	}
	if d.gen != v.gen {
		mandel.Logger().Debug("raster discarded", "view", v.id, "gen", d.gen, "current", v.gen, "err", mandel.ErrStaleRaster)
		return
	}
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	if d.err != nil {
		if !errors.Is(d.err, context.Canceled) {
			mandel.Logger().Warn("raster failed", "view", v.id, "err", d.err)
		}
		return
	}
	v.raster = d.img
	v.rasterMap = d.m
	s.present(v)
}

func (s *Session) present(v *view) {
	if s.presenter == nil {
		return
	}
	frame := present.Compose(present.Frame{
		Raster:    v.raster,
		RasterMap: v.rasterMap,
		Display:   v.display,
		Overlay:   s.overlay(v.id),
	})
	s.presenter.Present(v.id, frame)
}

func (s *Session) overlay(id ViewID) present.Overlay {
	if id == Mandelbrot {
		c := s.shared.JuliaParam
		return present.Overlay{JuliaParam: &c}
	}
	return present.Overlay{Orbit: s.Orbit()}
}

// Orbit is the orbit drawn on the Julia view.
func (s *Session) Orbit() []mandel.ComplexPoint {
	return mandel.GenerateOrbit(s.shared.OrbitSeed, s.shared.OrbitLength-1, s.shared.JuliaParam)
}

// Shared returns a copy of the shared values.
func (s *Session) Shared() Shared { return s.shared }

// Viewport returns the committed state of a view, or the zero Mapper for
// an unknown view.
func (s *Session) Viewport(id ViewID) viewport.Mapper {
	v := s.view(id)
	if v == nil {
		return viewport.Mapper{}
	}
	return v.vp.Mapper()
}

// Display returns the state currently shown for a view, including any
// gesture preview.
func (s *Session) Display(id ViewID) viewport.Mapper {
	v := s.view(id)
	if v == nil {
		return viewport.Mapper{}
	}
	return v.display
}

// Phase returns the gesture phase of a view; unknown views are idle.
func (s *Session) Phase(id ViewID) gesture.Phase {
	v := s.view(id)
	if v == nil {
		return gesture.Idle
	}
	return v.ctl.Phase()
}

// PointerComplex returns the plane coordinate under the pointer of a view.
func (s *Session) PointerComplex(id ViewID) (mandel.ComplexPoint, bool) {
	v := s.view(id)
	if v == nil {
		return mandel.ComplexPoint{}, false
	}
	return v.ctl.PointerComplex()
}

// ViewStatus describes one view for a status line.
type ViewStatus struct {
	Center        mandel.ComplexPoint
	PixelsPerUnit float64
	Phase         gesture.Phase
	Hovered       bool
	Pointer       mandel.ComplexPoint
	HasPointer    bool
}

// Status is a snapshot of the session for display.
type Status struct {
	Shared
	Views [2]ViewStatus
}

// Status returns the current snapshot.
func (s *Session) Status() Status {
	st := Status{Shared: s.shared}
	for i, v := range s.views {
		z, ok := v.ctl.PointerComplex()
		st.Views[i] = ViewStatus{
			Center:        v.vp.Center(),
			PixelsPerUnit: v.vp.PixelsPerUnit(),
			Phase:         v.ctl.Phase(),
			Hovered:       v.ctl.Hovered(),
			Pointer:       z,
			HasPointer:    ok,
		}
	}
	return st
}
