package main

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"net"
	"sync"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/config"
	"github.com/marben/mandel_julia/session"
)

// serveViewer runs one session for a browser until either side goes away.
// The browser calls mandel.ViewerControl on us; we call mandel.ViewerDisplay
// on the browser.
func serveViewer(ctx context.Context, conn net.Conn, cfg config.Config, r mandel.Renderer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := newOutbox()
	s, err := session.New(cfg, r, session.PresenterFunc(out.frame),
		session.WithStatus(func(st session.Status) { out.status(newStatus(st)) }))
	if err != nil {
		conn.Close()
		return err
	}
	out.status(newStatus(s.Status()))

	// the control service is registered before the endpoint reads its first request
	endpoint := irpc.NewEndpoint(conn,
		irpc.WithEndpointServices(mandel.NewViewerControlIrpcService(viewerControl{s: s})),
		irpc.WithRemoteAddress(conn.RemoteAddr()),
	)
	defer endpoint.Close()

	display, err := mandel.NewViewerDisplayIrpcClient(endpoint)
	if err != nil {
		return err
	}

	errc := make(chan error, 2)
	go func() { errc <- s.Run(ctx) }()
	go func() { errc <- out.pushLoop(ctx, display) }()

	select {
	case err = <-errc:
	case <-endpoint.Context().Done():
		err = context.Cause(endpoint.Context())
	}
	cancel()
	return viewerExitErr(err)
}

// viewerExitErr maps the ways a browser normally leaves to nil.
func viewerExitErr(err error) error {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return nil
	}
	if errors.Is(err, irpc.ErrEndpointClosedByCounterpart) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// viewerControl feeds browser input into a session.
type viewerControl struct {
	s *session.Session
}

var _ mandel.ViewerControl = viewerControl{}

func (c viewerControl) Input(in mandel.Input) error {
	ev, err := toEvent(in)
	if err != nil {
		return err
	}
	c.s.Post(ev)
	return nil
}

// outbox keeps only the newest frame of each view and the newest status,
// so a slow connection skips intermediate previews instead of stalling the
// session.
type outbox struct {
	mu     sync.Mutex
	frames [2]image.Image
	st     *mandel.ViewerStatus
	wake   chan struct{}
}

func newOutbox() *outbox {
	return &outbox{wake: make(chan struct{}, 1)}
}

func (o *outbox) frame(id session.ViewID, img image.Image) {
	o.mu.Lock()
	o.frames[id] = img
	o.mu.Unlock()
	o.notify()
}

func (o *outbox) status(st mandel.ViewerStatus) {
	o.mu.Lock()
	o.st = &st
	o.mu.Unlock()
	o.notify()
}

func (o *outbox) notify() {
	select {
	case o.wake <- struct{}{}:
	default:
	}
}

func (o *outbox) take() (frames [2]image.Image, st *mandel.ViewerStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	frames, st = o.frames, o.st
	o.frames, o.st = [2]image.Image{}, nil
	return frames, st
}

// pushLoop sends whatever the outbox holds to the browser. Every call waits
// for the browser's answer, which is what lets later frames replace earlier
// ones while a call is in flight.
func (o *outbox) pushLoop(ctx context.Context, display mandel.ViewerDisplay) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-o.wake:
		}

		frames, st := o.take()
		for id, img := range frames {
			if img == nil {
				continue
			}
			if err := display.ShowFrame(id, *toRGBA(img)); err != nil {
				return err
			}
		}
		if st != nil {
			if err := display.ShowStatus(*st); err != nil {
				return err
			}
		}
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}
