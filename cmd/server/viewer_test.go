package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/config"
	"github.com/marben/mandel_julia/render"
)

// browserDisplay stands in for the WASM client's display service.
type browserDisplay struct {
	frames chan shownFrame
	status chan mandel.ViewerStatus
}

type shownFrame struct {
	view  int
	width int
}

func (d browserDisplay) ShowFrame(view int, img image.RGBA) error {
	d.frames <- shownFrame{view: view, width: img.Bounds().Dx()}
	return nil
}

func (d browserDisplay) ShowStatus(st mandel.ViewerStatus) error {
	d.status <- st
	return nil
}

func TestViewerRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	cfg := config.Default()
	cfg.RasterSize = 64

	l, srv := webServer(ctx, "", t.TempDir())
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()
	defer l.Close()
	go func() { _ = serve(ctx, l, cfg, render.Pool{Workers: 2}) }()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.CloseNow()

	display := browserDisplay{
		frames: make(chan shownFrame, 16),
		status: make(chan mandel.ViewerStatus, 16),
	}
	endpoint := irpc.NewEndpoint(websocket.NetConn(ctx, c, websocket.MessageBinary),
		irpc.WithEndpointServices(mandel.NewViewerDisplayIrpcService(display)))
	defer endpoint.Close()
	control, err := mandel.NewViewerControlIrpcClient(endpoint)
	if err != nil {
		t.Fatal(err)
	}

	seen := map[int]bool{}
	var st mandel.ViewerStatus
	readUntil := func(done func() bool) {
		t.Helper()
		for !done() {
			select {
			case f := <-display.frames:
				if f.width != 64 {
					t.Errorf("frame width = %d, want 64", f.width)
				}
				seen[f.view] = true
			case st = <-display.status:
			case <-ctx.Done():
				t.Fatalf("timed out, frames %v, status %+v", seen, st)
			}
		}
	}

	readUntil(func() bool { return seen[mandel.ViewMandelbrot] && seen[mandel.ViewJulia] && st.MaxIters != 0 })
	if st.OrbitLength != 8 || len(st.Views) != 2 {
		t.Errorf("initial status = %+v", st)
	}

	if err := control.Input(mandel.Input{Kind: mandel.InputOrbitLength, N: 20}); err != nil {
		t.Fatal(err)
	}
	readUntil(func() bool { return st.OrbitLength == 20 })

	if err := control.Input(mandel.Input{Kind: mandel.InputMove, View: mandel.ViewJulia, X: 32, Y: 16}); err != nil {
		t.Fatal(err)
	}
	readUntil(func() bool { return st.Views[mandel.ViewJulia].HasPointer })
	if p := st.Views[mandel.ViewJulia].Pointer; p != (mandel.ComplexPoint{Re: 0, Im: 1}) {
		t.Errorf("pointer readout = %v, want (0, 1)", p)
	}

	err = control.Input(mandel.Input{Kind: mandel.InputDown, View: 5})
	if err == nil || !strings.Contains(err.Error(), errUnknownInput.Error()) {
		t.Errorf("input for view 5 = %v, want %q", err, errUnknownInput)
	}
}

func TestViewerExitErr(t *testing.T) {
	boom := errors.New("boom")
	closed := errors.Join(irpc.ErrEndpointClosed, boom)
	tests := []struct {
		err  error
		want error
	}{
		{irpc.ErrEndpointClosedByCounterpart, nil},
		{fmt.Errorf("show frame: %w", context.Canceled), nil},
		{closed, closed},
		{boom, boom},
	}
	for _, tt := range tests {
		if got := viewerExitErr(tt.err); got != tt.want {
			t.Errorf("viewerExitErr(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
