// Command termview is a terminal front end for the Mandelbrot/Julia
// viewer. Drag with the left button to pan, use the wheel to zoom; keys as
// in the browser client, q or Esc quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/config"
	"github.com/marben/mandel_julia/render"
	"github.com/marben/mandel_julia/session"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	cfg := config.Default()
	cfg.RasterSize = 240
	fs := flag.NewFlagSet("termview", flag.ExitOnError)
	cfg.RegisterFlags(fs)
	logFile := fs.String("log", "", "write engine logs to this file")
	_ = fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		return err
	}
	// the terminal is the display, so logs can only go to a file
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
		mandel.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// events go to the session once it exists
	var s *session.Session
	tv := newTermViewer(screen, postFunc(func(ev session.Event) { s.Post(ev) }), cfg.RasterSize)
	s, err = session.New(cfg, render.Pool{}, tv, session.WithStatus(tv.setStatus))
	if err != nil {
		return err
	}

	tv.setStatus(s.Status())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !tv.handleEvent(ev) {
				cancel()
				if err := <-done; !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}
		case err := <-done:
			return err
		}
	}
}

type postFunc func(session.Event)

func (f postFunc) Post(ev session.Event) { f(ev) }
