// Command server is the web front end of the Mandelbrot/Julia viewer. It
// serves the static page with the WASM client and runs one viewer session
// per websocket connection; all rendering happens here.
//
// The static directory needs main.wasm and wasm_exec.js next to index.html:
//
//	GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/webclient
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" static/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/config"
	"github.com/marben/mandel_julia/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg := config.Default()
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	cfg.RegisterFlags(fs)
	addr := fs.String("addr", ":8080", "http listen address")
	static := fs.String("static", "./static", "directory with index.html and main.wasm")
	workers := fs.Int("workers", 0, "render workers per raster, 0 for one per CPU")
	verbose := fs.Bool("v", false, "log viewer events")
	_ = fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		return err
	}
	if *verbose {
		mandel.SetLogger(slog.Default())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// one pool shared by every viewer; each raster fans out over its workers
	renderer := render.Pool{Workers: *workers}

	// httpServer provides index.html, main.wasm along with websocket endpoint
	listener, httpServer := webServer(ctx, *addr, *static)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("httpServer: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		_ = listener.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("viewer server waiting for websocket connections")
	if err := serve(ctx, listener, cfg, renderer); err != nil && ctx.Err() == nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// serve runs a viewer for every accepted connection until the listener
// is closed.
func serve(ctx context.Context, l net.Listener, cfg config.Config, r mandel.Renderer) error {
	for {
		conn, err := l.Accept()
		if err != nil {
			return err
		}
		go func() {
			log.Printf("got connection from: %s", conn.RemoteAddr())
			if err := serveViewer(ctx, conn, cfg, r); err != nil {
				log.Printf("viewer %s: %v", conn.RemoteAddr(), err)
				return
			}
			log.Printf("viewer %s left", conn.RemoteAddr())
		}()
	}
}
