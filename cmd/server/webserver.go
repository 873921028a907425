package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// webServer creates server serving files in the static folder,
// initializes websocket endpoint and returns net.Listener accepting websocket connections
func webServer(ctx context.Context, addr, static string) (*websocketListener, *http.Server) {
	l := newWebsocketListener(ctx, addr+"/ws")
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.Handle("/", http.FileServer(http.Dir(static)))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://%s", addr)
	return l, srv
}

// websocketHandler handles the http ws endpoint
// if websocket is succesfully initialized it is passed to websocketListener so it can be accepted
func websocketHandler(l *websocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			_ = c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// websocketListener implements net.Listener on top of accepted websockets.
// Every connection carries binary messages only.
type websocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

var _ net.Listener = (*websocketListener)(nil)

func newWebsocketListener(ctx context.Context, addr string) *websocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &websocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *websocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *websocketListener) Addr() net.Addr {
	return l.addr
}

func (l *websocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
