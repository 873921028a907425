package main

import (
	"fmt"
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/marben/mandel_julia/gesture"
	"github.com/marben/mandel_julia/session"
)

// wheelStep is the wheel delta of one notch, as browsers report it in
// pixel mode.
const wheelStep = 100

type poster interface {
	Post(session.Event)
}

// termViewer draws session frames on a terminal and turns terminal input
// into session events.
type termViewer struct {
	screen tcell.Screen
	events poster
	raster int

	// written by the session goroutine
	mu     sync.Mutex
	frames [2]image.Image
	status session.Status
	dirty  bool

	// input state, owned by the event loop
	pressed bool
	hovered session.ViewID
	inside  bool
}

func newTermViewer(screen tcell.Screen, events poster, raster int) *termViewer {
	return &termViewer{screen: screen, events: events, raster: raster}
}

// Present implements session.Presenter.
func (tv *termViewer) Present(id session.ViewID, frame image.Image) {
	tv.mu.Lock()
	tv.frames[id] = frame
	tv.mu.Unlock()
	tv.wake()
}

func (tv *termViewer) setStatus(st session.Status) {
	tv.mu.Lock()
	tv.status = st
	tv.mu.Unlock()
	tv.wake()
}

func (tv *termViewer) wake() {
	tv.mu.Lock()
	already := tv.dirty
	tv.dirty = true
	tv.mu.Unlock()
	if !already {
		_ = tv.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// handleEvent processes one terminal event and reports whether to go on.
func (tv *termViewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return tv.handleKey(ev)
	case *tcell.EventMouse:
		tv.handleMouse(ev)
	case *tcell.EventResize:
		tv.screen.Sync()
		tv.draw()
	case *tcell.EventInterrupt:
		tv.draw()
	}
	return true
}

func (tv *termViewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		tv.events.Post(session.Key{Key: "ArrowUp"})
	case tcell.KeyDown:
		tv.events.Post(session.Key{Key: "ArrowDown"})
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case 'c', 'r', '+', '=', '-', '[', ']':
			tv.events.Post(session.Key{Key: string(r)})
		}
	}
	return true
}

func (tv *termViewer) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	w, h := tv.screen.Size()
	id, x, y, ok := newLayout(w, h, tv.raster).viewAt(col, row)

	if ok != tv.inside || id != tv.hovered {
		if tv.inside {
			tv.events.Post(session.PointerLeave{View: tv.hovered})
		}
		if ok {
			tv.events.Post(session.PointerEnter{View: id})
		}
		tv.inside, tv.hovered = ok, id
	}

	buttons := ev.Buttons()
	down := buttons&tcell.Button1 != 0
	if ok {
		switch {
		case down && !tv.pressed:
			tv.events.Post(session.PointerDown{View: id, X: x, Y: y, Button: gesture.ButtonPrimary})
		default:
			tv.events.Post(session.PointerMove{View: id, X: x, Y: y})
		}
		if buttons&tcell.WheelUp != 0 {
			tv.events.Post(session.Wheel{View: id, X: x, Y: y, DeltaY: -wheelStep})
		}
		if buttons&tcell.WheelDown != 0 {
			tv.events.Post(session.Wheel{View: id, X: x, Y: y, DeltaY: wheelStep})
		}
	}
	// releases count anywhere on the terminal
	if !down && tv.pressed {
		tv.events.Post(session.PointerUp{Button: gesture.ButtonPrimary})
	}
	tv.pressed = down
}

func (tv *termViewer) draw() {
	tv.mu.Lock()
	frames, st := tv.frames, tv.status
	tv.dirty = false
	tv.mu.Unlock()

	w, h := tv.screen.Size()
	l := newLayout(w, h, tv.raster)
	tv.screen.Clear()
	for id, frame := range frames {
		if frame == nil || l.side == 0 {
			continue
		}
		tv.drawView(l.origin(session.ViewID(id)), l.fit(frame))
	}
	tv.drawText(0, l.statusRow(), statusLine(st))
	tv.screen.Show()
}

// drawView paints img two pixel rows per cell row.
func (tv *termViewer) drawView(col int, img *image.RGBA) {
	b := img.Bounds()
	for py := b.Min.Y; py+1 < b.Max.Y; py += 2 {
		for px := b.Min.X; px < b.Max.X; px++ {
			top, bottom := img.RGBAAt(px, py), img.RGBAAt(px, py+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			tv.screen.SetContent(col+px-b.Min.X, (py-b.Min.Y)/2, '▀', nil, style)
		}
	}
}

func (tv *termViewer) drawText(col, row int, text string) {
	for i, r := range []rune(text) {
		tv.screen.SetContent(col+i, row, r, nil, tcell.StyleDefault)
	}
}

func statusLine(st session.Status) string {
	line := fmt.Sprintf("iters %d  orbit %d  c = %.6f%+.6fi", st.MaxIters, st.OrbitLength, st.JuliaParam.Re, st.JuliaParam.Im)
	for id, v := range st.Views {
		if v.Hovered && v.HasPointer {
			line += fmt.Sprintf("  %s %.16f%+.16fi", session.ViewID(id), v.Pointer.Re, v.Pointer.Im)
		}
	}
	return line
}
