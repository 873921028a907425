//go:build js && wasm

// webclient.go is a WASM web client for the Mandelbrot/Julia viewer.
// It forwards pointer, wheel and key input to the server and paints the
// frames it sends back onto the two canvases.

package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"syscall/js"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandel_julia"
)

// main is the entry point for the WASM web client.
// It connects to the viewer server, serves mandel.ViewerDisplay to it over
// IRPC and forwards DOM input through the server's mandel.ViewerControl.
// Note: All rendering is performed by the server; the client only paints frames.
func main() {
	logScreenf("Starting WASM viewer client...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	// Step 2: Connect to server via WebSocket
	logScreenf("Connecting to viewer server at %s...", websocketUrl)
	ctx := context.Background()
	conn, _, err := websocket.Dial(ctx, websocketUrl, nil)
	if err != nil {
		logFatalf("Failed to connect: %v", err)
	}
	logScreenf("WebSocket connected.")

	// Step 3: Set up IRPC endpoint and display service
	displayService := mandel.NewViewerDisplayIrpcService(canvasDisplay{})
	endpoint := irpc.NewEndpoint(websocket.NetConn(ctx, conn, websocket.MessageBinary), irpc.WithEndpointServices(displayService))
	logScreenf("IRPC endpoint created.")

	// Step 4: Create ViewerControl client for server communication
	control, err := mandel.NewViewerControlIrpcClient(endpoint)
	if err != nil {
		logFatalf("Failed to create ViewerControl client: %v", err)
	}
	logScreenf("ViewerControl client created.")

	// Step 5: Forward DOM input to the server, one call at a time so the
	// server sees the events in order
	inputs := make(chan mandel.Input, 256)
	bindInputs(inputs)
	go func() {
		for in := range inputs {
			if err := control.Input(in); err != nil {
				logScreenf("%s input rejected: %v", in.Kind, err)
			}
		}
	}()

	// Step 6: Block main goroutine until the server goes away
	<-endpoint.Context().Done()
	logFatalf("connection closed: %v", context.Cause(endpoint.Context()))
}

// canvasDisplay implements mandel.ViewerDisplay on the page.
type canvasDisplay struct{}

var _ mandel.ViewerDisplay = canvasDisplay{}

func (canvasDisplay) ShowFrame(view int, img image.RGBA) error {
	if view != mandel.ViewMandelbrot && view != mandel.ViewJulia {
		return fmt.Errorf("no canvas for view %d", view)
	}
	displayImage(canvasIDs[view], &img)
	return nil
}

func (canvasDisplay) ShowStatus(st mandel.ViewerStatus) error {
	hudSetStatus(st)
	return nil
}

// logScreenf appends a formatted message to the log element in the DOM,
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// hudSetStatus shows the pointer coordinate and the shared values.
func hudSetStatus(st mandel.ViewerStatus) {
	for i, v := range st.Views {
		if v.HasPointer && v.Hovered && i < len(viewNames) {
			hudSet("pointer", fmt.Sprintf("%s: %s", viewNames[i], formatComplex(v.Pointer)))
		}
	}
	hudSet("juliaParam", formatComplex(st.JuliaParam))
	hudSet("orbitSeed", formatComplex(st.OrbitSeed))
	hudSetValue("orbitLength", st.OrbitLength)
	hudSetValue("iterations", st.MaxIters)
}

func hudSet(id, text string) {
	js.Global().Get("document").Call("getElementById", id).Set("textContent", text)
}

// hudSetValue updates an input field unless the user is typing into it.
func hudSetValue(id string, v int) {
	doc := js.Global().Get("document")
	elem := doc.Call("getElementById", id)
	if doc.Get("activeElement").Equal(elem) {
		return
	}
	elem.Set("value", v)
}

func formatComplex(z mandel.ComplexPoint) string {
	return fmt.Sprintf("%.16f %+.16fi", z.Re, z.Im)
}
