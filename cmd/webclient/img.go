//go:build js && wasm

package main

import (
	"image"
	"syscall/js"
)

var (
	canvasIDs = [2]string{"mandelbrot", "julia"}
	viewNames = [2]string{"mandelbrot", "julia"}
)

// displayImage puts rgba on the canvas with the given id, resizing the
// canvas to the image.
func displayImage(canvasID string, rgba *image.RGBA) {

	// 1. Get the Canvas element and its 2D context
	document := js.Global().Get("document")
	canvas := document.Call("getElementById", canvasID)
	width := rgba.Rect.Dx()
	height := rgba.Rect.Dy()
	if canvas.Get("width").Int() != width || canvas.Get("height").Int() != height {
		canvas.Set("width", width)
		canvas.Set("height", height)
	}
	ctx := canvas.Call("getContext", "2d")

	// 2. Create a JS TypedArray (Uint8ClampedArray) to hold the pixel data
	// The length is width * height * 4 (RGBA)
	jsData := js.Global().Get("Uint8ClampedArray").New(len(rgba.Pix))

	// 3. Copy the Go byte slice into the JS TypedArray
	js.CopyBytesToJS(jsData, rgba.Pix)

	// 4. Create ImageData and put it on the canvas
	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	ctx.Call("putImageData", imageData, 0, 0)
}
