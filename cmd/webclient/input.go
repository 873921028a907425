//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"

	mandel "github.com/marben/mandel_julia"
)

// bindInputs registers DOM listeners that turn browser input into viewer
// inputs on out. Listeners never block: when out is full the input is
// dropped.
func bindInputs(out chan<- mandel.Input) {
	send := func(in mandel.Input) {
		select {
		case out <- in:
		default:
			logScreenf("input queue full, dropped %s", in.Kind)
		}
	}
	doc := js.Global().Get("document")

	for view, id := range canvasIDs {
		canvas := doc.Call("getElementById", id)
		on(canvas, "mousedown", func(ev js.Value) {
			send(mandel.Input{Kind: mandel.InputDown, View: view, X: ev.Get("offsetX").Float(), Y: ev.Get("offsetY").Float(), Button: ev.Get("button").Int()})
		})
		on(canvas, "mousemove", func(ev js.Value) {
			send(mandel.Input{Kind: mandel.InputMove, View: view, X: ev.Get("offsetX").Float(), Y: ev.Get("offsetY").Float()})
		})
		on(canvas, "mouseenter", func(js.Value) {
			send(mandel.Input{Kind: mandel.InputEnter, View: view})
		})
		on(canvas, "mouseleave", func(js.Value) {
			send(mandel.Input{Kind: mandel.InputLeave, View: view})
		})
		// not passive, so the page does not scroll while zooming
		wheel := js.FuncOf(func(_ js.Value, args []js.Value) any {
			ev := args[0]
			ev.Call("preventDefault")
			send(mandel.Input{Kind: mandel.InputWheel, View: view, X: ev.Get("offsetX").Float(), Y: ev.Get("offsetY").Float(), DeltaY: ev.Get("deltaY").Float()})
			return nil
		})
		canvas.Call("addEventListener", "wheel", wheel, map[string]any{"passive": false})
		on(canvas, "contextmenu", func(ev js.Value) { ev.Call("preventDefault") })
	}

	// releases end drags wherever they happen
	on(doc, "mouseup", func(ev js.Value) {
		send(mandel.Input{Kind: mandel.InputUp, Button: ev.Get("button").Int()})
	})
	on(doc, "keydown", func(ev js.Value) {
		if ev.Get("target").Get("tagName").String() == "INPUT" {
			return
		}
		key := ev.Get("key").String()
		if key == "ArrowUp" || key == "ArrowDown" {
			ev.Call("preventDefault")
		}
		send(mandel.Input{Kind: mandel.InputKey, Key: key})
	})

	bindNumber(doc.Call("getElementById", "iterations"), mandel.InputMaxIters, send)
	bindNumber(doc.Call("getElementById", "orbitLength"), mandel.InputOrbitLength, send)
}

// bindNumber sends the value of a number field on every edit; the server
// clamps and debounces.
func bindNumber(field js.Value, kind mandel.InputKind, send func(mandel.Input)) {
	on(field, "input", func(js.Value) {
		n, err := strconv.Atoi(field.Get("value").String())
		if err != nil {
			return
		}
		send(mandel.Input{Kind: kind, N: n})
	})
}

func on(target js.Value, event string, f func(ev js.Value)) {
	target.Call("addEventListener", event, js.FuncOf(func(_ js.Value, args []js.Value) any {
		f(args[0])
		return nil
	}))
}
