package main

import (
	"syscall/js"
)

type cursor string

const (
	cursorAuto      cursor = "auto"
	cursorCrosshair cursor = "crosshair"
	cursorNone      cursor = "none"
)

func setCursor(canvas js.Value, c cursor) {
	canvas.Get("style").Set("cursor", string(c))
}

// pointerLocked returns true if the mouse is captured by canvas.
func pointerLocked(canvas js.Value) bool {
	return js.Global().Get("document").Get("pointerLockElement").Equal(canvas)
}
