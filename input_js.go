package main

import (
	"sync"
	"syscall/js"

	"github.com/seqsense/sierpinski/input"
)

// browserInput accumulates DOM input events between frames.
type browserInput struct {
	mu      sync.Mutex
	down    map[string]bool
	pressed []string
	dx, dy  float64

	cleanup []func()
}

func newBrowserInput(canvas js.Value) *browserInput {
	b := &browserInput{down: make(map[string]bool)}
	doc := js.Global().Get("document")

	b.listen(doc, "keydown", func(e js.Value) {
		if !pointerLocked(canvas) {
			return
		}
		code := e.Get("code").String()
		e.Call("preventDefault")
		b.mu.Lock()
		if !e.Get("repeat").Bool() {
			b.pressed = append(b.pressed, code)
		}
		b.down[code] = true
		b.mu.Unlock()
	})
	b.listen(doc, "keyup", func(e js.Value) {
		b.mu.Lock()
		delete(b.down, e.Get("code").String())
		b.mu.Unlock()
	})
	b.listen(doc, "mousemove", func(e js.Value) {
		if !pointerLocked(canvas) {
			return
		}
		b.mu.Lock()
		b.dx += e.Get("movementX").Float()
		b.dy += e.Get("movementY").Float()
		b.mu.Unlock()
	})
	b.listen(canvas, "click", func(e js.Value) {
		if !pointerLocked(canvas) {
			canvas.Call("requestPointerLock")
		}
	})
	b.listen(doc, "pointerlockchange", func(e js.Value) {
		if pointerLocked(canvas) {
			setCursor(canvas, cursorNone)
			return
		}
		setCursor(canvas, cursorCrosshair)
		b.mu.Lock()
		b.down = make(map[string]bool)
		b.mu.Unlock()
	})
	setCursor(canvas, cursorCrosshair)
	return b
}

func (b *browserInput) listen(target js.Value, name string, cb func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb(args[0])
		return nil
	})
	target.Call("addEventListener", name, fn)
	b.cleanup = append(b.cleanup, func() {
		target.Call("removeEventListener", name, fn)
		fn.Release()
	})
}

// poll returns the input of the frame and the key codes pressed since the
// last poll.
func (b *browserInput) poll() (input.State, []string) {
	b.mu.Lock()
	st := input.State{
		Keys: input.Keys{
			Forward: b.down["KeyW"],
			Back:    b.down["KeyS"],
			Left:    b.down["KeyA"],
			Right:   b.down["KeyD"],
			Up:      b.down["ShiftLeft"],
			Down:    b.down["ControlLeft"],
		},
		MouseDX: b.dx,
		MouseDY: b.dy,
	}
	pressed := b.pressed
	b.pressed = nil
	b.dx, b.dy = 0, 0
	b.mu.Unlock()

	pollGamepad(&st)
	return st, pressed
}

// pollGamepad reads the first gamepad with the standard mapping.
func pollGamepad(st *input.State) {
	nav := js.Global().Get("navigator")
	if nav.Get("getGamepads").Type() != js.TypeFunction {
		return
	}
	pads := nav.Call("getGamepads")
	for i := 0; i < pads.Length(); i++ {
		p := pads.Index(i)
		if !p.Truthy() || p.Get("mapping").String() != "standard" {
			continue
		}
		axes := p.Get("axes")
		if axes.Length() < 4 {
			continue
		}
		st.Gamepad = true
		st.LeftStick = input.Stick{X: axes.Index(0).Float(), Y: axes.Index(1).Float()}
		st.RightStick = input.Stick{X: axes.Index(2).Float(), Y: axes.Index(3).Float()}
		return
	}
}

func (b *browserInput) release() {
	for _, fn := range b.cleanup {
		fn()
	}
}
