package main

import (
	"fmt"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/sierpinski/config"
	"github.com/seqsense/sierpinski/fractal"
)

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "canvas")

	logDiv := doc.Call("getElementById", "log")
	logPrint := func(msg interface{}) {
		println(fmt.Sprint(msg))
		if logDiv.Truthy() {
			html := logDiv.Get("innerHTML").String()
			logDiv.Set("innerHTML", fmt.Sprintf("%s%v<br/>", html, msg))
		}
	}

	cfg := config.Default()
	if src := doc.Call("getElementById", "config"); src.Truthy() {
		c, err := config.Parse([]byte(src.Get("textContent").String()))
		if err != nil {
			logPrint(err)
			return
		}
		cfg = c
	}

	gl, err := webgl.New(canvas)
	if err != nil {
		logPrint(err)
		return
	}
	showDebugInfo(gl, logPrint)

	program, err := newProgram(gl)
	if err != nil {
		logPrint(err)
		return
	}
	gl.UseProgram(program)
	modelLocation := gl.GetUniformLocation(program, "model")
	viewLocation := gl.GetUniformLocation(program, "view")
	perspectiveLocation := gl.GetUniformLocation(program, "perspective")

	buf := gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(fractal.Pyramid[:]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(aPosition, 3, gl.FLOAT, false, fractal.Stride*4, 0)
	gl.EnableVertexAttribArray(aPosition)
	gl.VertexAttribPointer(aColor, 3, gl.FLOAT, false, fractal.Stride*4, 3*4)
	gl.EnableVertexAttribArray(aColor)

	gl.ClearColor(1, 1, 1, 1)
	gl.ClearDepth(1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	s := newScene(cfg)
	con := &console{s: s}
	in := newBrowserInput(canvas)
	defer in.release()

	chConsole := make(chan consoleRequest)
	consoleFn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return js.Undefined()
		}
		line := args[0].String()
		executor := js.FuncOf(func(this js.Value, p []js.Value) interface{} {
			req := consoleRequest{line: line, resolve: p[0], reject: p[1]}
			go func() { chConsole <- req }()
			return nil
		})
		defer executor.Release()
		return js.Global().Get("Promise").New(executor)
	})
	defer consoleFn.Release()
	js.Global().Set("sierpinskiConsole", consoleFn)

	chContextLost := make(chan struct{}, 1)
	contextLostFn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case chContextLost <- struct{}{}:
		default:
		}
		return nil
	})
	defer contextLostFn.Release()
	canvas.Call("addEventListener", "webglcontextlost", contextLostFn)

	chFrame := make(chan struct{}, 1)
	frameFn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case chFrame <- struct{}{}:
		default:
		}
		return nil
	})
	defer frameFn.Release()

	width, height := -1, -1
	logPrint(fmt.Sprintf("Started: fps %d, subdivide %d", cfg.FPS, s.subdivide))

	for {
		// The canvas is presented only after returning to the browser.
		js.Global().Call("requestAnimationFrame", frameFn)
		<-chFrame

		select {
		case <-chContextLost:
			logPrint(errContextLostEvent)
			return
		case req := <-chConsole:
			req.reply(con.Run(req.line))
		default:
		}

		newWidth := canvas.Get("clientWidth").Int()
		newHeight := canvas.Get("clientHeight").Int()
		if newWidth != width || newHeight != height {
			width, height = newWidth, newHeight
			canvas.Set("width", width)
			canvas.Set("height", height)
			gl.Viewport(0, 0, width, height)
		}

		st, pressed := in.poll()
		for _, code := range pressed {
			switch code {
			case "ArrowUp":
				s.setSubdivide(s.subdivide + 1)
			case "ArrowDown":
				s.setSubdivide(s.subdivide - 1)
			}
		}
		s.update(st)

		view, perspective := s.matrices(width, height)
		gl.UniformMatrix4fv(viewLocation, false, view)
		gl.UniformMatrix4fv(perspectiveLocation, false, perspective)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		for _, m := range s.models {
			gl.UniformMatrix4fv(modelLocation, false, m)
			gl.DrawArrays(gl.TRIANGLES, 0, fractal.VertexCount)
		}

		s.tick()
	}
}
