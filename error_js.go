package main

import (
	"errors"
	"syscall/js"
)

var errContextLostEvent = errors.New("received context lost event")

func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

// consoleRequest is a console line waiting for the render loop.
type consoleRequest struct {
	line            string
	resolve, reject js.Value
}

func (r consoleRequest) reply(res string, err error) {
	if err != nil {
		r.reject.Invoke(errorToJS(err))
		return
	}
	r.resolve.Invoke(res)
}
