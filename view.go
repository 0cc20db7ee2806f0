package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/sierpinski/config"
)

// view holds the perspective projection parameters.
type view struct {
	fov       float64 // vertical, degrees
	near, far float64
}

func newView(p config.Projection) view {
	return view{
		fov:  p.FOV,
		near: p.Near,
		far:  p.Far,
	}
}

func (v view) projection(width, height int) mat.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mat.Mat4(mgl32.Perspective(
		mgl32.DegToRad(float32(v.fov)),
		aspect,
		float32(v.near), float32(v.far),
	))
}
