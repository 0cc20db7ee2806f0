// Package fractal generates the geometry of a Sierpinski pyramid.
package fractal

import (
	"github.com/seqsense/pcgol/mat"
)

// Stride is the number of float32 values per vertex: position then color.
const Stride = 6

// VertexCount is the number of vertices in Pyramid.
const VertexCount = len(Pyramid) / Stride

// Pyramid is a square pyramid of unit height and base, centered at the
// origin with its apex at (0, 0.5, 0). It is drawn as 6 triangles.
var Pyramid = [...]float32{
	// front
	0, 0.5, 0, 1, 0, 0,
	-0.5, -0.5, 0.5, 1, 0.5, 0,
	0.5, -0.5, 0.5, 1, 0.5, 0,
	// right
	0, 0.5, 0, 0, 1, 0,
	0.5, -0.5, 0.5, 0, 1, 0.5,
	0.5, -0.5, -0.5, 0, 1, 0.5,
	// back
	0, 0.5, 0, 0, 0, 1,
	0.5, -0.5, -0.5, 0.5, 0, 1,
	-0.5, -0.5, -0.5, 0.5, 0, 1,
	// left
	0, 0.5, 0, 1, 1, 0,
	-0.5, -0.5, -0.5, 1, 1, 0.5,
	-0.5, -0.5, 0.5, 1, 1, 0.5,
	// base
	-0.5, -0.5, 0.5, 0.3, 0.3, 0.3,
	0.5, -0.5, -0.5, 0.3, 0.3, 0.3,
	0.5, -0.5, 0.5, 0.3, 0.3, 0.3,
	-0.5, -0.5, 0.5, 0.3, 0.3, 0.3,
	-0.5, -0.5, -0.5, 0.3, 0.3, 0.3,
	0.5, -0.5, -0.5, 0.3, 0.3, 0.3,
}

// Vertex returns the position and color of the i-th vertex of Pyramid.
func Vertex(i int) (pos, color mat.Vec3) {
	v := Pyramid[i*Stride : (i+1)*Stride]
	return mat.Vec3{v[0], v[1], v[2]}, mat.Vec3{v[3], v[4], v[5]}
}
