package fractal

import (
	"github.com/seqsense/pcgol/mat"
)

// Piece is one pyramid of the subdivided fractal, placed by its apex.
type Piece struct {
	Top   mat.Vec3
	Scale float32
}

// Model returns the transform placing Pyramid at the piece.
func (p Piece) Model() mat.Mat4 {
	return mat.Translate(p.Top[0], p.Top[1]-0.5*p.Scale, p.Top[2]).
		MulAffine(mat.Scale(p.Scale, p.Scale, p.Scale))
}

// children are the apex offsets of the sub-pyramids of a pyramid of
// height 1, excluding the top one which shares the parent apex.
var children = [4]mat.Vec3{
	{0.5, -1, 0.5},   // right-front
	{0.5, -1, -0.5},  // right-back
	{-0.5, -1, -0.5}, // left-back
	{-0.5, -1, 0.5},  // left-front
}

// Subdivide splits the pyramid with apex top and the given scale depth
// times. Each level replaces a pyramid by five half-sized ones.
func Subdivide(top mat.Vec3, depth int, scale float32) []Piece {
	pieces := make([]Piece, 0, Count(depth))
	return subdivide(pieces, top, depth, scale)
}

func subdivide(pieces []Piece, top mat.Vec3, depth int, scale float32) []Piece {
	if depth <= 0 {
		return append(pieces, Piece{Top: top, Scale: scale})
	}
	depth--
	scale *= 0.5

	pieces = subdivide(pieces, top, depth, scale)
	for _, c := range children {
		pieces = subdivide(pieces, top.Add(c.Mul(scale)), depth, scale)
	}
	return pieces
}

// Count returns the number of pieces produced by Subdivide.
func Count(depth int) int {
	n := 1
	for ; depth > 0; depth-- {
		n *= 5
	}
	return n
}
