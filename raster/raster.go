// Package raster projects triangles to screen space for backends which
// draw without a depth buffer.
package raster

import (
	"sort"

	"github.com/seqsense/pcgol/mat"
)

// minW is the smallest clip-space w of a drawable vertex.
// Vertices closer to the eye plane are behind the camera or too close to it.
const minW = 1e-3

// Vertex is a screen-space vertex.
// X and Y are pixels from the top-left corner, Depth is the normalized
// device depth in [-1, 1].
type Vertex struct {
	X, Y, Depth float32
	Color       mat.Vec3
}

type Triangle [3]Vertex

func (t Triangle) depth() float32 {
	return (t[0].Depth + t[1].Depth + t[2].Depth) / 3
}

// Project transforms p by the model-view-projection matrix m into a
// width x height viewport. ok is false if p is not in front of the camera.
func Project(m mat.Mat4, p mat.Vec3, width, height int) (v Vertex, ok bool) {
	x := m[4*0+0]*p[0] + m[4*1+0]*p[1] + m[4*2+0]*p[2] + m[4*3+0]
	y := m[4*0+1]*p[0] + m[4*1+1]*p[1] + m[4*2+1]*p[2] + m[4*3+1]
	z := m[4*0+2]*p[0] + m[4*1+2]*p[1] + m[4*2+2]*p[2] + m[4*3+2]
	w := m[4*0+3]*p[0] + m[4*1+3]*p[1] + m[4*2+3]*p[2] + m[4*3+3]
	if w < minW {
		return Vertex{}, false
	}
	return Vertex{
		X:     (x/w + 1) / 2 * float32(width),
		Y:     (1 - y/w) / 2 * float32(height),
		Depth: z / w,
	}, true
}

// Batch collects projected triangles of one frame.
type Batch struct {
	width, height int
	tris          []Triangle
}

// Reset empties the batch, keeping its storage, for a viewport of the
// given size.
func (b *Batch) Reset(width, height int) {
	b.width, b.height = width, height
	b.tris = b.tris[:0]
}

// Add projects a triangle given in model space. Triangles touching the
// area behind the near plane or outside the depth range are dropped.
func (b *Batch) Add(mvp mat.Mat4, pos, color [3]mat.Vec3) {
	var t Triangle
	for i := range pos {
		v, ok := Project(mvp, pos[i], b.width, b.height)
		if !ok || v.Depth < -1 || 1 < v.Depth {
			return
		}
		v.Color = color[i]
		t[i] = v
	}
	b.tris = append(b.tris, t)
}

// Sorted returns the triangles from far to near.
func (b *Batch) Sorted() []Triangle {
	sort.SliceStable(b.tris, func(i, j int) bool {
		return b.tris[i].depth() > b.tris[j].depth()
	})
	return b.tris
}

func (b *Batch) Len() int { return len(b.tris) }
