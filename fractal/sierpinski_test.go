package fractal

import (
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestSubdivide(t *testing.T) {
	testCases := map[string]struct {
		depth    int
		n        int
		minScale float32
	}{
		"Flat":     {depth: 0, n: 1, minScale: 1},
		"Negative": {depth: -2, n: 1, minScale: 1},
		"Depth1":   {depth: 1, n: 5, minScale: 0.5},
		"Depth3":   {depth: 3, n: 125, minScale: 0.125},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			top := mat.Vec3{0, 0.5, 0}
			pieces := Subdivide(top, tt.depth, 1)
			if len(pieces) != tt.n {
				t.Fatalf("Expected %d pieces, got %d", tt.n, len(pieces))
			}
			if len(pieces) != Count(tt.depth) {
				t.Errorf("Count must match, expected: %d, got: %d", len(pieces), Count(tt.depth))
			}
			for _, p := range pieces {
				if p.Scale != tt.minScale {
					t.Errorf("Expected scale %f, got %f", tt.minScale, p.Scale)
				}
				// every piece must be inside the bounding pyramid
				if p.Top[1] > top[1] || p.Top[1]-p.Scale < top[1]-1 {
					t.Errorf("Piece %v out of bounds", p)
				}
			}
		})
	}
}

func TestSubdivide_Depth1(t *testing.T) {
	pieces := Subdivide(mat.Vec3{0, 0.5, 0}, 1, 1)
	expected := []mat.Vec3{
		{0, 0.5, 0},
		{0.25, 0, 0.25},
		{0.25, 0, -0.25},
		{-0.25, 0, -0.25},
		{-0.25, 0, 0.25},
	}
	for i, p := range pieces {
		if !p.Top.Equal(expected[i]) {
			t.Errorf("Piece %d expected at %v, got %v", i, expected[i], p.Top)
		}
	}
}

func TestPiece_Model(t *testing.T) {
	p := Piece{Top: mat.Vec3{1, 2, 3}, Scale: 0.5}
	m := p.Model()

	testCases := map[string]struct {
		in, expected mat.Vec3
	}{
		"Apex":      {in: mat.Vec3{0, 0.5, 0}, expected: mat.Vec3{1, 2, 3}},
		"BaseFront": {in: mat.Vec3{0.5, -0.5, 0.5}, expected: mat.Vec3{1.25, 1.5, 3.25}},
		"Center":    {in: mat.Vec3{0, 0, 0}, expected: mat.Vec3{1, 1.75, 3}},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			out := m.Transform(tt.in)
			if d := out.Sub(tt.expected).Norm(); d > 1e-6 {
				t.Errorf("Expected %v, got %v", tt.expected, out)
			}
		})
	}
}

func TestPyramid(t *testing.T) {
	if VertexCount != 18 {
		t.Fatalf("Expected 18 vertices, got %d", VertexCount)
	}
	for i := 0; i < VertexCount; i++ {
		pos, color := Vertex(i)
		for j := 0; j < 3; j++ {
			if pos[j] < -0.5 || 0.5 < pos[j] {
				t.Errorf("Vertex %d out of unit box: %v", i, pos)
			}
			if color[j] < 0 || 1 < color[j] {
				t.Errorf("Vertex %d has invalid color: %v", i, color)
			}
		}
	}
}
