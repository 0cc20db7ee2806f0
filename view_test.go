package main

import (
	"math"
	"testing"

	"github.com/seqsense/sierpinski/config"
)

func TestView_Projection(t *testing.T) {
	v := newView(config.Projection{FOV: 90, Near: 0.1, Far: 100})

	testCases := map[string]struct {
		width, height int
		sx, sy        float32
	}{
		"Square": {width: 100, height: 100, sx: 1, sy: 1},
		"Wide":   {width: 200, height: 100, sx: 0.5, sy: 1},
		"Tall":   {width: 100, height: 400, sx: 4, sy: 1},
		"Empty":  {width: 0, height: 0, sx: 1, sy: 1},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			m := v.projection(tt.width, tt.height)
			if math.Abs(float64(m[0]-tt.sx)) > 1e-5 {
				t.Errorf("Expected x scale %f, got %f", tt.sx, m[0])
			}
			if math.Abs(float64(m[5]-tt.sy)) > 1e-5 {
				t.Errorf("Expected y scale %f, got %f", tt.sy, m[5])
			}
			if m[11] != -1 || m[15] != 0 {
				t.Errorf("Expected perspective divide by -z, got %v", m)
			}
		})
	}
}
