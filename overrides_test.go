package main

import (
	"errors"
	"testing"

	"github.com/seqsense/sierpinski/config"
)

func TestOverrides(t *testing.T) {
	testCases := map[string]struct {
		o         overrides
		yaml      string
		fps       int
		subdivide int
		err       error
	}{
		"Unset": {
			o:         overrides{subdivide: -1},
			yaml:      "fps: 30\nfractal: {subdivide: 1}",
			fps:       30,
			subdivide: 1,
		},
		"FPS": {
			o:         overrides{fps: 120, subdivide: -1},
			yaml:      "fps: 30",
			fps:       120,
			subdivide: 0,
		},
		"Subdivide": {
			o:         overrides{subdivide: 3},
			yaml:      "fps: 30\nfractal: {subdivide: 1}",
			fps:       30,
			subdivide: 3,
		},
		"SubdivideAboveReloadedMax": {
			o:    overrides{subdivide: 3},
			yaml: "fractal: {max_subdivide: 2}",
			err:  config.ErrInvalidFractal,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatal(err)
			}
			err = tt.o.apply(cfg)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected error %v, got %v", tt.err, err)
			}
			if tt.err != nil {
				return
			}
			if cfg.FPS != tt.fps {
				t.Errorf("Expected fps %d, got %d", tt.fps, cfg.FPS)
			}
			if cfg.Fractal.Subdivide != tt.subdivide {
				t.Errorf("Expected subdivide %d, got %d", tt.subdivide, cfg.Fractal.Subdivide)
			}
		})
	}

	t.Run("Reload", func(t *testing.T) {
		o := overrides{fps: 120, subdivide: -1}
		s := newScene(config.Default())

		cfg, err := config.Parse([]byte("fps: 30"))
		if err != nil {
			t.Fatal(err)
		}
		if err := o.apply(cfg); err != nil {
			t.Fatal(err)
		}
		s.apply(cfg)
		if fps := s.clk.FPS(); fps != 120 {
			t.Errorf("Command-line fps must survive a reload, expected 120, got %d", fps)
		}
	})
}
