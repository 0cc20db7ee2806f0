package main

import (
	"errors"
	"testing"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/sierpinski/config"
)

func TestConsole(t *testing.T) {
	testCases := map[string]struct {
		line     string
		expected string
		err      error
	}{
		"Empty": {
			line: "  ",
		},
		"Position": {
			line:     "position",
			expected: "0.000 0.000 -3.000",
		},
		"SetPosition": {
			line:     "position 1 2.5 -4",
			expected: "1.000 2.500 -4.000",
		},
		"Rotation": {
			line:     "rotation",
			expected: "0.000 90.000",
		},
		"LookAt": {
			line:     "look_at 3 0 -3",
			expected: "0.000 0.000",
		},
		"LookAtSelf": {
			line: "look_at 0 0 -3",
			err:  errArgumentValue,
		},
		"Subdivide": {
			line:     "subdivide 2",
			expected: "2.000 25.000",
		},
		"SubdivideClamp": {
			line:     "subdivide 100",
			expected: "7.000 78125.000",
		},
		"FPS": {
			line:     "fps 30",
			expected: "30.000",
		},
		"InvalidFPS": {
			line: "fps 0",
			err:  errArgumentValue,
		},
		"NaNFPS": {
			line: "fps NaN",
			err:  errArgumentValue,
		},
		"InfFPS": {
			line: "fps +Inf",
			err:  errArgumentValue,
		},
		"HugeFPS": {
			line: "fps 1e30",
			err:  errArgumentValue,
		},
		"NaNPosition": {
			line: "position NaN 0 0",
			err:  errArgumentValue,
		},
		"InfLookAt": {
			line: "look_at -Inf 0 0",
			err:  errArgumentValue,
		},
		"Delta": {
			line:     "delta",
			expected: "0.000 0.000",
		},
		"Unknown": {
			line: "teleport",
			err:  errInvalidCommand,
		},
		"ArgumentNumber": {
			line: "position 1 2",
			err:  errArgumentNumber,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := &console{s: newScene(config.Default())}
			res, err := c.Run(tt.line)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected error %v, got %v", tt.err, err)
			}
			if res != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, res)
			}
		})
	}

	t.Run("NonFiniteKeepsState", func(t *testing.T) {
		c := &console{s: newScene(config.Default())}
		c.Run("fps NaN")
		c.Run("position NaN 0 0")
		if fps := c.s.clk.FPS(); fps != 60 {
			t.Errorf("Expected fps 60, got %d", fps)
		}
		if b := c.s.clk.Budget(); b <= 0 {
			t.Errorf("Expected positive budget, got %v", b)
		}
		if p := c.s.cam.Position(); p != (mat.Vec3{0, 0, -3}) {
			t.Errorf("Expected position (0, 0, -3), got %v", p)
		}
	})

	t.Run("ParseError", func(t *testing.T) {
		c := &console{s: newScene(config.Default())}
		if _, err := c.Run("fps abc"); err == nil {
			t.Error("Non-numeric argument must fail")
		}
	})
}
