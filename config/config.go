// Package config loads the demo settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/seqsense/pcgol/mat"
	"gopkg.in/yaml.v3"

	"github.com/seqsense/sierpinski/input"
)

var (
	ErrInvalidFPS        = errors.New("fps must be positive")
	ErrInvalidWindow     = errors.New("window size must be positive")
	ErrInvalidProjection = errors.New("invalid projection")
	ErrInvalidCamera     = errors.New("invalid camera")
	ErrInvalidControls   = errors.New("invalid controls")
	ErrInvalidFractal    = errors.New("invalid fractal")
)

type Config struct {
	Window     Window     `yaml:"window"`
	FPS        int        `yaml:"fps"`
	Projection Projection `yaml:"projection"`
	Camera     Camera     `yaml:"camera"`
	Controls   Controls   `yaml:"controls"`
	Fractal    Fractal    `yaml:"fractal"`
	Log        Log        `yaml:"log"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Projection is a perspective projection with a vertical field of view in
// degrees.
type Projection struct {
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

type Camera struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Up       [3]float32 `yaml:"up"`
}

type Controls struct {
	Speed       float64 `yaml:"speed"`
	Sensitivity float64 `yaml:"sensitivity"`
	DeadZone    float64 `yaml:"dead_zone"`
	MaxRotation float64 `yaml:"max_rotation"`
}

type Fractal struct {
	Subdivide    int `yaml:"subdivide"`
	MaxSubdivide int `yaml:"max_subdivide"`
}

type Log struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:  800,
			Height: 800,
			Title:  "Sierpinski's Triangle",
		},
		FPS: 60,
		Projection: Projection{
			FOV:  45,
			Near: 0.1,
			Far:  100,
		},
		Camera: Camera{
			Position: [3]float32{0, 0, -3},
			Target:   [3]float32{0, 0, 0},
			Up:       [3]float32{0, 1, 0},
		},
		Controls: Controls{
			Speed:       input.DefaultSpeed,
			Sensitivity: input.DefaultSensitivity,
			DeadZone:    input.DefaultDeadZone,
			MaxRotation: input.DefaultMaxRotation,
		},
		Fractal: Fractal{
			MaxSubdivide: 7,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the file at path over the default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML over the default values and validates the result.
func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	p := c.Projection
	switch {
	case p.FOV <= 0 || p.FOV >= 180:
		return fmt.Errorf("%w: fov %f", ErrInvalidProjection, p.FOV)
	case p.Near <= 0 || p.Far <= p.Near:
		return fmt.Errorf("%w: near %f, far %f", ErrInvalidProjection, p.Near, p.Far)
	}
	front := c.Camera.TargetVec().Sub(c.Camera.PositionVec())
	up := c.Camera.UpVec()
	switch {
	case front.Norm() == 0:
		return fmt.Errorf("%w: position and target coincide", ErrInvalidCamera)
	case up.Norm() == 0:
		return fmt.Errorf("%w: zero up vector", ErrInvalidCamera)
	case front.Cross(up).Norm() == 0:
		return fmt.Errorf("%w: up is parallel to the viewing direction", ErrInvalidCamera)
	}
	if c.Controls.DeadZone < 0 || c.Controls.DeadZone >= 1 {
		return fmt.Errorf("%w: dead_zone %f", ErrInvalidControls, c.Controls.DeadZone)
	}
	if c.Fractal.MaxSubdivide < 0 || c.Fractal.Subdivide < 0 || c.Fractal.Subdivide > c.Fractal.MaxSubdivide {
		return fmt.Errorf("%w: subdivide %d, max_subdivide %d",
			ErrInvalidFractal, c.Fractal.Subdivide, c.Fractal.MaxSubdivide,
		)
	}
	return nil
}

func (c Camera) PositionVec() mat.Vec3 { return mat.Vec3(c.Position) }

func (c Camera) TargetVec() mat.Vec3 { return mat.Vec3(c.Target) }

func (c Camera) UpVec() mat.Vec3 { return mat.Vec3(c.Up) }

// Settings returns the input settings of the controls.
func (c Controls) Settings() input.Settings {
	return input.Settings{
		Speed:       c.Speed,
		Sensitivity: c.Sensitivity,
		DeadZone:    c.DeadZone,
		MaxRotation: c.MaxRotation,
	}
}
