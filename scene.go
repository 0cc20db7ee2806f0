package main

import (
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/sierpinski/camera"
	"github.com/seqsense/sierpinski/clock"
	"github.com/seqsense/sierpinski/config"
	"github.com/seqsense/sierpinski/fractal"
	"github.com/seqsense/sierpinski/input"
)

// fractalTop is the apex of the whole fractal.
var fractalTop = mat.Vec3{0, 0.5, 0}

// scene is the state of the render loop shared by all backends.
// It must be used from the loop goroutine only.
type scene struct {
	cam  *camera.Camera
	clk  *clock.Clock
	view view
	ctrl input.Settings

	subdivide    int
	maxSubdivide int
	models       []mat.Mat4
}

func newScene(cfg *config.Config, opts ...clock.Option) *scene {
	s := &scene{
		cam: camera.New(
			cfg.Camera.PositionVec(),
			cfg.Camera.TargetVec(),
			cfg.Camera.UpVec(),
		),
		clk: clock.New(cfg.FPS, opts...),
	}
	s.apply(cfg)
	s.setSubdivide(cfg.Fractal.Subdivide)
	return s
}

// apply updates the settings which may change while running.
// The camera and the current subdivision depth are kept.
func (s *scene) apply(cfg *config.Config) {
	s.view = newView(cfg.Projection)
	s.ctrl = cfg.Controls.Settings()
	s.clk.SetFPS(cfg.FPS)
	s.maxSubdivide = cfg.Fractal.MaxSubdivide
	s.setSubdivide(s.subdivide)
}

// update moves the camera by one frame of input.
func (s *scene) update(st input.State) {
	cmd := s.ctrl.Command(st)
	s.cam.Rotate(cmd.Pitch, cmd.Yaw)
	s.cam.Move(cmd.Move)
}

// setSubdivide sets the subdivision depth clamped to [0, maxSubdivide] and
// returns the resulting depth.
func (s *scene) setSubdivide(n int) int {
	if n < 0 {
		n = 0
	} else if n > s.maxSubdivide {
		n = s.maxSubdivide
	}
	if n == s.subdivide && s.models != nil {
		return n
	}
	s.subdivide = n

	pieces := fractal.Subdivide(fractalTop, n, 1)
	s.models = make([]mat.Mat4, len(pieces))
	for i, p := range pieces {
		s.models[i] = p.Model()
	}
	return n
}

// matrices returns the view and projection matrices of the frame.
func (s *scene) matrices(width, height int) (view, projection mat.Mat4) {
	return s.cam.View(), s.view.projection(width, height)
}

// tick ends the frame.
func (s *scene) tick() {
	s.clk.Tick()
}
