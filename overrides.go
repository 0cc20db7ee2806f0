package main

import (
	"github.com/seqsense/sierpinski/config"
)

// overrides are command-line settings which take precedence over the
// config file, also after it is reloaded.
type overrides struct {
	fps       int // unset if not positive
	subdivide int // unset if negative
}

func (o overrides) apply(cfg *config.Config) error {
	if o.fps > 0 {
		cfg.FPS = o.fps
	}
	if o.subdivide >= 0 {
		cfg.Fractal.Subdivide = o.subdivide
	}
	return cfg.Validate()
}
