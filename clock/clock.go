// Package clock paces a render loop to a target frame rate.
package clock

import (
	"time"
)

// Source provides a monotonic time base and a blocking delay.
type Source interface {
	// Now returns the time elapsed since an arbitrary fixed origin.
	Now() time.Duration
	Sleep(d time.Duration)
}

type monotonic struct {
	origin time.Time
}

func (m monotonic) Now() time.Duration {
	return time.Since(m.origin)
}

func (monotonic) Sleep(d time.Duration) {
	time.Sleep(d)
}

type Option func(*Clock)

// WithSource replaces the time source.
func WithSource(s Source) Option {
	return func(c *Clock) {
		c.src = s
	}
}

// Clock limits the loop calling Tick to fps iterations per second.
// fps must be positive.
type Clock struct {
	src Source
	fps int

	last, current time.Duration
	elapsed       time.Duration
	delta         float32
}

func New(fps int, opts ...Option) *Clock {
	c := &Clock{
		src: monotonic{origin: time.Now()},
		fps: fps,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Tick ends a frame. If the frame finished within its budget, Tick sleeps
// for the rest of the budget.
//
// Delta is set to 1 after sleeping, and to the current timestamp divided by
// the budget otherwise. It is not an elapsed time.
// TODO: report elapsed/budget once nothing depends on the raw ratio.
func (c *Clock) Tick() {
	c.current = c.src.Now()
	c.elapsed = c.current - c.last
	c.last = c.current

	budget := 1e9 / float64(c.fps)
	if float64(c.elapsed) < budget {
		c.src.Sleep(time.Duration(budget - float64(c.elapsed)))
		c.delta = 1
	} else {
		c.delta = float32(float64(c.last) / budget)
	}
}

// Delta returns the pacing signal of the last Tick.
func (c *Clock) Delta() float32 { return c.delta }

// Elapsed returns the time measured between the last two Ticks.
func (c *Clock) Elapsed() time.Duration { return c.elapsed }

func (c *Clock) FPS() int { return c.fps }

// SetFPS changes the target frame rate from the next Tick.
// fps must be positive; callers validate it before setting.
func (c *Clock) SetFPS(fps int) { c.fps = fps }

// Budget returns the time allotted to one frame.
func (c *Clock) Budget() time.Duration {
	return time.Duration(1e9 / float64(c.fps))
}
