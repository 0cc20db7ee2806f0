package clock

import (
	"testing"
	"time"
)

type fakeSource struct {
	now   time.Duration
	slept []time.Duration
}

func (s *fakeSource) Now() time.Duration { return s.now }

func (s *fakeSource) Sleep(d time.Duration) {
	s.slept = append(s.slept, d)
	s.now += d
}

func TestTick(t *testing.T) {
	testCases := map[string]struct {
		fps      int
		ticks    []time.Duration
		slept    []time.Duration
		expected float32
	}{
		"FirstFrame": {
			fps:      60,
			ticks:    []time.Duration{5 * time.Millisecond},
			slept:    []time.Duration{11666666},
			expected: 1,
		},
		"UnderBudget": {
			fps:      60,
			ticks:    []time.Duration{20 * time.Millisecond, 25 * time.Millisecond},
			slept:    []time.Duration{11666666},
			expected: 1,
		},
		"OverBudget": {
			fps:   60,
			ticks: []time.Duration{20 * time.Millisecond, 50 * time.Millisecond},
			// raw timestamp over budget, not elapsed over budget
			expected: 3,
		},
		"ExactBudget": {
			fps:      50,
			ticks:    []time.Duration{20 * time.Millisecond, 40 * time.Millisecond},
			expected: 2,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			src := &fakeSource{}
			c := New(tt.fps, WithSource(src))
			for _, now := range tt.ticks {
				src.now = now
				c.Tick()
			}

			if len(src.slept) != len(tt.slept) {
				t.Fatalf("Expected sleeps: %v, got: %v", tt.slept, src.slept)
			}
			for i := range tt.slept {
				d := src.slept[i] - tt.slept[i]
				if d < -1 || 1 < d {
					t.Errorf("Sleep %d expected to be %v, got %v", i, tt.slept[i], src.slept[i])
				}
			}
			if d := c.Delta() - tt.expected; d < -1e-6 || 1e-6 < d {
				t.Errorf("Expected delta: %f, got: %f", tt.expected, c.Delta())
			}
		})
	}
}

func TestTick_SleepCountsTowardNextFrame(t *testing.T) {
	src := &fakeSource{}
	c := New(60, WithSource(src))

	c.Tick()
	if len(src.slept) != 1 {
		t.Fatalf("First tick must sleep, got %v", src.slept)
	}

	// The previous timestamp was taken before sleeping.
	src.now += 5 * time.Millisecond
	c.Tick()
	if len(src.slept) != 1 {
		t.Errorf("Second tick must not sleep, got %v", src.slept)
	}
	if e := c.Elapsed(); e <= c.Budget() {
		t.Errorf("Elapsed must include the sleep, got %v", e)
	}
}

func TestSetFPS(t *testing.T) {
	src := &fakeSource{now: time.Second}
	c := New(60, WithSource(src))
	c.Tick()

	c.SetFPS(10)
	if c.FPS() != 10 {
		t.Fatalf("Expected fps 10, got %d", c.FPS())
	}
	if c.Budget() != 100*time.Millisecond {
		t.Errorf("Expected budget 100ms, got %v", c.Budget())
	}
	src.now += 40 * time.Millisecond
	c.Tick()
	if len(src.slept) != 1 || src.slept[0] != 60*time.Millisecond {
		t.Errorf("Expected to sleep 60ms, got %v", src.slept)
	}
}

func TestTick_RealTime(t *testing.T) {
	if testing.Short() {
		t.Skip("depends on the scheduler")
	}
	c := New(60)

	time.Sleep(20 * time.Millisecond)
	c.Tick()
	mark := time.Now()

	time.Sleep(5 * time.Millisecond)
	start := time.Now()
	c.Tick()
	blocked := time.Since(start)

	expected := time.Second/60 - start.Sub(mark)
	if blocked < expected-time.Millisecond || expected+20*time.Millisecond < blocked {
		t.Errorf("Expected to block for about %v, blocked %v", expected, blocked)
	}
	if c.Delta() != 1 {
		t.Errorf("Expected delta 1 after sleeping, got %f", c.Delta())
	}
}
