// Package input converts raw keyboard, mouse and gamepad state into camera
// commands. It does not depend on any windowing backend.
package input

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

const (
	DefaultSpeed       = 0.05
	DefaultSensitivity = 0.1
	// DefaultDeadZone is the stick threshold of a 16-bit axis, normalized.
	DefaultDeadZone = 20000.0 / 32767.0
	// DefaultMaxRotation is the rotation of a fully tilted stick in degrees
	// per update.
	DefaultMaxRotation = 10.0
)

type Settings struct {
	Speed       float64
	Sensitivity float64
	DeadZone    float64
	MaxRotation float64
}

func DefaultSettings() Settings {
	return Settings{
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		DeadZone:    DefaultDeadZone,
		MaxRotation: DefaultMaxRotation,
	}
}

// Keys is the pressed state of the movement keys.
type Keys struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// Stick is a normalized analog stick position. Axes are in [-1, 1] with
// positive Y pointing down.
type Stick struct {
	X, Y float64
}

// State is the input collected during one frame.
type State struct {
	Keys Keys

	// MouseDX and MouseDY are the relative mouse motion in pixels.
	MouseDX, MouseDY float64

	Gamepad    bool
	LeftStick  Stick
	RightStick Stick
}

// Command is the camera update derived from a State.
type Command struct {
	// Move is the camera-relative displacement, see camera.Camera.Move.
	Move mat.Vec3
	// Pitch and Yaw are rotation deltas in degrees.
	Pitch, Yaw float64
}

func (s Settings) Command(st State) Command {
	move := s.Keyboard(st.Keys)
	pitch, yaw := s.Mouse(st.MouseDX, st.MouseDY)

	if st.Gamepad {
		move = move.Add(s.MoveStick(st.LeftStick))
		p, y := s.LookStick(st.RightStick)
		pitch += p
		yaw += y
	}
	return Command{Move: move, Pitch: pitch, Yaw: yaw}
}

// Keyboard returns the displacement of the pressed keys. Opposite keys do
// not cancel out: left wins over right, forward over back and up over down.
func (s Settings) Keyboard(k Keys) mat.Vec3 {
	speed := float32(s.Speed)
	var d mat.Vec3
	if k.Left {
		d[0] -= speed
	} else if k.Right {
		d[0] += speed
	}
	if k.Forward {
		d[2] -= speed
	} else if k.Back {
		d[2] += speed
	}
	if k.Up {
		d[1] += speed
	} else if k.Down {
		d[1] -= speed
	}
	return d
}

// Mouse returns pitch and yaw deltas for a relative mouse motion.
// Moving the mouse up looks up.
func (s Settings) Mouse(dx, dy float64) (pitch, yaw float64) {
	return -dy * s.Sensitivity, dx * s.Sensitivity
}

// LookStick returns pitch and yaw deltas of at most MaxRotation degrees.
func (s Settings) LookStick(st Stick) (pitch, yaw float64) {
	x, y := s.deadZone(st.X), s.deadZone(st.Y)
	return -y * s.MaxRotation, x * s.MaxRotation
}

// MoveStick returns the displacement of the left stick, at most Speed
// along each axis.
func (s Settings) MoveStick(st Stick) mat.Vec3 {
	x, y := s.deadZone(st.X), s.deadZone(st.Y)
	return mat.Vec3{float32(x * s.Speed), 0, float32(y * s.Speed)}
}

// deadZone maps |v| in [DeadZone, 1] to [0, 1] and anything below to 0.
func (s Settings) deadZone(v float64) float64 {
	a := math.Abs(v)
	if a < s.DeadZone || s.DeadZone >= 1 {
		return 0
	}
	if a > 1 {
		a = 1
	}
	return math.Copysign((a-s.DeadZone)/(1-s.DeadZone), v)
}
