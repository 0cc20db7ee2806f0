// Package camera implements a free-flying first-person camera.
//
// Orientation is kept as pitch and yaw angles in radians. The front vector
// is always recomputed from them and never adjusted incrementally. The up
// vector is normalized once at construction and stays fixed, since the
// camera never rolls.
package camera

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// MaxPitch is the pitch limit in radians (89 degrees).
// Looking straight up or down would flip the view.
const MaxPitch = 89 * math.Pi / 180

type Camera struct {
	pos   mat.Vec3
	front mat.Vec3
	up    mat.Vec3

	pitch, yaw float64
}

// New creates a camera at position looking at target.
//
// position and target must not coincide and up must not be parallel to
// the viewing direction. These are not checked: a zero-length front
// vector propagates NaN into every later result.
func New(position, target, up mat.Vec3) *Camera {
	c := &Camera{
		pos: position,
		up:  up.Normalized(),
	}
	c.LookAt(target)
	return c
}

// LookAt points the camera at target and re-derives pitch and yaw from the
// resulting front vector.
func (c *Camera) LookAt(target mat.Vec3) {
	c.front = target.Sub(c.pos).Normalized()

	c.pitch = math.Asin(clamp(float64(c.front[1]), -1, 1))
	cp := math.Cos(c.pitch)
	c.yaw = math.Atan2(float64(c.front[2])/cp, float64(c.front[0])/cp)
}

// Move displaces the camera relative to its current orientation.
// direction[0] strafes right, direction[1] moves along up and
// direction[2] moves backward (negative is forward).
func (c *Camera) Move(direction mat.Vec3) {
	c.pos = c.pos.Sub(c.front.Mul(direction[2]))
	c.pos = c.pos.Add(c.up.Mul(direction[1]))
	c.pos = c.pos.Add(c.Right().Mul(direction[0]))
}

// Rotate adds the given pitch and yaw, in degrees, to the orientation.
func (c *Camera) Rotate(pitch, yaw float64) {
	c.pitch = clamp(c.pitch+pitch*math.Pi/180, -MaxPitch, MaxPitch)
	c.yaw = math.Remainder(c.yaw+yaw*math.Pi/180, 2*math.Pi)
	c.updateFront()
}

func (c *Camera) updateFront() {
	cp := math.Cos(c.pitch)
	c.front = mat.Vec3{
		float32(math.Cos(c.yaw) * cp),
		float32(math.Sin(c.pitch)),
		float32(math.Sin(c.yaw) * cp),
	}
}

// View returns the right-handed look-at matrix of the camera.
func (c *Camera) View() mat.Mat4 {
	return lookAt(c.pos, c.pos.Add(c.front), c.up)
}

func (c *Camera) Position() mat.Vec3 { return c.pos }

func (c *Camera) SetPosition(p mat.Vec3) { c.pos = p }

func (c *Camera) Front() mat.Vec3 { return c.front }

func (c *Camera) Up() mat.Vec3 { return c.up }

// Right returns the unit strafe direction.
func (c *Camera) Right() mat.Vec3 {
	return c.front.Cross(c.up).Normalized()
}

// Pitch returns the pitch in radians.
func (c *Camera) Pitch() float64 { return c.pitch }

// Yaw returns the yaw in radians, wrapped to [-π, π].
func (c *Camera) Yaw() float64 { return c.yaw }

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}
