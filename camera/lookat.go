package camera

import (
	"github.com/seqsense/pcgol/mat"
)

// lookAt builds the view matrix transforming world coordinates into the
// space of an eye at eye looking at center.
// The matrix is column-major; the camera looks toward -Z.
func lookAt(eye, center, up mat.Vec3) mat.Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return mat.Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-dot(s, eye), -dot(u, eye), dot(f, eye), 1,
	}
}

func dot(a, b mat.Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
