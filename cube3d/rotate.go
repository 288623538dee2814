package cube3d

import "math"

// RotateEuler rotates p by theta radians about +Y (right-handed).
func RotateEuler(p Vec3, theta float64) Vec3 {
	s, c := math.Sin(theta), math.Cos(theta)
	return Vec3{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: -p.X*s + p.Z*c,
	}
}

// RotateEulerParity is the plane formula of the classic points demo:
// x' = x·cos + z·sin, z' = x·sin − z·cos. It is RotateEuler followed by a
// reflection through z = 0, so it is not a proper rotation and is not the
// identity at theta = 0.
func RotateEulerParity(p Vec3, theta float64) Vec3 {
	s, c := math.Sin(theta), math.Cos(theta)
	return Vec3{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: p.X*s - p.Z*c,
	}
}

// RotateQuaternion rotates p by theta radians about axis using quaternion
// conjugation. axis must be non-zero.
func RotateQuaternion(p, axis Vec3, theta float64) Vec3 {
	return Rot(axis, theta).Rotate(p)
}

// Rotator rotates a vector by an angle. Implementations are alternative
// strategies; they agree only where noted.
type Rotator interface {
	Rotate(p Vec3, theta float64) Vec3
}

// RotatorFunc adapts a plain function to Rotator.
type RotatorFunc func(p Vec3, theta float64) Vec3

func (f RotatorFunc) Rotate(p Vec3, theta float64) Vec3 { return f(p, theta) }

var (
	Euler       Rotator = RotatorFunc(RotateEuler)
	EulerParity Rotator = RotatorFunc(RotateEulerParity)
)

// AxisRotator rotates about a fixed arbitrary axis with quaternions.
type AxisRotator struct {
	Axis Vec3
}

func (r AxisRotator) Rotate(p Vec3, theta float64) Vec3 {
	return RotateQuaternion(p, r.Axis, theta)
}
