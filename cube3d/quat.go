package cube3d

import (
	"fmt"
	"math"
)

// PureEpsilon bounds the scalar residue allowed when a quaternion is turned back
// into a vector.
const PureEpsilon = 1e-6

// Quaternion is a + bi + cj + dk.
type Quaternion struct {
	A, B, C, D float64
}

// Rot returns the unit quaternion rotating by theta radians about axis.
// axis must be non-zero.
func Rot(axis Vec3, theta float64) Quaternion {
	n := axis.Normalize()
	s := math.Sin(theta / 2)
	return Quaternion{
		A: math.Cos(theta / 2),
		B: n.X * s,
		C: n.Y * s,
		D: n.Z * s,
	}
}

// FromVec3 embeds v as a pure quaternion.
func FromVec3(v Vec3) Quaternion { return Quaternion{A: 0, B: v.X, C: v.Y, D: v.Z} }

// Mul returns the Hamilton product q·r. It does not commute.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		A: q.A*r.A - q.B*r.B - q.C*r.C - q.D*r.D,
		B: q.A*r.B + q.B*r.A + q.C*r.D - q.D*r.C,
		C: q.A*r.C - q.B*r.D + q.C*r.A + q.D*r.B,
		D: q.A*r.D + q.B*r.C - q.C*r.B + q.D*r.A,
	}
}

func (q Quaternion) Conj() Quaternion { return Quaternion{q.A, -q.B, -q.C, -q.D} }

func (q Quaternion) Norm2() float64 { return q.A*q.A + q.B*q.B + q.C*q.C + q.D*q.D }

// Inverse divides the conjugate by the squared norm, so it holds for
// non-unit quaternions too.
func (q Quaternion) Inverse() Quaternion {
	n := q.Norm2()
	c := q.Conj()
	return Quaternion{c.A / n, c.B / n, c.C / n, c.D / n}
}

// Vec3 extracts the vector part of a pure quaternion.
//
// A scalar part at or above PureEpsilon (or NaN) means the rotation algebra
// went wrong upstream, and Vec3 panics.
func (q Quaternion) Vec3() Vec3 {
	if !(math.Abs(q.A) < PureEpsilon) {
		panic(fmt.Sprintf("cube3d: quaternion is not pure (a=%g)", q.A))
	}
	return Vec3{X: q.B, Y: q.C, Z: q.D}
}

// Rotate applies the sandwich product q·v·q⁻¹.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	return q.Mul(FromVec3(v)).Mul(q.Inverse()).Vec3()
}
