package cube3d

import "math"

// Vec3 is a point or direction in camera-relative space.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a normalized device or pixel coordinate.
type Vec2 struct {
	X, Y float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }
func V2(x, y float64) Vec2    { return Vec2{X: x, Y: y} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64         { return math.Sqrt(v.Dot(v)) }

// Translate moves v along z, the camera's viewing direction.
func (v Vec3) Translate(dz float64) Vec3 { return Vec3{v.X, v.Y, v.Z + dz} }

// Normalize returns v scaled to unit length. The zero vector has no direction;
// the result is NaN-valued and callers must not pass it.
func (v Vec3) Normalize() Vec3 { return v.Scale(1 / v.Len()) }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// MulComp multiplies component-wise.
func (v Vec2) MulComp(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }
