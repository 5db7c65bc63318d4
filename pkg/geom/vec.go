// Package geom provides the geometric value types underlying the shape
// kernel: 2D/3D vectors and axis-aligned bounding boxes. All types are
// plain values with no fallible operations.
package geom

import "math"

// Vec2 is an immutable 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector normalizes
// to the zero vector rather than dividing by zero.
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Vec3 is an immutable 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector normalizes
// to the zero vector rather than dividing by zero.
func (v Vec3) Normalize() Vec3 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec3{}
	}
	return Vec3{v.X / mag, v.Y / mag, v.Z / mag}
}

// XY projects v onto the XY plane.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}
