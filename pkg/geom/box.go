package geom

import "math"

// Box2 is an axis-aligned 2D bounding box. Min and Max hold the corner
// with the smaller and larger coordinate on each axis respectively.
type Box2 struct {
	Min, Max Vec2
}

// NewBox2 builds a Box2 from two opposite corners in any order.
func NewBox2(a, b Vec2) Box2 {
	return Box2{
		Min: Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

// Width returns the X extent.
func (b Box2) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the Y extent.
func (b Box2) Height() float64 { return b.Max.Y - b.Min.Y }

// Area returns width * height.
func (b Box2) Area() float64 { return b.Width() * b.Height() }

// Contains reports whether p lies inside or on the boundary of b.
func (b Box2) Contains(p Vec2) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// Union returns the smallest box enclosing both b and o.
func (b Box2) Union(o Box2) Box2 {
	return Box2{
		Min: Vec2{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Vec2{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Translate returns b shifted by d.
func (b Box2) Translate(d Vec2) Box2 {
	return Box2{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Box3 is an axis-aligned 3D bounding box.
type Box3 struct {
	Min, Max Vec3
}

// NewBox3 builds a Box3 from two opposite corners in any order.
func NewBox3(a, b Vec3) Box3 {
	return Box3{
		Min: Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// Width returns the X extent.
func (b Box3) Width() float64 { return b.Max.X - b.Min.X }

// Depth returns the Y extent.
func (b Box3) Depth() float64 { return b.Max.Y - b.Min.Y }

// Height returns the Z extent.
func (b Box3) Height() float64 { return b.Max.Z - b.Min.Z }

// Volume returns width * depth * height.
func (b Box3) Volume() float64 { return b.Width() * b.Depth() * b.Height() }

// Contains reports whether p lies inside or on the boundary of b.
func (b Box3) Contains(p Vec3) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// Union returns the smallest box enclosing both b and o.
func (b Box3) Union(o Box3) Box3 {
	return Box3{
		Min: Vec3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Translate returns b shifted by d.
func (b Box3) Translate(d Vec3) Box3 {
	return Box3{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}
