// Package kernel defines the abstract geometry kernel interface the
// package model is lowered onto. Implementations provide solid modeling
// and boolean operations behind this interface, so the translation layer
// does not depend on any particular CAD backend.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. All primitives are
// centered on the origin; placement happens through Translate, matching
// the center-positioned shapes of the package model.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid
	// RoundedBox is a box with rounded vertical edges: a rounded
	// rectangle in the XY plane extruded along Z.
	RoundedBox(x, y, height, round float64) Solid
	// EllipticCylinder has an elliptic cross-section with the given
	// semi-axes, extruded along Z. Oblong pads and slots lower to this.
	EllipticCylinder(rx, ry, height float64) Solid
	// ExtrudedPolygon extrudes a closed XY profile along Z. The profile
	// is wound counterclockwise and not repeated at the end.
	ExtrudedPolygon(profile [][2]float64, height float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
