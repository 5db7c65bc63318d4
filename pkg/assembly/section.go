package assembly

import (
	"github.com/btdlab/thermkit/pkg/geom"
	"github.com/btdlab/thermkit/pkg/material"
	"github.com/btdlab/thermkit/pkg/shape"
)

// boxDimensioned is satisfied by shape variants whose extent is a plain
// length/width/height triple, which is what container back-fill writes to.
type boxDimensioned interface {
	Length() float64
	Width() float64
	Height() float64
	SetDimensions(length, width, height float64) error
}

var (
	_ boxDimensioned = (*shape.Cube)(nil)
	_ boxDimensioned = (*shape.RectPrism)(nil)
)

// Section is one region of the package stack. Its shape may be a container
// placeholder with zero extents, in which case the extents are back-filled
// from the union of the children's bounding boxes.
type Section struct {
	Name      string
	Layer     string
	Type      ComponentType
	Thickness float64

	Offset   geom.Vec3
	Rotation float64

	Shape    shape.Shape
	Material material.Properties

	Children []*Component

	HasPower   bool
	TotalPower float64
}

// AddChild appends a component keeping its own boolean operation.
func (s *Section) AddChild(c *Component) {
	s.Children = append(s.Children, c)
}

// AddChildWithOp appends a component overriding its boolean operation.
func (s *Section) AddChildWithOp(c *Component, op BoolOp) {
	c.Op = op
	s.Children = append(s.Children, c)
}

// OffsetZ returns the section's Z offset in the stack.
func (s *Section) OffsetZ() float64 { return s.Offset.Z }

// SetPower records the section's dissipated power budget.
func (s *Section) SetPower(total float64) {
	s.TotalPower = total
	s.HasPower = total != 0
}

// ChildBounds returns the union of the children's shape bounding boxes.
// Children without geometry are skipped; ok is false when none contribute.
func (s *Section) ChildBounds() (geom.Box3, bool) {
	var union geom.Box3
	found := false
	for _, c := range s.Children {
		bb, ok := c.BoundingBox()
		if !ok {
			continue
		}
		if !found {
			union = bb
			found = true
			continue
		}
		union = union.Union(bb)
	}
	return union, found
}

// EffectiveDimensions returns the section's extents: the shape's own
// dimensions when it is a fully sized box, otherwise the extents of the
// children's bounding box union.
func (s *Section) EffectiveDimensions() (length, width, height float64) {
	if box, ok := s.Shape.(boxDimensioned); ok {
		if box.Length() > 0 && box.Width() > 0 && box.Height() > 0 {
			return box.Length(), box.Width(), box.Height()
		}
	}
	bb, ok := s.ChildBounds()
	if !ok {
		return 0, 0, 0
	}
	return bb.Width(), bb.Depth(), bb.Height()
}

// fillContainerFromChildren sizes a placeholder shape from the children.
// It applies only when the shape is box-dimensioned with at least one zero
// extent and the children yield positive extents on every axis.
func (s *Section) fillContainerFromChildren() bool {
	box, ok := s.Shape.(boxDimensioned)
	if !ok {
		return false
	}
	if box.Length() != 0 && box.Width() != 0 && box.Height() != 0 {
		return false
	}
	length, width, height := s.EffectiveDimensions()
	if length <= 0 || width <= 0 || height <= 0 {
		return false
	}
	return box.SetDimensions(length, width, height) == nil
}

// BoundingBox returns the section shape's bounds when it has geometry,
// falling back to the children's union.
func (s *Section) BoundingBox() (geom.Box3, bool) {
	if s.Shape != nil {
		return s.Shape.BoundingBox(), true
	}
	return s.ChildBounds()
}

// UnresolvedChildren lists the components whose template reference did not
// resolve.
func (s *Section) UnresolvedChildren() []*Component {
	var out []*Component
	for _, c := range s.Children {
		if c.State == ResolutionUnresolved {
			out = append(out, c)
		}
	}
	return out
}

// SingleMaterial returns the underlying material when the section carries a
// plain (non-composite) material.
func (s *Section) SingleMaterial() (*material.Material, bool) {
	m, ok := s.Material.(*material.Material)
	return m, ok
}
