// Package translate lowers the resolved section hierarchy onto a geometry
// kernel: each shape variant maps to a kernel primitive, and a section's
// children fold into its solid by their boolean operation.
package translate

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/btdlab/thermkit/pkg/assembly"
	"github.com/btdlab/thermkit/pkg/kernel"
	"github.com/btdlab/thermkit/pkg/shape"
)

// ErrEmptySection is returned for a section with neither a shape of its
// own nor any child geometry.
var ErrEmptySection = errors.New("section has no geometry")

// Translator builds kernel solids from shapes and sections.
type Translator struct {
	k   kernel.Kernel
	log *zap.Logger
}

func New(k kernel.Kernel, log *zap.Logger) *Translator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Translator{k: k, log: log}
}

// Solid lowers one 3D shape to a kernel solid. The primitive is built
// centered at the origin, rotated about Z, then translated to the shape's
// position.
func (t *Translator) Solid(s shape.Shape) (kernel.Solid, error) {
	solid, err := t.primitive(s)
	if err != nil {
		return nil, err
	}
	if rot := s.Rotation(); rot != 0 {
		solid = t.k.Rotate(solid, 0, 0, rot)
	}
	pos := s.Position()
	if pos.X != 0 || pos.Y != 0 || pos.Z != 0 {
		solid = t.k.Translate(solid, pos.X, pos.Y, pos.Z)
	}
	return solid, nil
}

// primitive maps a shape variant onto the kernel's primitive set.
func (t *Translator) primitive(s shape.Shape) (kernel.Solid, error) {
	switch v := s.(type) {
	case *shape.Cube:
		return t.k.Box(v.Length(), v.Width(), v.Height()), nil
	case *shape.RectPrism:
		return t.k.Box(v.Length(), v.Width(), v.Height()), nil
	case *shape.SquarePrism:
		return t.k.Box(v.Side(), v.Side(), v.Height()), nil
	case *shape.Trace:
		// Trace runs along Y: width is the X extent.
		return t.k.Box(v.Width(), v.Length(), v.Height()), nil
	case *shape.ObliqueCube:
		// The skewed faces are approximated by the bounding box, which is
		// also how containment answers for this variant.
		bb := v.BoundingBox()
		return t.k.Box(bb.Width(), bb.Depth(), bb.Height()), nil
	case *shape.Cylinder:
		return t.k.Cylinder(v.Height(), v.Radius()), nil
	case *shape.HexagonalPrism:
		return t.k.ExtrudedPolygon(regularPolygon(v.Radius(), 6), v.Height()), nil
	case *shape.NSidedPolygonPrism:
		return t.k.ExtrudedPolygon(regularPolygon(v.Radius(), v.Sides()), v.Height()), nil
	case *shape.OblongXPrism:
		return t.k.EllipticCylinder(v.Length()/2, v.Width()/2, v.Height()), nil
	case *shape.OblongYPrism:
		return t.k.EllipticCylinder(v.Width()/2, v.Length()/2, v.Height()), nil
	case *shape.RoundedRectPrism:
		return t.k.RoundedBox(v.Width(), v.Depth(), v.Height(), v.Radius()), nil
	case *shape.ChamferedRectPrism:
		return t.k.ExtrudedPolygon(chamferedRect(v.Width(), v.Depth(), v.Chamfer()), v.Height()), nil
	case *shape.Prism:
		return t.prismSolid(v)
	default:
		return nil, fmt.Errorf("shape %s has no kernel mapping", s.Kind())
	}
}

// prismSolid extrudes a generic prism's base profile. The base's own
// position becomes an in-plane offset of the extruded solid.
func (t *Translator) prismSolid(p *shape.Prism) (kernel.Solid, error) {
	var solid kernel.Solid
	switch b := p.Base().(type) {
	case *shape.Circle:
		solid = t.k.Cylinder(p.Height(), b.Radius())
	case *shape.Rectangle:
		solid = t.k.Box(b.Width(), b.Height(), p.Height())
	case *shape.Square:
		solid = t.k.Box(b.Side(), b.Side(), p.Height())
	case *shape.OblongX:
		solid = t.k.EllipticCylinder(b.Length()/2, b.Width()/2, p.Height())
	case *shape.OblongY:
		solid = t.k.EllipticCylinder(b.Width()/2, b.Length()/2, p.Height())
	case *shape.RoundedRectangle:
		solid = t.k.RoundedBox(b.Width(), b.Height(), p.Height(), b.Radius())
	case *shape.ChamferedRectangle:
		solid = t.k.ExtrudedPolygon(chamferedRect(b.Width(), b.Height(), b.Chamfer()), p.Height())
	case *shape.NSidedPolygon:
		solid = t.k.ExtrudedPolygon(regularPolygon(b.Radius(), b.Sides()), p.Height())
	default:
		return nil, fmt.Errorf("prism base %T has no kernel mapping", p.Base())
	}
	if off := p.Base().Position(); off.X != 0 || off.Y != 0 {
		solid = t.k.Translate(solid, off.X, off.Y, 0)
	}
	return solid, nil
}

// Section builds one solid for a section: the section's own shape combined
// with every resolved child by the child's boolean operation. Children
// without geometry are skipped with a warning. A section without a shape of
// its own starts from the union of its union-op children.
func (t *Translator) Section(s *assembly.Section) (kernel.Solid, error) {
	var solid kernel.Solid
	if s.Shape != nil {
		var err error
		solid, err = t.Solid(s.Shape)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", s.Name, err)
		}
	}

	for _, c := range s.Children {
		if c.Shape == nil {
			t.log.Warn("skipping child without geometry",
				zap.String("section", s.Name), zap.String("component", c.Name))
			continue
		}
		child, err := t.Solid(c.Shape)
		if err != nil {
			return nil, fmt.Errorf("section %q, component %q: %w", s.Name, c.Name, err)
		}
		if solid == nil {
			if c.Op != assembly.OpUnion {
				t.log.Warn("first child of shapeless section forced to union",
					zap.String("section", s.Name), zap.String("component", c.Name))
			}
			solid = child
			continue
		}
		switch c.Op {
		case assembly.OpUnion:
			solid = t.k.Union(solid, child)
		case assembly.OpIntersection:
			solid = t.k.Intersection(solid, child)
		default:
			solid = t.k.Difference(solid, child)
		}
	}

	if solid == nil {
		return nil, fmt.Errorf("section %q: %w", s.Name, ErrEmptySection)
	}
	return solid, nil
}

// Sections builds one solid per section, skipping sections without
// geometry.
func (t *Translator) Sections(sections []*assembly.Section) ([]kernel.Solid, error) {
	solids := make([]kernel.Solid, 0, len(sections))
	for _, s := range sections {
		solid, err := t.Section(s)
		if errors.Is(err, ErrEmptySection) {
			t.log.Warn("skipping empty section", zap.String("section", s.Name))
			continue
		}
		if err != nil {
			return nil, err
		}
		solids = append(solids, solid)
	}
	return solids, nil
}

// Mesh lowers a section and tessellates it, tagging the mesh with the
// section name.
func (t *Translator) Mesh(s *assembly.Section) (*kernel.Mesh, error) {
	solid, err := t.Section(s)
	if err != nil {
		return nil, err
	}
	mesh, err := t.k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", s.Name, err)
	}
	mesh.Section = s.Name
	return mesh, nil
}

// regularPolygon builds the counterclockwise profile of a regular polygon
// with the first vertex on the positive X axis.
func regularPolygon(radius float64, sides int) [][2]float64 {
	pts := make([][2]float64, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		pts[i] = [2]float64{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return pts
}

// chamferedRect builds the octagonal profile of a rectangle with its
// corners cut at 45 degrees.
func chamferedRect(width, depth, chamfer float64) [][2]float64 {
	hw, hd := width/2, depth/2
	return [][2]float64{
		{hw - chamfer, -hd},
		{hw, -hd + chamfer},
		{hw, hd - chamfer},
		{hw - chamfer, hd},
		{-hw + chamfer, hd},
		{-hw, hd - chamfer},
		{-hw, -hd + chamfer},
		{-hw + chamfer, -hd},
	}
}
