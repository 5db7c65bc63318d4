// Package shape implements the parametric shape kernel: a closed set of 3D
// solid variants and a closed set of 2D profile variants, each carrying a
// position, an optional rotation, and validated dimensions, together with
// the textual grammar that serializes them (see parse.go).
//
// Every variant answers the same three questions in closed form: its
// axis-aligned bounding box, whether a point lies inside it, and its
// volume (3D) or area (2D). No variant shares state; a shape is owned by
// exactly one section or component.
package shape

import (
	"strconv"

	"github.com/btdlab/thermkit/pkg/geom"
)

// Kind enumerates the 3D shape variants.
type Kind int

const (
	KindCube Kind = iota
	KindCylinder
	KindHexagonalPrism
	KindObliqueCube
	KindPrism
	KindRectPrism
	KindSquarePrism
	KindOblongXPrism
	KindOblongYPrism
	KindRoundedRectPrism
	KindChamferedRectPrism
	KindNSidedPolygonPrism
	KindTrace
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindHexagonalPrism:
		return "hexagonal_prism"
	case KindObliqueCube:
		return "oblique_cube"
	case KindPrism:
		return "prism"
	case KindRectPrism:
		return "rect_prism"
	case KindSquarePrism:
		return "square_prism"
	case KindOblongXPrism:
		return "oblong_x_prism"
	case KindOblongYPrism:
		return "oblong_y_prism"
	case KindRoundedRectPrism:
		return "rounded_rect_prism"
	case KindChamferedRectPrism:
		return "chamfered_rect_prism"
	case KindNSidedPolygonPrism:
		return "n_sided_polygon_prism"
	case KindTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// Kind2D enumerates the 2D profile variants.
type Kind2D int

const (
	KindCircle Kind2D = iota
	KindRectangle
	KindSquare
	KindOblongX
	KindOblongY
	KindRoundedRectangle
	KindChamferedRectangle
	KindNSidedPolygon
)

func (k Kind2D) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindSquare:
		return "square"
	case KindOblongX:
		return "oblong_x"
	case KindOblongY:
		return "oblong_y"
	case KindRoundedRectangle:
		return "rounded_rectangle"
	case KindChamferedRectangle:
		return "chamfered_rectangle"
	case KindNSidedPolygon:
		return "n_sided_polygon"
	default:
		return "unknown"
	}
}

// Any is the union of Shape and Shape2D, the result type of the grammar
// parser. Implementations live exclusively in this package.
type Any interface {
	String() string
	anyShape() // marker method restricting implementations to this package
}

// Shape is the interface satisfied by every 3D variant.
type Shape interface {
	Any
	Kind() Kind
	Position() geom.Vec3
	SetPosition(geom.Vec3)
	Rotation() float64
	SetRotation(float64)
	Modified() bool
	BoundingBox() geom.Box3
	Contains(p geom.Vec3) bool
	Volume() float64
}

// Shape2D is the interface satisfied by every 2D variant.
type Shape2D interface {
	Any
	Kind2D() Kind2D
	Position() geom.Vec2
	SetPosition(geom.Vec2)
	Rotation() float64
	SetRotation(float64)
	Modified() bool
	BoundingBox() geom.Box2
	Contains(p geom.Vec2) bool
	Area() float64
}

// base3 carries the fields common to every 3D variant.
type base3 struct {
	pos      geom.Vec3
	rot      float64 // degrees about Z
	modified bool
}

func (b *base3) anyShape()                  {}
func (b *base3) Position() geom.Vec3        { return b.pos }
func (b *base3) SetPosition(p geom.Vec3)    { b.pos = p; b.modified = true }
func (b *base3) Rotation() float64          { return b.rot }
func (b *base3) SetRotation(deg float64)    { b.rot = deg; b.modified = true }
func (b *base3) Modified() bool             { return b.modified }

// base2 carries the fields common to every 2D variant.
type base2 struct {
	pos      geom.Vec2
	rot      float64
	modified bool
}

func (b *base2) anyShape()                  {}
func (b *base2) Position() geom.Vec2        { return b.pos }
func (b *base2) SetPosition(p geom.Vec2)    { b.pos = p; b.modified = true }
func (b *base2) Rotation() float64          { return b.rot }
func (b *base2) SetRotation(deg float64)    { b.rot = deg; b.modified = true }
func (b *base2) Modified() bool             { return b.modified }

// fnum formats a dimension for the canonical grammar string.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
