package shape

import (
	"fmt"
	"math"

	"github.com/btdlab/thermkit/pkg/geom"
)

// Cube is an axis-aligned box: length along X, width along Y, height along
// Z, centered on its position. A Cube with one or more zero dimensions acts
// as a container placeholder whose extents are filled in from its children
// (see the assembly package); such cubes are only produced by the grammar
// parser, never by NewCube.
type Cube struct {
	base3
	length float64
	width  float64
	height float64
}

func NewCube(pos geom.Vec3, length, width, height float64) (*Cube, error) {
	if err := requirePositive("cube",
		dimPair{"length", length}, dimPair{"width", width}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	return &Cube{base3: base3{pos: pos}, length: length, width: width, height: height}, nil
}

func (c *Cube) Kind() Kind      { return KindCube }
func (c *Cube) Length() float64 { return c.length }
func (c *Cube) Width() float64  { return c.width }
func (c *Cube) Height() float64 { return c.height }

func (c *Cube) SetLength(v float64) error {
	if v <= 0 {
		return dimErr("cube", "length", v)
	}
	c.length = v
	c.modified = true
	return nil
}

func (c *Cube) SetWidth(v float64) error {
	if v <= 0 {
		return dimErr("cube", "width", v)
	}
	c.width = v
	c.modified = true
	return nil
}

func (c *Cube) SetHeight(v float64) error {
	if v <= 0 {
		return dimErr("cube", "height", v)
	}
	c.height = v
	c.modified = true
	return nil
}

// SetDimensions replaces all three extents at once, used when a container
// placeholder is sized from the union of its children.
func (c *Cube) SetDimensions(length, width, height float64) error {
	if err := requirePositive("cube",
		dimPair{"length", length}, dimPair{"width", width}, dimPair{"height", height}); err != nil {
		return err
	}
	c.length, c.width, c.height = length, width, height
	c.modified = true
	return nil
}

func (c *Cube) BoundingBox() geom.Box3 {
	hl, hw, hh := c.length/2, c.width/2, c.height/2
	return geom.Box3{
		Min: geom.Vec3{X: c.pos.X - hl, Y: c.pos.Y - hw, Z: c.pos.Z - hh},
		Max: geom.Vec3{X: c.pos.X + hl, Y: c.pos.Y + hw, Z: c.pos.Z + hh},
	}
}

func (c *Cube) Contains(p geom.Vec3) bool {
	return math.Abs(p.X-c.pos.X) <= c.length/2 &&
		math.Abs(p.Y-c.pos.Y) <= c.width/2 &&
		math.Abs(p.Z-c.pos.Z) <= c.height/2
}

func (c *Cube) Volume() float64 { return c.length * c.width * c.height }

func (c *Cube) String() string {
	return fmt.Sprintf("cube([%s,%s,%s], %s, %s, %s)",
		fnum(c.pos.X), fnum(c.pos.Y), fnum(c.pos.Z),
		fnum(c.length), fnum(c.width), fnum(c.height))
}

// Cylinder is a circular cylinder with its axis along Z.
type Cylinder struct {
	base3
	radius float64
	height float64
}

func NewCylinder(pos geom.Vec3, radius, height float64) (*Cylinder, error) {
	if err := requirePositive("cylinder", dimPair{"radius", radius}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	return &Cylinder{base3: base3{pos: pos}, radius: radius, height: height}, nil
}

func (c *Cylinder) Kind() Kind      { return KindCylinder }
func (c *Cylinder) Radius() float64 { return c.radius }
func (c *Cylinder) Height() float64 { return c.height }

func (c *Cylinder) SetRadius(v float64) error {
	if v <= 0 {
		return dimErr("cylinder", "radius", v)
	}
	c.radius = v
	c.modified = true
	return nil
}

func (c *Cylinder) SetHeight(v float64) error {
	if v <= 0 {
		return dimErr("cylinder", "height", v)
	}
	c.height = v
	c.modified = true
	return nil
}

func (c *Cylinder) BoundingBox() geom.Box3 {
	hh := c.height / 2
	return geom.Box3{
		Min: geom.Vec3{X: c.pos.X - c.radius, Y: c.pos.Y - c.radius, Z: c.pos.Z - hh},
		Max: geom.Vec3{X: c.pos.X + c.radius, Y: c.pos.Y + c.radius, Z: c.pos.Z + hh},
	}
}

func (c *Cylinder) Contains(p geom.Vec3) bool {
	if math.Abs(p.Z-c.pos.Z) > c.height/2 {
		return false
	}
	dx := p.X - c.pos.X
	dy := p.Y - c.pos.Y
	return dx*dx+dy*dy <= c.radius*c.radius
}

func (c *Cylinder) Volume() float64 {
	return math.Pi * c.radius * c.radius * c.height
}

func (c *Cylinder) String() string {
	return fmt.Sprintf("cylinder([%s,%s,%s], %s, %s)",
		fnum(c.pos.X), fnum(c.pos.Y), fnum(c.pos.Z), fnum(c.radius), fnum(c.height))
}

// HexagonalPrism is a hexagonal prism described by the diameter of its
// circumscribed circle, axis along Z.
type HexagonalPrism struct {
	base3
	diameter float64
	height   float64
}

func NewHexagonalPrism(pos geom.Vec3, diameter, height float64) (*HexagonalPrism, error) {
	if err := requirePositive("hexagonal_prism", dimPair{"diameter", diameter}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	return &HexagonalPrism{base3: base3{pos: pos}, diameter: diameter, height: height}, nil
}

func (h *HexagonalPrism) Kind() Kind        { return KindHexagonalPrism }
func (h *HexagonalPrism) Diameter() float64 { return h.diameter }
func (h *HexagonalPrism) Height() float64   { return h.height }
func (h *HexagonalPrism) Radius() float64   { return h.diameter / 2 }

func (h *HexagonalPrism) SetDiameter(v float64) error {
	if v <= 0 {
		return dimErr("hexagonal_prism", "diameter", v)
	}
	h.diameter = v
	h.modified = true
	return nil
}

func (h *HexagonalPrism) SetHeight(v float64) error {
	if v <= 0 {
		return dimErr("hexagonal_prism", "height", v)
	}
	h.height = v
	h.modified = true
	return nil
}

func (h *HexagonalPrism) BoundingBox() geom.Box3 {
	r := h.Radius()
	hh := h.height / 2
	return geom.Box3{
		Min: geom.Vec3{X: h.pos.X - r, Y: h.pos.Y - r, Z: h.pos.Z - hh},
		Max: geom.Vec3{X: h.pos.X + r, Y: h.pos.Y + r, Z: h.pos.Z + hh},
	}
}

func (h *HexagonalPrism) Contains(p geom.Vec3) bool {
	if math.Abs(p.Z-h.pos.Z) > h.height/2 {
		return false
	}
	r := h.Radius()
	dx := p.X - h.pos.X
	dy := p.Y - h.pos.Y
	if math.Abs(dx) > r || math.Abs(dy) > r {
		return false
	}
	if math.Abs(dx) <= r/2 {
		return math.Abs(dy) <= r
	}
	// Sloped edge between the side faces and the vertices on the X axis.
	slope := math.Tan(math.Pi / 6)
	return math.Abs(dy) <= slope*(r-math.Abs(dx))
}

func (h *HexagonalPrism) Volume() float64 {
	r := h.Radius()
	return 3 * math.Sqrt(3) * r * r / 2 * h.height
}

func (h *HexagonalPrism) String() string {
	return fmt.Sprintf("hexagonal_prism([%s,%s,%s], %s, %s)",
		fnum(h.pos.X), fnum(h.pos.Y), fnum(h.pos.Z), fnum(h.diameter), fnum(h.height))
}

// ObliqueCube is a box sheared by skew angles, in degrees, about the X and
// Y axes. Point containment is approximated by the sheared bounding box.
type ObliqueCube struct {
	base3
	length float64
	width  float64
	height float64
	skewX  float64
	skewY  float64
}

func NewObliqueCube(pos geom.Vec3, length, width, height, skewX, skewY float64) (*ObliqueCube, error) {
	if err := requirePositive("oblique_cube",
		dimPair{"length", length}, dimPair{"width", width}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	return &ObliqueCube{
		base3:  base3{pos: pos},
		length: length, width: width, height: height,
		skewX: skewX, skewY: skewY,
	}, nil
}

func (o *ObliqueCube) Kind() Kind      { return KindObliqueCube }
func (o *ObliqueCube) Length() float64 { return o.length }
func (o *ObliqueCube) Width() float64  { return o.width }
func (o *ObliqueCube) Height() float64 { return o.height }
func (o *ObliqueCube) SkewX() float64  { return o.skewX }
func (o *ObliqueCube) SkewY() float64  { return o.skewY }

func (o *ObliqueCube) SetSkewX(deg float64) {
	o.skewX = deg
	o.modified = true
}

func (o *ObliqueCube) SetSkewY(deg float64) {
	o.skewY = deg
	o.modified = true
}

func (o *ObliqueCube) BoundingBox() geom.Box3 {
	hl, hw, hh := o.length/2, o.width/2, o.height/2
	offX := hw * math.Abs(math.Sin(o.skewY*math.Pi/180))
	offY := hl * math.Abs(math.Sin(o.skewX*math.Pi/180))
	return geom.Box3{
		Min: geom.Vec3{X: o.pos.X - hl - offX, Y: o.pos.Y - hw - offY, Z: o.pos.Z - hh},
		Max: geom.Vec3{X: o.pos.X + hl + offX, Y: o.pos.Y + hw + offY, Z: o.pos.Z + hh},
	}
}

func (o *ObliqueCube) Contains(p geom.Vec3) bool {
	return o.BoundingBox().Contains(p)
}

func (o *ObliqueCube) Volume() float64 { return o.length * o.width * o.height }

func (o *ObliqueCube) String() string {
	return fmt.Sprintf("oblique_cube([%s,%s,%s], %s, %s, %s, %s, %s)",
		fnum(o.pos.X), fnum(o.pos.Y), fnum(o.pos.Z),
		fnum(o.length), fnum(o.width), fnum(o.height), fnum(o.skewX), fnum(o.skewY))
}

// Prism extrudes an arbitrary 2D base profile along Z. The base keeps its
// own in-plane position; containment and bounds compose the prism position
// with the base profile.
type Prism struct {
	base3
	baseShape Shape2D
	height    float64
}

func NewPrism(base Shape2D, height float64, pos geom.Vec3) (*Prism, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: prism: base shape is nil", ErrInvalidDimension)
	}
	if height <= 0 {
		return nil, dimErr("prism", "height", height)
	}
	return &Prism{base3: base3{pos: pos}, baseShape: base, height: height}, nil
}

func (pr *Prism) Kind() Kind      { return KindPrism }
func (pr *Prism) Base() Shape2D   { return pr.baseShape }
func (pr *Prism) Height() float64 { return pr.height }

func (pr *Prism) SetBase(base Shape2D) error {
	if base == nil {
		return fmt.Errorf("%w: prism: base shape is nil", ErrInvalidDimension)
	}
	pr.baseShape = base
	pr.modified = true
	return nil
}

func (pr *Prism) SetHeight(v float64) error {
	if v <= 0 {
		return dimErr("prism", "height", v)
	}
	pr.height = v
	pr.modified = true
	return nil
}

func (pr *Prism) BoundingBox() geom.Box3 {
	bb := pr.baseShape.BoundingBox()
	hh := pr.height / 2
	return geom.Box3{
		Min: geom.Vec3{X: pr.pos.X + bb.Min.X, Y: pr.pos.Y + bb.Min.Y, Z: pr.pos.Z - hh},
		Max: geom.Vec3{X: pr.pos.X + bb.Max.X, Y: pr.pos.Y + bb.Max.Y, Z: pr.pos.Z + hh},
	}
}

func (pr *Prism) Contains(p geom.Vec3) bool {
	if math.Abs(p.Z-pr.pos.Z) > pr.height/2 {
		return false
	}
	return pr.baseShape.Contains(geom.Vec2{X: p.X - pr.pos.X, Y: p.Y - pr.pos.Y})
}

func (pr *Prism) Volume() float64 { return pr.baseShape.Area() * pr.height }

func (pr *Prism) String() string {
	return fmt.Sprintf("prism(%s, %s)", pr.baseShape.String(), fnum(pr.height))
}

// RectPrism is an axis-aligned box like Cube, kept as a distinct variant so
// parsed strings round-trip under their original name.
type RectPrism struct {
	base3
	length float64
	width  float64
	height float64
}

func NewRectPrism(pos geom.Vec3, length, width, height float64) (*RectPrism, error) {
	if err := requirePositive("rect_prism",
		dimPair{"length", length}, dimPair{"width", width}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	return &RectPrism{base3: base3{pos: pos}, length: length, width: width, height: height}, nil
}

func (r *RectPrism) Kind() Kind      { return KindRectPrism }
func (r *RectPrism) Length() float64 { return r.length }
func (r *RectPrism) Width() float64  { return r.width }
func (r *RectPrism) Height() float64 { return r.height }

// SetDimensions replaces all three extents at once.
func (r *RectPrism) SetDimensions(length, width, height float64) error {
	if err := requirePositive("rect_prism",
		dimPair{"length", length}, dimPair{"width", width}, dimPair{"height", height}); err != nil {
		return err
	}
	r.length, r.width, r.height = length, width, height
	r.modified = true
	return nil
}

func (r *RectPrism) BoundingBox() geom.Box3 {
	hl, hw, hh := r.length/2, r.width/2, r.height/2
	return geom.Box3{
		Min: geom.Vec3{X: r.pos.X - hl, Y: r.pos.Y - hw, Z: r.pos.Z - hh},
		Max: geom.Vec3{X: r.pos.X + hl, Y: r.pos.Y + hw, Z: r.pos.Z + hh},
	}
}

func (r *RectPrism) Contains(p geom.Vec3) bool {
	return math.Abs(p.X-r.pos.X) <= r.length/2 &&
		math.Abs(p.Y-r.pos.Y) <= r.width/2 &&
		math.Abs(p.Z-r.pos.Z) <= r.height/2
}

func (r *RectPrism) Volume() float64 { return r.length * r.width * r.height }

func (r *RectPrism) String() string {
	return fmt.Sprintf("rect_prism([%s,%s,%s], %s, %s, %s)",
		fnum(r.pos.X), fnum(r.pos.Y), fnum(r.pos.Z),
		fnum(r.length), fnum(r.width), fnum(r.height))
}

// SquarePrism is a box with a square footprint.
type SquarePrism struct {
	base3
	side   float64
	height float64
}

func NewSquarePrism(pos geom.Vec3, side, height float64) (*SquarePrism, error) {
	if err := requirePositive("square_prism", dimPair{"side", side}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	return &SquarePrism{base3: base3{pos: pos}, side: side, height: height}, nil
}

func (s *SquarePrism) Kind() Kind      { return KindSquarePrism }
func (s *SquarePrism) Side() float64   { return s.side }
func (s *SquarePrism) Height() float64 { return s.height }

func (s *SquarePrism) SetSide(v float64) error {
	if v <= 0 {
		return dimErr("square_prism", "side", v)
	}
	s.side = v
	s.modified = true
	return nil
}

func (s *SquarePrism) SetHeight(v float64) error {
	if v <= 0 {
		return dimErr("square_prism", "height", v)
	}
	s.height = v
	s.modified = true
	return nil
}

func (s *SquarePrism) BoundingBox() geom.Box3 {
	hs, hh := s.side/2, s.height/2
	return geom.Box3{
		Min: geom.Vec3{X: s.pos.X - hs, Y: s.pos.Y - hs, Z: s.pos.Z - hh},
		Max: geom.Vec3{X: s.pos.X + hs, Y: s.pos.Y + hs, Z: s.pos.Z + hh},
	}
}

func (s *SquarePrism) Contains(p geom.Vec3) bool {
	hs := s.side / 2
	return math.Abs(p.X-s.pos.X) <= hs &&
		math.Abs(p.Y-s.pos.Y) <= hs &&
		math.Abs(p.Z-s.pos.Z) <= s.height/2
}

func (s *SquarePrism) Volume() float64 { return s.side * s.side * s.height }

func (s *SquarePrism) String() string {
	return fmt.Sprintf("square_prism([%s,%s,%s], %s, %s)",
		fnum(s.pos.X), fnum(s.pos.Y), fnum(s.pos.Z), fnum(s.side), fnum(s.height))
}

// OblongXPrism is an elliptic cylinder with its major extent along X.
type OblongXPrism struct {
	base3
	length float64
	width  float64
	height float64
}

func NewOblongXPrism(pos geom.Vec3, length, width, height float64) (*OblongXPrism, error) {
	if err := requirePositive("oblong_x_prism",
		dimPair{"length", length}, dimPair{"width", width}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	return &OblongXPrism{base3: base3{pos: pos}, length: length, width: width, height: height}, nil
}

func (o *OblongXPrism) Kind() Kind      { return KindOblongXPrism }
func (o *OblongXPrism) Length() float64 { return o.length }
func (o *OblongXPrism) Width() float64  { return o.width }
func (o *OblongXPrism) Height() float64 { return o.height }

func (o *OblongXPrism) BoundingBox() geom.Box3 {
	rx, ry, hh := o.length/2, o.width/2, o.height/2
	return geom.Box3{
		Min: geom.Vec3{X: o.pos.X - rx, Y: o.pos.Y - ry, Z: o.pos.Z - hh},
		Max: geom.Vec3{X: o.pos.X + rx, Y: o.pos.Y + ry, Z: o.pos.Z + hh},
	}
}

func (o *OblongXPrism) Contains(p geom.Vec3) bool {
	if math.Abs(p.Z-o.pos.Z) > o.height/2 {
		return false
	}
	nx := (p.X - o.pos.X) / (o.length / 2)
	ny := (p.Y - o.pos.Y) / (o.width / 2)
	return nx*nx+ny*ny <= 1.0
}

func (o *OblongXPrism) Volume() float64 {
	return math.Pi * (o.length / 2) * (o.width / 2) * o.height
}

func (o *OblongXPrism) String() string {
	return fmt.Sprintf("oblong_x_prism([%s,%s,%s], %s, %s, %s)",
		fnum(o.pos.X), fnum(o.pos.Y), fnum(o.pos.Z),
		fnum(o.length), fnum(o.width), fnum(o.height))
}

// OblongYPrism is an elliptic cylinder with its major extent along Y.
type OblongYPrism struct {
	base3
	length float64
	width  float64
	height float64
}

func NewOblongYPrism(pos geom.Vec3, length, width, height float64) (*OblongYPrism, error) {
	if err := requirePositive("oblong_y_prism",
		dimPair{"length", length}, dimPair{"width", width}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	return &OblongYPrism{base3: base3{pos: pos}, length: length, width: width, height: height}, nil
}

func (o *OblongYPrism) Kind() Kind      { return KindOblongYPrism }
func (o *OblongYPrism) Length() float64 { return o.length }
func (o *OblongYPrism) Width() float64  { return o.width }
func (o *OblongYPrism) Height() float64 { return o.height }

func (o *OblongYPrism) SetLength(v float64) error {
	if v <= 0 {
		return dimErr("oblong_y_prism", "length", v)
	}
	o.length = v
	o.modified = true
	return nil
}

func (o *OblongYPrism) SetWidth(v float64) error {
	if v <= 0 {
		return dimErr("oblong_y_prism", "width", v)
	}
	o.width = v
	o.modified = true
	return nil
}

func (o *OblongYPrism) SetHeight(v float64) error {
	if v <= 0 {
		return dimErr("oblong_y_prism", "height", v)
	}
	o.height = v
	o.modified = true
	return nil
}

func (o *OblongYPrism) BoundingBox() geom.Box3 {
	rx, ry, hh := o.width/2, o.length/2, o.height/2
	return geom.Box3{
		Min: geom.Vec3{X: o.pos.X - rx, Y: o.pos.Y - ry, Z: o.pos.Z - hh},
		Max: geom.Vec3{X: o.pos.X + rx, Y: o.pos.Y + ry, Z: o.pos.Z + hh},
	}
}

func (o *OblongYPrism) Contains(p geom.Vec3) bool {
	if math.Abs(p.Z-o.pos.Z) > o.height/2 {
		return false
	}
	nx := (p.X - o.pos.X) / (o.width / 2)
	ny := (p.Y - o.pos.Y) / (o.length / 2)
	return nx*nx+ny*ny <= 1.0
}

func (o *OblongYPrism) Volume() float64 {
	return math.Pi * (o.width / 2) * (o.length / 2) * o.height
}

func (o *OblongYPrism) String() string {
	return fmt.Sprintf("oblong_y_prism([%s,%s,%s], %s, %s, %s)",
		fnum(o.pos.X), fnum(o.pos.Y), fnum(o.pos.Z),
		fnum(o.length), fnum(o.width), fnum(o.height))
}

// RoundedRectPrism is a box with rounded vertical edges: width along X,
// depth along Y, height along Z.
type RoundedRectPrism struct {
	base3
	width  float64
	height float64
	depth  float64
	radius float64
}

func NewRoundedRectPrism(pos geom.Vec3, width, height, depth, radius float64) (*RoundedRectPrism, error) {
	if err := requirePositive("rounded_rect_prism",
		dimPair{"width", width}, dimPair{"height", height},
		dimPair{"depth", depth}, dimPair{"radius", radius}); err != nil {
		return nil, err
	}
	if radius > math.Min(width, depth)/2 {
		return nil, fmt.Errorf("%w: rounded_rect_prism: radius %v larger than half of the smaller dimension", ErrInvalidDimension, radius)
	}
	return &RoundedRectPrism{base3: base3{pos: pos}, width: width, height: height, depth: depth, radius: radius}, nil
}

func (r *RoundedRectPrism) Kind() Kind      { return KindRoundedRectPrism }
func (r *RoundedRectPrism) Width() float64  { return r.width }
func (r *RoundedRectPrism) Height() float64 { return r.height }
func (r *RoundedRectPrism) Depth() float64  { return r.depth }
func (r *RoundedRectPrism) Radius() float64 { return r.radius }

func (r *RoundedRectPrism) SetRadius(v float64) error {
	if v <= 0 {
		return dimErr("rounded_rect_prism", "radius", v)
	}
	if v > math.Min(r.width, r.depth)/2 {
		return fmt.Errorf("%w: rounded_rect_prism: radius %v larger than half of the smaller dimension", ErrInvalidDimension, v)
	}
	r.radius = v
	r.modified = true
	return nil
}

func (r *RoundedRectPrism) BoundingBox() geom.Box3 {
	hw, hd, hh := r.width/2, r.depth/2, r.height/2
	return geom.Box3{
		Min: geom.Vec3{X: r.pos.X - hw, Y: r.pos.Y - hd, Z: r.pos.Z - hh},
		Max: geom.Vec3{X: r.pos.X + hw, Y: r.pos.Y + hd, Z: r.pos.Z + hh},
	}
}

func (r *RoundedRectPrism) Contains(p geom.Vec3) bool {
	if math.Abs(p.Z-r.pos.Z) > r.height/2 {
		return false
	}
	dx := p.X - r.pos.X
	dy := p.Y - r.pos.Y
	hw, hd := r.width/2, r.depth/2
	if math.Abs(dx) > hw || math.Abs(dy) > hd {
		return false
	}
	return insideRoundedCorner(dx, dy, hw, hd, r.radius)
}

func (r *RoundedRectPrism) Volume() float64 {
	baseArea := r.width*r.depth - (4-math.Pi)*r.radius*r.radius
	return baseArea * r.height
}

func (r *RoundedRectPrism) String() string {
	return fmt.Sprintf("rounded_rect_prism([%s,%s,%s], %s, %s, %s, %s)",
		fnum(r.pos.X), fnum(r.pos.Y), fnum(r.pos.Z),
		fnum(r.width), fnum(r.height), fnum(r.depth), fnum(r.radius))
}

// ChamferedRectPrism is a box with 45-degree cuts along its vertical edges.
type ChamferedRectPrism struct {
	base3
	width   float64
	height  float64
	depth   float64
	chamfer float64
}

func NewChamferedRectPrism(pos geom.Vec3, width, height, depth, chamfer float64) (*ChamferedRectPrism, error) {
	if err := requirePositive("chamfered_rect_prism",
		dimPair{"width", width}, dimPair{"height", height},
		dimPair{"depth", depth}, dimPair{"chamfer", chamfer}); err != nil {
		return nil, err
	}
	if chamfer > math.Min(width, depth)/2 {
		return nil, fmt.Errorf("%w: chamfered_rect_prism: chamfer %v larger than half of the smaller dimension", ErrInvalidDimension, chamfer)
	}
	return &ChamferedRectPrism{base3: base3{pos: pos}, width: width, height: height, depth: depth, chamfer: chamfer}, nil
}

func (c *ChamferedRectPrism) Kind() Kind       { return KindChamferedRectPrism }
func (c *ChamferedRectPrism) Width() float64   { return c.width }
func (c *ChamferedRectPrism) Height() float64  { return c.height }
func (c *ChamferedRectPrism) Depth() float64   { return c.depth }
func (c *ChamferedRectPrism) Chamfer() float64 { return c.chamfer }

func (c *ChamferedRectPrism) SetChamfer(v float64) error {
	if v <= 0 {
		return dimErr("chamfered_rect_prism", "chamfer", v)
	}
	if v > math.Min(c.width, c.depth)/2 {
		return fmt.Errorf("%w: chamfered_rect_prism: chamfer %v larger than half of the smaller dimension", ErrInvalidDimension, v)
	}
	c.chamfer = v
	c.modified = true
	return nil
}

func (c *ChamferedRectPrism) BoundingBox() geom.Box3 {
	hw, hd, hh := c.width/2, c.depth/2, c.height/2
	return geom.Box3{
		Min: geom.Vec3{X: c.pos.X - hw, Y: c.pos.Y - hd, Z: c.pos.Z - hh},
		Max: geom.Vec3{X: c.pos.X + hw, Y: c.pos.Y + hd, Z: c.pos.Z + hh},
	}
}

func (c *ChamferedRectPrism) Contains(p geom.Vec3) bool {
	if math.Abs(p.Z-c.pos.Z) > c.height/2 {
		return false
	}
	dx := p.X - c.pos.X
	dy := p.Y - c.pos.Y
	hw, hd := c.width/2, c.depth/2
	if math.Abs(dx) > hw || math.Abs(dy) > hd {
		return false
	}
	return insideChamferedCorner(dx, dy, hw, hd, c.chamfer)
}

func (c *ChamferedRectPrism) Volume() float64 {
	baseArea := c.width*c.depth - 2*c.chamfer*c.chamfer
	return baseArea * c.height
}

func (c *ChamferedRectPrism) String() string {
	return fmt.Sprintf("chamfered_rect_prism([%s,%s,%s], %s, %s, %s, %s)",
		fnum(c.pos.X), fnum(c.pos.Y), fnum(c.pos.Z),
		fnum(c.width), fnum(c.height), fnum(c.depth), fnum(c.chamfer))
}

// NSidedPolygonPrism extrudes a regular polygon, described by its
// circumscribed circle diameter and side count, along Z.
type NSidedPolygonPrism struct {
	base3
	diameter float64
	height   float64
	sides    int
}

func NewNSidedPolygonPrism(pos geom.Vec3, diameter, height float64, sides int) (*NSidedPolygonPrism, error) {
	if err := requirePositive("n_sided_polygon_prism",
		dimPair{"diameter", diameter}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	if sides < 3 {
		return nil, fmt.Errorf("%w: n_sided_polygon_prism: sides must be at least 3, got %d", ErrInvalidDimension, sides)
	}
	return &NSidedPolygonPrism{base3: base3{pos: pos}, diameter: diameter, height: height, sides: sides}, nil
}

func (n *NSidedPolygonPrism) Kind() Kind        { return KindNSidedPolygonPrism }
func (n *NSidedPolygonPrism) Diameter() float64 { return n.diameter }
func (n *NSidedPolygonPrism) Height() float64   { return n.height }
func (n *NSidedPolygonPrism) Sides() int        { return n.sides }
func (n *NSidedPolygonPrism) Radius() float64   { return n.diameter / 2 }

// Apothem returns the inscribed circle radius.
func (n *NSidedPolygonPrism) Apothem() float64 {
	return n.Radius() * math.Cos(math.Pi/float64(n.sides))
}

// SideLength returns the length of one polygon edge.
func (n *NSidedPolygonPrism) SideLength() float64 {
	return 2 * n.Radius() * math.Sin(math.Pi/float64(n.sides))
}

func (n *NSidedPolygonPrism) SetDiameter(v float64) error {
	if v <= 0 {
		return dimErr("n_sided_polygon_prism", "diameter", v)
	}
	n.diameter = v
	n.modified = true
	return nil
}

func (n *NSidedPolygonPrism) SetSides(s int) error {
	if s < 3 {
		return fmt.Errorf("%w: n_sided_polygon_prism: sides must be at least 3, got %d", ErrInvalidDimension, s)
	}
	n.sides = s
	n.modified = true
	return nil
}

func (n *NSidedPolygonPrism) BoundingBox() geom.Box3 {
	r := n.Radius()
	hh := n.height / 2
	return geom.Box3{
		Min: geom.Vec3{X: n.pos.X - r, Y: n.pos.Y - r, Z: n.pos.Z - hh},
		Max: geom.Vec3{X: n.pos.X + r, Y: n.pos.Y + r, Z: n.pos.Z + hh},
	}
}

func (n *NSidedPolygonPrism) Contains(p geom.Vec3) bool {
	if math.Abs(p.Z-n.pos.Z) > n.height/2 {
		return false
	}
	return insideRegularPolygon(p.X-n.pos.X, p.Y-n.pos.Y, n.Apothem(), n.sides)
}

func (n *NSidedPolygonPrism) Volume() float64 {
	perimeter := float64(n.sides) * n.SideLength()
	return perimeter * n.Apothem() / 2 * n.height
}

func (n *NSidedPolygonPrism) String() string {
	return fmt.Sprintf("n_sided_polygon_prism([%s,%s,%s], %s, %s, %d)",
		fnum(n.pos.X), fnum(n.pos.Y), fnum(n.pos.Z),
		fnum(n.diameter), fnum(n.height), n.sides)
}

// Trace is a thin routing segment: width along X, length along Y, height
// along Z.
type Trace struct {
	base3
	width  float64
	height float64
	length float64
}

func NewTrace(pos geom.Vec3, width, height, length float64) (*Trace, error) {
	if err := requirePositive("trace",
		dimPair{"width", width}, dimPair{"height", height}, dimPair{"length", length}); err != nil {
		return nil, err
	}
	return &Trace{base3: base3{pos: pos}, width: width, height: height, length: length}, nil
}

func (t *Trace) Kind() Kind      { return KindTrace }
func (t *Trace) Width() float64  { return t.width }
func (t *Trace) Height() float64 { return t.height }
func (t *Trace) Length() float64 { return t.length }

func (t *Trace) SetWidth(v float64) error {
	if v <= 0 {
		return dimErr("trace", "width", v)
	}
	t.width = v
	t.modified = true
	return nil
}

func (t *Trace) SetHeight(v float64) error {
	if v <= 0 {
		return dimErr("trace", "height", v)
	}
	t.height = v
	t.modified = true
	return nil
}

func (t *Trace) SetLength(v float64) error {
	if v <= 0 {
		return dimErr("trace", "length", v)
	}
	t.length = v
	t.modified = true
	return nil
}

func (t *Trace) BoundingBox() geom.Box3 {
	hw, hh, hl := t.width/2, t.height/2, t.length/2
	return geom.Box3{
		Min: geom.Vec3{X: t.pos.X - hw, Y: t.pos.Y - hl, Z: t.pos.Z - hh},
		Max: geom.Vec3{X: t.pos.X + hw, Y: t.pos.Y + hl, Z: t.pos.Z + hh},
	}
}

func (t *Trace) Contains(p geom.Vec3) bool {
	return math.Abs(p.X-t.pos.X) <= t.width/2 &&
		math.Abs(p.Y-t.pos.Y) <= t.length/2 &&
		math.Abs(p.Z-t.pos.Z) <= t.height/2
}

func (t *Trace) Volume() float64 { return t.width * t.height * t.length }

func (t *Trace) String() string {
	return fmt.Sprintf("trace([%s,%s,%s], %s, %s, %s)",
		fnum(t.pos.X), fnum(t.pos.Y), fnum(t.pos.Z),
		fnum(t.width), fnum(t.height), fnum(t.length))
}
