package shape

import (
	"fmt"
	"math"

	"github.com/btdlab/thermkit/pkg/geom"
)

// Circle is a circle centered on its position.
type Circle struct {
	base2
	radius float64
}

func NewCircle(pos geom.Vec2, radius float64) (*Circle, error) {
	if err := requirePositive("circle", dimPair{"radius", radius}); err != nil {
		return nil, err
	}
	return &Circle{base2: base2{pos: pos}, radius: radius}, nil
}

func (c *Circle) Kind2D() Kind2D  { return KindCircle }
func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) SetRadius(r float64) error {
	if r <= 0 {
		return dimErr("circle", "radius", r)
	}
	c.radius = r
	c.modified = true
	return nil
}

func (c *Circle) BoundingBox() geom.Box2 {
	return geom.Box2{
		Min: geom.Vec2{X: c.pos.X - c.radius, Y: c.pos.Y - c.radius},
		Max: geom.Vec2{X: c.pos.X + c.radius, Y: c.pos.Y + c.radius},
	}
}

func (c *Circle) Contains(p geom.Vec2) bool {
	dx := p.X - c.pos.X
	dy := p.Y - c.pos.Y
	return dx*dx+dy*dy <= c.radius*c.radius
}

func (c *Circle) Area() float64 { return math.Pi * c.radius * c.radius }

func (c *Circle) String() string {
	return fmt.Sprintf("circle([%s,%s], %s)", fnum(c.pos.X), fnum(c.pos.Y), fnum(c.radius))
}

// Rectangle is an axis-aligned rectangle, width along X and height along Y.
type Rectangle struct {
	base2
	width  float64
	height float64
}

func NewRectangle(pos geom.Vec2, width, height float64) (*Rectangle, error) {
	if err := requirePositive("rectangle", dimPair{"width", width}, dimPair{"height", height}); err != nil {
		return nil, err
	}
	return &Rectangle{base2: base2{pos: pos}, width: width, height: height}, nil
}

func (r *Rectangle) Kind2D() Kind2D  { return KindRectangle }
func (r *Rectangle) Width() float64  { return r.width }
func (r *Rectangle) Height() float64 { return r.height }

func (r *Rectangle) SetWidth(w float64) error {
	if w <= 0 {
		return dimErr("rectangle", "width", w)
	}
	r.width = w
	r.modified = true
	return nil
}

func (r *Rectangle) SetHeight(h float64) error {
	if h <= 0 {
		return dimErr("rectangle", "height", h)
	}
	r.height = h
	r.modified = true
	return nil
}

func (r *Rectangle) BoundingBox() geom.Box2 {
	hw, hh := r.width/2, r.height/2
	return geom.Box2{
		Min: geom.Vec2{X: r.pos.X - hw, Y: r.pos.Y - hh},
		Max: geom.Vec2{X: r.pos.X + hw, Y: r.pos.Y + hh},
	}
}

func (r *Rectangle) Contains(p geom.Vec2) bool {
	return math.Abs(p.X-r.pos.X) <= r.width/2 && math.Abs(p.Y-r.pos.Y) <= r.height/2
}

func (r *Rectangle) Area() float64 { return r.width * r.height }

func (r *Rectangle) String() string {
	return fmt.Sprintf("rectangle([%s,%s], %s, %s)",
		fnum(r.pos.X), fnum(r.pos.Y), fnum(r.width), fnum(r.height))
}

// Square is a rectangle with equal sides.
type Square struct {
	base2
	side float64
}

func NewSquare(pos geom.Vec2, side float64) (*Square, error) {
	if err := requirePositive("square", dimPair{"side", side}); err != nil {
		return nil, err
	}
	return &Square{base2: base2{pos: pos}, side: side}, nil
}

func (s *Square) Kind2D() Kind2D { return KindSquare }
func (s *Square) Side() float64  { return s.side }

func (s *Square) SetSide(v float64) error {
	if v <= 0 {
		return dimErr("square", "side", v)
	}
	s.side = v
	s.modified = true
	return nil
}

func (s *Square) BoundingBox() geom.Box2 {
	hs := s.side / 2
	return geom.Box2{
		Min: geom.Vec2{X: s.pos.X - hs, Y: s.pos.Y - hs},
		Max: geom.Vec2{X: s.pos.X + hs, Y: s.pos.Y + hs},
	}
}

func (s *Square) Contains(p geom.Vec2) bool {
	hs := s.side / 2
	return math.Abs(p.X-s.pos.X) <= hs && math.Abs(p.Y-s.pos.Y) <= hs
}

func (s *Square) Area() float64 { return s.side * s.side }

func (s *Square) String() string {
	return fmt.Sprintf("square([%s,%s], %s)", fnum(s.pos.X), fnum(s.pos.Y), fnum(s.side))
}

// OblongX is an ellipse with its major extent along X: length is the full X
// extent, width the full Y extent.
type OblongX struct {
	base2
	length float64
	width  float64
}

func NewOblongX(pos geom.Vec2, length, width float64) (*OblongX, error) {
	if err := requirePositive("oblong_x", dimPair{"length", length}, dimPair{"width", width}); err != nil {
		return nil, err
	}
	return &OblongX{base2: base2{pos: pos}, length: length, width: width}, nil
}

func (o *OblongX) Kind2D() Kind2D  { return KindOblongX }
func (o *OblongX) Length() float64 { return o.length }
func (o *OblongX) Width() float64  { return o.width }

func (o *OblongX) SetLength(v float64) error {
	if v <= 0 {
		return dimErr("oblong_x", "length", v)
	}
	o.length = v
	o.modified = true
	return nil
}

func (o *OblongX) SetWidth(v float64) error {
	if v <= 0 {
		return dimErr("oblong_x", "width", v)
	}
	o.width = v
	o.modified = true
	return nil
}

func (o *OblongX) BoundingBox() geom.Box2 {
	rx, ry := o.length/2, o.width/2
	return geom.Box2{
		Min: geom.Vec2{X: o.pos.X - rx, Y: o.pos.Y - ry},
		Max: geom.Vec2{X: o.pos.X + rx, Y: o.pos.Y + ry},
	}
}

func (o *OblongX) Contains(p geom.Vec2) bool {
	nx := (p.X - o.pos.X) / (o.length / 2)
	ny := (p.Y - o.pos.Y) / (o.width / 2)
	return nx*nx+ny*ny <= 1.0
}

func (o *OblongX) Area() float64 { return math.Pi * (o.length / 2) * (o.width / 2) }

func (o *OblongX) String() string {
	return fmt.Sprintf("oblong_x([%s,%s], %s, %s)",
		fnum(o.pos.X), fnum(o.pos.Y), fnum(o.length), fnum(o.width))
}

// OblongY is an ellipse with its major extent along Y: length is the full Y
// extent, width the full X extent.
type OblongY struct {
	base2
	length float64
	width  float64
}

func NewOblongY(pos geom.Vec2, length, width float64) (*OblongY, error) {
	if err := requirePositive("oblong_y", dimPair{"length", length}, dimPair{"width", width}); err != nil {
		return nil, err
	}
	return &OblongY{base2: base2{pos: pos}, length: length, width: width}, nil
}

func (o *OblongY) Kind2D() Kind2D  { return KindOblongY }
func (o *OblongY) Length() float64 { return o.length }
func (o *OblongY) Width() float64  { return o.width }

func (o *OblongY) SetLength(v float64) error {
	if v <= 0 {
		return dimErr("oblong_y", "length", v)
	}
	o.length = v
	o.modified = true
	return nil
}

func (o *OblongY) SetWidth(v float64) error {
	if v <= 0 {
		return dimErr("oblong_y", "width", v)
	}
	o.width = v
	o.modified = true
	return nil
}

func (o *OblongY) BoundingBox() geom.Box2 {
	rx, ry := o.width/2, o.length/2
	return geom.Box2{
		Min: geom.Vec2{X: o.pos.X - rx, Y: o.pos.Y - ry},
		Max: geom.Vec2{X: o.pos.X + rx, Y: o.pos.Y + ry},
	}
}

func (o *OblongY) Contains(p geom.Vec2) bool {
	nx := (p.X - o.pos.X) / (o.width / 2)
	ny := (p.Y - o.pos.Y) / (o.length / 2)
	return nx*nx+ny*ny <= 1.0
}

func (o *OblongY) Area() float64 { return math.Pi * (o.width / 2) * (o.length / 2) }

func (o *OblongY) String() string {
	return fmt.Sprintf("oblong_y([%s,%s], %s, %s)",
		fnum(o.pos.X), fnum(o.pos.Y), fnum(o.length), fnum(o.width))
}

// RoundedRectangle is a rectangle with quarter-circle corners of the given
// radius. The radius may not exceed half of the smaller side.
type RoundedRectangle struct {
	base2
	width  float64
	height float64
	radius float64
}

func NewRoundedRectangle(pos geom.Vec2, width, height, radius float64) (*RoundedRectangle, error) {
	if err := requirePositive("rounded_rectangle",
		dimPair{"width", width}, dimPair{"height", height}, dimPair{"radius", radius}); err != nil {
		return nil, err
	}
	if radius > math.Min(width, height)/2 {
		return nil, fmt.Errorf("%w: rounded_rectangle: radius %v larger than half of the smaller dimension", ErrInvalidDimension, radius)
	}
	return &RoundedRectangle{base2: base2{pos: pos}, width: width, height: height, radius: radius}, nil
}

func (r *RoundedRectangle) Kind2D() Kind2D  { return KindRoundedRectangle }
func (r *RoundedRectangle) Width() float64  { return r.width }
func (r *RoundedRectangle) Height() float64 { return r.height }
func (r *RoundedRectangle) Radius() float64 { return r.radius }

func (r *RoundedRectangle) SetWidth(w float64) error {
	if w <= 0 {
		return dimErr("rounded_rectangle", "width", w)
	}
	if r.radius > math.Min(w, r.height)/2 {
		return fmt.Errorf("%w: rounded_rectangle: radius %v larger than half of the smaller dimension", ErrInvalidDimension, r.radius)
	}
	r.width = w
	r.modified = true
	return nil
}

func (r *RoundedRectangle) SetHeight(h float64) error {
	if h <= 0 {
		return dimErr("rounded_rectangle", "height", h)
	}
	if r.radius > math.Min(r.width, h)/2 {
		return fmt.Errorf("%w: rounded_rectangle: radius %v larger than half of the smaller dimension", ErrInvalidDimension, r.radius)
	}
	r.height = h
	r.modified = true
	return nil
}

func (r *RoundedRectangle) SetRadius(v float64) error {
	if v <= 0 {
		return dimErr("rounded_rectangle", "radius", v)
	}
	if v > math.Min(r.width, r.height)/2 {
		return fmt.Errorf("%w: rounded_rectangle: radius %v larger than half of the smaller dimension", ErrInvalidDimension, v)
	}
	r.radius = v
	r.modified = true
	return nil
}

func (r *RoundedRectangle) BoundingBox() geom.Box2 {
	hw, hh := r.width/2, r.height/2
	return geom.Box2{
		Min: geom.Vec2{X: r.pos.X - hw, Y: r.pos.Y - hh},
		Max: geom.Vec2{X: r.pos.X + hw, Y: r.pos.Y + hh},
	}
}

func (r *RoundedRectangle) Contains(p geom.Vec2) bool {
	dx := p.X - r.pos.X
	dy := p.Y - r.pos.Y
	hw, hh := r.width/2, r.height/2
	if math.Abs(dx) > hw || math.Abs(dy) > hh {
		return false
	}
	return insideRoundedCorner(dx, dy, hw, hh, r.radius)
}

func (r *RoundedRectangle) Area() float64 {
	// Full rectangle minus the four square corners, plus the quarter circles.
	return r.width*r.height - (4-math.Pi)*r.radius*r.radius
}

func (r *RoundedRectangle) String() string {
	return fmt.Sprintf("rounded_rectangle([%s,%s], %s, %s, %s)",
		fnum(r.pos.X), fnum(r.pos.Y), fnum(r.width), fnum(r.height), fnum(r.radius))
}

// ChamferedRectangle is a rectangle with 45-degree corner cuts of the given
// leg length. The chamfer may not exceed half of the smaller side.
type ChamferedRectangle struct {
	base2
	width   float64
	height  float64
	chamfer float64
}

func NewChamferedRectangle(pos geom.Vec2, width, height, chamfer float64) (*ChamferedRectangle, error) {
	if err := requirePositive("chamfered_rectangle",
		dimPair{"width", width}, dimPair{"height", height}, dimPair{"chamfer", chamfer}); err != nil {
		return nil, err
	}
	if chamfer > math.Min(width, height)/2 {
		return nil, fmt.Errorf("%w: chamfered_rectangle: chamfer %v larger than half of the smaller dimension", ErrInvalidDimension, chamfer)
	}
	return &ChamferedRectangle{base2: base2{pos: pos}, width: width, height: height, chamfer: chamfer}, nil
}

func (c *ChamferedRectangle) Kind2D() Kind2D   { return KindChamferedRectangle }
func (c *ChamferedRectangle) Width() float64   { return c.width }
func (c *ChamferedRectangle) Height() float64  { return c.height }
func (c *ChamferedRectangle) Chamfer() float64 { return c.chamfer }

func (c *ChamferedRectangle) SetWidth(w float64) error {
	if w <= 0 {
		return dimErr("chamfered_rectangle", "width", w)
	}
	if c.chamfer > math.Min(w, c.height)/2 {
		return fmt.Errorf("%w: chamfered_rectangle: chamfer %v larger than half of the smaller dimension", ErrInvalidDimension, c.chamfer)
	}
	c.width = w
	c.modified = true
	return nil
}

func (c *ChamferedRectangle) SetHeight(h float64) error {
	if h <= 0 {
		return dimErr("chamfered_rectangle", "height", h)
	}
	if c.chamfer > math.Min(c.width, h)/2 {
		return fmt.Errorf("%w: chamfered_rectangle: chamfer %v larger than half of the smaller dimension", ErrInvalidDimension, c.chamfer)
	}
	c.height = h
	c.modified = true
	return nil
}

func (c *ChamferedRectangle) SetChamfer(v float64) error {
	if v <= 0 {
		return dimErr("chamfered_rectangle", "chamfer", v)
	}
	if v > math.Min(c.width, c.height)/2 {
		return fmt.Errorf("%w: chamfered_rectangle: chamfer %v larger than half of the smaller dimension", ErrInvalidDimension, v)
	}
	c.chamfer = v
	c.modified = true
	return nil
}

func (c *ChamferedRectangle) BoundingBox() geom.Box2 {
	hw, hh := c.width/2, c.height/2
	return geom.Box2{
		Min: geom.Vec2{X: c.pos.X - hw, Y: c.pos.Y - hh},
		Max: geom.Vec2{X: c.pos.X + hw, Y: c.pos.Y + hh},
	}
}

func (c *ChamferedRectangle) Contains(p geom.Vec2) bool {
	dx := p.X - c.pos.X
	dy := p.Y - c.pos.Y
	hw, hh := c.width/2, c.height/2
	if math.Abs(dx) > hw || math.Abs(dy) > hh {
		return false
	}
	return insideChamferedCorner(dx, dy, hw, hh, c.chamfer)
}

func (c *ChamferedRectangle) Area() float64 {
	return c.width*c.height - 2*c.chamfer*c.chamfer
}

func (c *ChamferedRectangle) String() string {
	return fmt.Sprintf("chamfered_rectangle([%s,%s], %s, %s, %s)",
		fnum(c.pos.X), fnum(c.pos.Y), fnum(c.width), fnum(c.height), fnum(c.chamfer))
}

// NSidedPolygon is a regular polygon described by its circumscribed circle
// diameter and side count. The first vertex lies on the positive X axis.
type NSidedPolygon struct {
	base2
	diameter float64
	sides    int
}

func NewNSidedPolygon(pos geom.Vec2, diameter float64, sides int) (*NSidedPolygon, error) {
	if err := requirePositive("n_sided_polygon", dimPair{"diameter", diameter}); err != nil {
		return nil, err
	}
	if sides < 3 {
		return nil, fmt.Errorf("%w: n_sided_polygon: sides must be at least 3, got %d", ErrInvalidDimension, sides)
	}
	return &NSidedPolygon{base2: base2{pos: pos}, diameter: diameter, sides: sides}, nil
}

func (n *NSidedPolygon) Kind2D() Kind2D    { return KindNSidedPolygon }
func (n *NSidedPolygon) Diameter() float64 { return n.diameter }
func (n *NSidedPolygon) Sides() int        { return n.sides }
func (n *NSidedPolygon) Radius() float64   { return n.diameter / 2 }

// Apothem returns the inscribed circle radius.
func (n *NSidedPolygon) Apothem() float64 {
	return n.Radius() * math.Cos(math.Pi/float64(n.sides))
}

// SideLength returns the length of one polygon edge.
func (n *NSidedPolygon) SideLength() float64 {
	return 2 * n.Radius() * math.Sin(math.Pi/float64(n.sides))
}

func (n *NSidedPolygon) SetDiameter(d float64) error {
	if d <= 0 {
		return dimErr("n_sided_polygon", "diameter", d)
	}
	n.diameter = d
	n.modified = true
	return nil
}

func (n *NSidedPolygon) SetSides(s int) error {
	if s < 3 {
		return fmt.Errorf("%w: n_sided_polygon: sides must be at least 3, got %d", ErrInvalidDimension, s)
	}
	n.sides = s
	n.modified = true
	return nil
}

func (n *NSidedPolygon) BoundingBox() geom.Box2 {
	r := n.Radius()
	return geom.Box2{
		Min: geom.Vec2{X: n.pos.X - r, Y: n.pos.Y - r},
		Max: geom.Vec2{X: n.pos.X + r, Y: n.pos.Y + r},
	}
}

func (n *NSidedPolygon) Contains(p geom.Vec2) bool {
	dx := p.X - n.pos.X
	dy := p.Y - n.pos.Y
	return insideRegularPolygon(dx, dy, n.Apothem(), n.sides)
}

func (n *NSidedPolygon) Area() float64 {
	perimeter := float64(n.sides) * n.SideLength()
	return perimeter * n.Apothem() / 2
}

func (n *NSidedPolygon) String() string {
	return fmt.Sprintf("n_sided_polygon([%s,%s], %s, %d)",
		fnum(n.pos.X), fnum(n.pos.Y), fnum(n.diameter), n.sides)
}

// insideRoundedCorner reports whether the offset (dx, dy) from the
// rectangle center lies inside the rounded-corner region. The caller has
// already established that the point is inside the bounding rectangle.
func insideRoundedCorner(dx, dy, hw, hh, radius float64) bool {
	if math.Abs(dx) <= hw-radius || math.Abs(dy) <= hh-radius {
		return true
	}
	// Nearest corner arc center, in the same quadrant as the point.
	cx := hw - radius
	cy := hh - radius
	if dx < 0 {
		cx = -cx
	}
	if dy < 0 {
		cy = -cy
	}
	ddx := dx - cx
	ddy := dy - cy
	return ddx*ddx+ddy*ddy <= radius*radius
}

// insideChamferedCorner is the analog for a 45-degree corner cut: the point
// passes when its L1 distance to the corner vertex is within the chamfer.
func insideChamferedCorner(dx, dy, hw, hh, chamfer float64) bool {
	if math.Abs(dx) <= hw-chamfer || math.Abs(dy) <= hh-chamfer {
		return true
	}
	cx := hw - chamfer
	cy := hh - chamfer
	if dx < 0 {
		cx = -cx
	}
	if dy < 0 {
		cy = -cy
	}
	return math.Abs(dx-cx)+math.Abs(dy-cy) <= chamfer
}

// insideRegularPolygon tests a centered offset against a regular polygon
// whose first vertex lies on the positive X axis. The inscribed circle is a
// fast accept; outside it the point is tested against the normal of the
// edge spanning its angular sector.
func insideRegularPolygon(dx, dy, apothem float64, sides int) bool {
	if dx*dx+dy*dy <= apothem*apothem {
		return true
	}

	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	anglePerSide := 2 * math.Pi / float64(sides)
	sector := math.Floor(angle / anglePerSide)

	// Edge normal bisects the sector.
	edgeAngle := (sector + 0.5) * anglePerSide
	nx := math.Cos(edgeAngle)
	ny := math.Sin(edgeAngle)

	return dx*nx+dy*ny <= apothem
}
