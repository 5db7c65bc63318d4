package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/btdlab/thermkit/pkg/geom"
)

// ---------------------------------------------------------------------------
// Constructor validation
// ---------------------------------------------------------------------------

func TestConstructors2D_RejectNonPositiveDimensions(t *testing.T) {
	pos := geom.Vec2{}
	cases := []struct {
		name string
		make func() error
	}{
		{"circle zero radius", func() error { _, err := NewCircle(pos, 0); return err }},
		{"rectangle negative width", func() error { _, err := NewRectangle(pos, -1, 1); return err }},
		{"square zero side", func() error { _, err := NewSquare(pos, 0); return err }},
		{"oblong x zero length", func() error { _, err := NewOblongX(pos, 0, 1); return err }},
		{"oblong y negative width", func() error { _, err := NewOblongY(pos, 1, -1); return err }},
		{"rounded rectangle oversized radius", func() error { _, err := NewRoundedRectangle(pos, 2, 1, 0.6); return err }},
		{"chamfered rectangle oversized chamfer", func() error { _, err := NewChamferedRectangle(pos, 2, 1, 0.6); return err }},
		{"polygon two sides", func() error { _, err := NewNSidedPolygon(pos, 2, 2); return err }},
	}
	for _, c := range cases {
		err := c.make()
		if err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
			continue
		}
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("%s: error %v does not match ErrInvalidDimension", c.name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Geometry
// ---------------------------------------------------------------------------

func TestCircle_Geometry(t *testing.T) {
	c, _ := NewCircle(geom.Vec2{X: 1, Y: 1}, 2)

	if !almost(c.Area(), 4*math.Pi) {
		t.Errorf("area = %v", c.Area())
	}
	if !c.Contains(geom.Vec2{X: 2.9, Y: 1}) {
		t.Error("interior point rejected")
	}
	if c.Contains(geom.Vec2{X: 2.9, Y: 2.9}) {
		t.Error("bbox corner reported inside")
	}
	bb := c.BoundingBox()
	if bb.Min != (geom.Vec2{X: -1, Y: -1}) || bb.Max != (geom.Vec2{X: 3, Y: 3}) {
		t.Errorf("bbox = %+v", bb)
	}
}

func TestRectangleAndSquare_Geometry(t *testing.T) {
	r, _ := NewRectangle(geom.Vec2{}, 4, 2)
	if !almost(r.Area(), 8) {
		t.Errorf("rectangle area = %v", r.Area())
	}
	if !r.Contains(geom.Vec2{X: 2, Y: 1}) {
		t.Error("rectangle boundary point rejected")
	}
	if r.Contains(geom.Vec2{X: 2.01, Y: 0}) {
		t.Error("point beyond +X edge reported inside")
	}

	s, _ := NewSquare(geom.Vec2{X: 1, Y: 1}, 2)
	if !almost(s.Area(), 4) {
		t.Errorf("square area = %v", s.Area())
	}
	if !s.Contains(geom.Vec2{}) {
		t.Error("square corner rejected")
	}
}

func TestOblongs_MajorAxis(t *testing.T) {
	ox, _ := NewOblongX(geom.Vec2{}, 4, 2)
	if !ox.Contains(geom.Vec2{X: 1.9, Y: 0}) || ox.Contains(geom.Vec2{X: 0, Y: 1.9}) {
		t.Error("oblong_x major axis must run along X")
	}
	if !almost(ox.Area(), math.Pi*2*1) {
		t.Errorf("oblong_x area = %v", ox.Area())
	}

	oy, _ := NewOblongY(geom.Vec2{}, 4, 2)
	if !oy.Contains(geom.Vec2{X: 0, Y: 1.9}) || oy.Contains(geom.Vec2{X: 1.9, Y: 0}) {
		t.Error("oblong_y major axis must run along Y")
	}
}

func TestRoundedRectangle_Geometry(t *testing.T) {
	r, _ := NewRoundedRectangle(geom.Vec2{}, 4, 2, 0.5)

	// (1.8, 0.8) is 0.424 from the corner-arc center (1.5, 0.5), inside
	// the r=0.5 arc; (1.9, 0.9) is 0.566 away, outside.
	if !r.Contains(geom.Vec2{X: 1.8, Y: 0.8}) {
		t.Error("point inside the corner arc rejected")
	}
	if r.Contains(geom.Vec2{X: 1.9, Y: 0.9}) {
		t.Error("corner point beyond the arc reported inside")
	}
	if r.Contains(geom.Vec2{X: 1.99, Y: 0.99}) {
		t.Error("square corner point reported inside")
	}
	want := 4*2 - (4-math.Pi)*0.25
	if !almost(r.Area(), want) {
		t.Errorf("area = %v, want %v", r.Area(), want)
	}
	if r.Area() > r.BoundingBox().Area() {
		t.Error("area exceeds bounding box area")
	}
}

func TestChamferedRectangle_Geometry(t *testing.T) {
	c, _ := NewChamferedRectangle(geom.Vec2{}, 4, 2, 0.5)

	if !c.Contains(geom.Vec2{X: 1.7, Y: 0.7}) {
		t.Error("point inside the chamfer line rejected")
	}
	if c.Contains(geom.Vec2{X: 1.9, Y: 0.9}) {
		t.Error("cut corner point reported inside")
	}
	if !almost(c.Area(), 8-0.5) {
		t.Errorf("area = %v", c.Area())
	}
}

func TestNSidedPolygon_Geometry(t *testing.T) {
	p, _ := NewNSidedPolygon(geom.Vec2{}, 2, 6)

	apothem := math.Cos(math.Pi / 6)
	if !almost(p.Apothem(), apothem) {
		t.Errorf("apothem = %v", p.Apothem())
	}
	if !almost(p.SideLength(), 1) {
		t.Errorf("side length = %v", p.SideLength())
	}
	// Regular hexagon area: 3*sqrt(3)/2 * r^2.
	want := 3 * math.Sqrt(3) / 2
	if !almost(p.Area(), want) {
		t.Errorf("area = %v, want %v", p.Area(), want)
	}
	if !p.Contains(geom.Vec2{X: 0.5, Y: 0}) {
		t.Error("point inside the apothem circle rejected")
	}
	if !p.Contains(geom.Vec2{X: 0.99, Y: 0}) {
		t.Error("point near a vertex rejected")
	}
	if p.Contains(geom.Vec2{X: 0.9, Y: 0.5}) {
		t.Error("point past an edge reported inside")
	}
}

func TestShape2D_SettersFlagModified(t *testing.T) {
	c, _ := NewCircle(geom.Vec2{}, 1)
	if c.Modified() {
		t.Error("fresh shape flagged modified")
	}
	if err := c.SetRadius(2); err != nil {
		t.Fatal(err)
	}
	if !c.Modified() || c.Radius() != 2 {
		t.Errorf("radius = %v, modified = %v", c.Radius(), c.Modified())
	}
	if err := c.SetRadius(-1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("SetRadius(-1): %v", err)
	}
	if c.Radius() != 2 {
		t.Errorf("rejected set mutated radius to %v", c.Radius())
	}
}
