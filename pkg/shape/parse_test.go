package shape

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"
)

// ---------------------------------------------------------------------------
// Round trips
// ---------------------------------------------------------------------------

func TestParse_RoundTripsCanonicalStrings(t *testing.T) {
	cases := []string{
		"cube([1,2,3], 10, 10, 2)",
		"cylinder([0,0,0.5], 1.5, 2)",
		"hexagonal_prism([0,0,0], 2, 1)",
		"oblique_cube([1,1,1], 2, 2, 2, 30, -15)",
		"rect_prism([0,0,0], 1, 2, 3)",
		"square_prism([0.5,0.5,0], 2, 1)",
		"oblong_x_prism([0,0,0], 4, 2, 1)",
		"oblong_y_prism([0,0,0], 4, 2, 1)",
		"rounded_rect_prism([0,0,0], 4, 1, 2, 0.5)",
		"chamfered_rect_prism([0,0,0], 4, 1, 2, 0.5)",
		"n_sided_polygon_prism([0,0,0], 2, 1, 6)",
		"trace([0,0,0], 0.2, 0.05, 10)",
		"circle([0,0], 1)",
		"rectangle([1,1], 4, 2)",
		"square([0,0], 2)",
		"oblong_x([0,0], 4, 2)",
		"oblong_y([0,0], 4, 2)",
		"rounded_rectangle([0,0], 4, 2, 0.5)",
		"chamfered_rectangle([0,0], 4, 2, 0.5)",
		"n_sided_polygon([0,0], 2, 6)",
		"prism(circle([0,0], 1), 4)",
		"prism(rounded_rectangle([1,1], 4, 2, 0.5), 2)",
	}
	for _, in := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got.String() != in {
			t.Errorf("round trip %q -> %q", in, got.String())
		}
	}
}

func TestParse_ToleratesWhitespace(t *testing.T) {
	s, err := Parse("  cube([ 1, 2, 3 ],  10,10, 2)  ")
	if err != nil {
		t.Fatal(err)
	}
	c, ok := s.(*Cube)
	if !ok {
		t.Fatalf("parsed %T, want *Cube", s)
	}
	if c.Position().X != 1 || c.Length() != 10 || c.Height() != 2 {
		t.Errorf("parsed cube = %s", c)
	}
}

func TestParse_DistinguishesVariantPrefixes(t *testing.T) {
	// rect_prism and oblong_x_prism must not be swallowed by shorter rules.
	if s, err := Parse("rect_prism([0,0,0], 1, 2, 3)"); err != nil {
		t.Fatal(err)
	} else if _, ok := s.(*RectPrism); !ok {
		t.Errorf("parsed %T, want *RectPrism", s)
	}
	if s, err := Parse("oblong_x([0,0], 4, 2)"); err != nil {
		t.Fatal(err)
	} else if _, ok := s.(*OblongX); !ok {
		t.Errorf("parsed %T, want *OblongX", s)
	}
	if s, err := Parse("n_sided_polygon([0,0], 2, 5)"); err != nil {
		t.Fatal(err)
	} else if _, ok := s.(*NSidedPolygon); !ok {
		t.Errorf("parsed %T, want *NSidedPolygon", s)
	}
}

// ---------------------------------------------------------------------------
// Container placeholder cubes
// ---------------------------------------------------------------------------

func TestParse_ClampsNonPositiveCubeDimensions(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	s, err := p.Parse("cube([0,0,0], 0, -1, 2)")
	if err != nil {
		t.Fatal(err)
	}
	c, ok := s.(*Cube)
	if !ok {
		t.Fatalf("parsed %T, want *Cube", s)
	}
	if c.Length() != 0 || c.Width() != 0 || c.Height() != 2 {
		t.Errorf("dims = %v %v %v, want 0 0 2", c.Length(), c.Width(), c.Height())
	}
}

func TestParse_OtherVariantsRejectNonPositiveDimensions(t *testing.T) {
	cases := []string{
		"cylinder([0,0,0], -1, 2)",
		"rect_prism([0,0,0], 1, 0, 3)",
		"rounded_rect_prism([0,0,0], 4, 1, 2, 3)",
		"n_sided_polygon_prism([0,0,0], 2, 1, 2)",
		"circle([0,0], 0)",
	}
	for _, in := range cases {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("Parse(%q) = %v, want ErrInvalidDimension", in, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Error cases
// ---------------------------------------------------------------------------

func TestParse_RejectsUnrecognizedInput(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"sphere([0,0,0], 1)",
		"cube([0,0,0], 1, 1)",     // arity mismatch
		"cube([0,0], 1, 1, 1)",    // 2D position on a 3D shape
		"cube([0,0,0], 1, 1, 1",   // unbalanced
		"cube([0,0,0], 1, one, 1)",
	}
	for _, in := range cases {
		if _, err := Parse(in); !errors.Is(err, ErrUnrecognizedShape) {
			t.Errorf("Parse(%q) = %v, want ErrUnrecognizedShape", in, err)
		}
	}
}

func TestParse_PrismBaseMustBe2D(t *testing.T) {
	_, err := Parse("prism(cube([0,0,0], 1, 1, 1), 2)")
	if !errors.Is(err, ErrPrismBase2D) {
		t.Errorf("err = %v, want ErrPrismBase2D", err)
	}
}

func TestParse_PrismPropagatesBaseErrors(t *testing.T) {
	_, err := Parse("prism(circle([0,0], -1), 2)")
	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("err = %v, want ErrInvalidDimension", err)
	}
}
