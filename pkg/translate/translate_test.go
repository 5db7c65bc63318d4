package translate

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/btdlab/thermkit/pkg/assembly"
	"github.com/btdlab/thermkit/pkg/geom"
	"github.com/btdlab/thermkit/pkg/kernel/sdfx"
	"github.com/btdlab/thermkit/pkg/shape"
)

const tol = 0.5

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	return New(sdfx.New(), zaptest.NewLogger(t))
}

func mustSolid(t *testing.T, tr *Translator, s shape.Shape) (min, max [3]float64) {
	t.Helper()
	solid, err := tr.Solid(s)
	if err != nil {
		t.Fatalf("Solid(%s) failed: %v", s, err)
	}
	return solid.BoundingBox()
}

func almost(a, b float64) bool { return math.Abs(a-b) <= tol }

// ---------------------------------------------------------------------------
// shape lowering

func TestSolid_CubePlacement(t *testing.T) {
	tr := newTranslator(t)
	c, err := shape.NewCube(geom.Vec3{X: 10, Y: 20, Z: 30}, 4, 6, 8)
	if err != nil {
		t.Fatal(err)
	}
	min, max := mustSolid(t, tr, c)
	if !almost(min[0], 8) || !almost(max[0], 12) {
		t.Errorf("X bounds = %f..%f", min[0], max[0])
	}
	if !almost(min[1], 17) || !almost(max[1], 23) {
		t.Errorf("Y bounds = %f..%f", min[1], max[1])
	}
	if !almost(min[2], 26) || !almost(max[2], 34) {
		t.Errorf("Z bounds = %f..%f", min[2], max[2])
	}
}

func TestSolid_RotatedTrace(t *testing.T) {
	tr := newTranslator(t)
	tc, err := shape.NewTrace(geom.Vec3{}, 2, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	// A trace runs along Y; rotating 90 degrees about Z turns it along X.
	tc.SetRotation(90)
	min, max := mustSolid(t, tr, tc)
	if !almost(max[0]-min[0], 50) {
		t.Errorf("X extent = %f, expected ~50", max[0]-min[0])
	}
	if !almost(max[1]-min[1], 2) {
		t.Errorf("Y extent = %f, expected ~2", max[1]-min[1])
	}
}

func TestSolid_CylinderAndPolygons(t *testing.T) {
	tr := newTranslator(t)

	cyl, _ := shape.NewCylinder(geom.Vec3{}, 5, 10)
	min, max := mustSolid(t, tr, cyl)
	if !almost(max[0]-min[0], 10) || !almost(max[2]-min[2], 10) {
		t.Errorf("cylinder extents = %f x %f", max[0]-min[0], max[2]-min[2])
	}

	hex, _ := shape.NewHexagonalPrism(geom.Vec3{}, 10, 4)
	min, max = mustSolid(t, tr, hex)
	// First vertex on +X: full diameter along X.
	if !almost(max[0]-min[0], 10) {
		t.Errorf("hexagon X extent = %f, expected ~10", max[0]-min[0])
	}

	poly, _ := shape.NewNSidedPolygonPrism(geom.Vec3{}, 8, 3, 8)
	min, max = mustSolid(t, tr, poly)
	if !almost(max[2]-min[2], 3) {
		t.Errorf("polygon prism Z extent = %f, expected ~3", max[2]-min[2])
	}
}

func TestSolid_Oblongs(t *testing.T) {
	tr := newTranslator(t)

	ox, _ := shape.NewOblongXPrism(geom.Vec3{}, 20, 8, 2)
	min, max := mustSolid(t, tr, ox)
	if !almost(max[0]-min[0], 20) || !almost(max[1]-min[1], 8) {
		t.Errorf("oblong_x extents = %f x %f", max[0]-min[0], max[1]-min[1])
	}

	oy, _ := shape.NewOblongYPrism(geom.Vec3{}, 20, 8, 2)
	min, max = mustSolid(t, tr, oy)
	if !almost(max[0]-min[0], 8) || !almost(max[1]-min[1], 20) {
		t.Errorf("oblong_y extents = %f x %f", max[0]-min[0], max[1]-min[1])
	}
}

func TestSolid_PrismWithOffsetBase(t *testing.T) {
	tr := newTranslator(t)
	base, _ := shape.NewCircle(geom.Vec2{X: 5, Y: 0}, 2)
	p, err := shape.NewPrism(base, 6, geom.Vec3{Z: 10})
	if err != nil {
		t.Fatal(err)
	}
	min, max := mustSolid(t, tr, p)
	// Base offset 5 in X plus prism position 10 in Z.
	if !almost((min[0]+max[0])/2, 5) {
		t.Errorf("X center = %f, expected ~5", (min[0]+max[0])/2)
	}
	if !almost((min[2]+max[2])/2, 10) {
		t.Errorf("Z center = %f, expected ~10", (min[2]+max[2])/2)
	}
}

// ---------------------------------------------------------------------------
// section folding

func TestSection_ChildrenFold(t *testing.T) {
	tr := newTranslator(t)
	container, _ := shape.NewCube(geom.Vec3{}, 100, 100, 10)
	hole, _ := shape.NewCylinder(geom.Vec3{}, 5, 12)

	s := &assembly.Section{Name: "plate", Shape: container}
	s.AddChild(&assembly.Component{Name: "hole", Shape: hole, Op: assembly.OpDifference})

	solid, err := tr.Section(s)
	if err != nil {
		t.Fatalf("Section failed: %v", err)
	}
	min, max := solid.BoundingBox()
	if max[0]-min[0] < 99 {
		t.Errorf("X extent = %f, expected ~100", max[0]-min[0])
	}
}

func TestSection_ShapelessUnionsChildren(t *testing.T) {
	tr := newTranslator(t)
	a, _ := shape.NewCube(geom.Vec3{}, 2, 2, 2)
	b, _ := shape.NewCube(geom.Vec3{X: 10}, 2, 2, 2)

	s := &assembly.Section{Name: "cluster"}
	s.AddChild(&assembly.Component{Name: "a", Shape: a, Op: assembly.OpUnion})
	s.AddChild(&assembly.Component{Name: "b", Shape: b, Op: assembly.OpUnion})

	solid, err := tr.Section(s)
	if err != nil {
		t.Fatalf("Section failed: %v", err)
	}
	min, max := solid.BoundingBox()
	if !almost(min[0], -1) || !almost(max[0], 11) {
		t.Errorf("X bounds = %f..%f, expected ~-1..11", min[0], max[0])
	}
}

func TestSection_Empty(t *testing.T) {
	tr := newTranslator(t)
	s := &assembly.Section{Name: "void"}
	if _, err := tr.Section(s); !errors.Is(err, ErrEmptySection) {
		t.Errorf("err = %v, want ErrEmptySection", err)
	}

	// Children without geometry are skipped, which still leaves nothing.
	s.AddChild(&assembly.Component{Name: "ghost", State: assembly.ResolutionUnresolved})
	if _, err := tr.Section(s); !errors.Is(err, ErrEmptySection) {
		t.Errorf("err = %v, want ErrEmptySection", err)
	}
}

func TestSections_SkipsEmpty(t *testing.T) {
	tr := newTranslator(t)
	c, _ := shape.NewCube(geom.Vec3{}, 1, 1, 1)
	solids, err := tr.Sections([]*assembly.Section{
		{Name: "solid", Shape: c},
		{Name: "void"},
	})
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}
	if len(solids) != 1 {
		t.Errorf("solids = %d, want 1", len(solids))
	}
}

func TestMesh_TagsSection(t *testing.T) {
	tr := newTranslator(t)
	c, _ := shape.NewCube(geom.Vec3{}, 10, 10, 10)
	s := &assembly.Section{Name: "plate", Shape: c}
	mesh, err := tr.Mesh(s)
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.Section != "plate" {
		t.Errorf("mesh section = %q", mesh.Section)
	}
}

// ---------------------------------------------------------------------------
// profile helpers

func TestChamferedRectProfile(t *testing.T) {
	pts := chamferedRect(10, 6, 1)
	if len(pts) != 8 {
		t.Fatalf("profile has %d points, want 8", len(pts))
	}
	for _, p := range pts {
		if math.Abs(p[0]) > 5 || math.Abs(p[1]) > 3 {
			t.Errorf("point %v outside rectangle", p)
		}
	}
}

func TestRegularPolygonProfile(t *testing.T) {
	pts := regularPolygon(2, 6)
	if len(pts) != 6 {
		t.Fatalf("profile has %d points, want 6", len(pts))
	}
	if !almost(pts[0][0], 2) || !almost(pts[0][1], 0) {
		t.Errorf("first vertex = %v, expected on +X axis", pts[0])
	}
	for _, p := range pts {
		r := math.Hypot(p[0], p[1])
		if math.Abs(r-2) > 1e-9 {
			t.Errorf("vertex %v not on circumscribed circle", p)
		}
	}
}
