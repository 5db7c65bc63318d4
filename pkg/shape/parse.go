package shape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/btdlab/thermkit/pkg/geom"
)

// Parser turns shape strings like "cube([0,0,0], 10, 10, 2)" back into
// shape values. Rules are tried in declaration order, 3D first, so a
// string only ever matches one variant.
type Parser struct {
	log *zap.Logger
}

func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{log: logger}
}

// Parse is a convenience wrapper using a parser without logging.
func Parse(s string) (Any, error) {
	return NewParser(nil).Parse(s)
}

// Parse parses a shape string into a 3D or 2D shape value.
func (p *Parser) Parse(s string) (Any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty shape string", ErrUnrecognizedShape)
	}

	for _, r := range rules3D {
		g := r.re.FindStringSubmatch(s)
		if g == nil {
			continue
		}
		return r.build(p, g[1:])
	}
	if strings.HasPrefix(s, "prism(") && strings.HasSuffix(s, ")") {
		return p.parsePrism(s)
	}
	for _, r := range rules2D {
		g := r.re.FindStringSubmatch(s)
		if g == nil {
			continue
		}
		return r.build(p, g[1:])
	}
	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedShape, s)
}

// parsePrism handles the one recursive production: prism(<base>, <height>).
// The base expression may itself contain commas, so the argument list is
// split at the last comma outside any nested parentheses or brackets.
func (p *Parser) parsePrism(s string) (Any, error) {
	inner := s[len("prism(") : len(s)-1]
	cut := -1
	depth := 0
	for i, c := range inner {
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				cut = i
			}
		}
	}
	if cut < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedShape, s)
	}

	base, err := p.Parse(strings.TrimSpace(inner[:cut]))
	if err != nil {
		return nil, err
	}
	base2d, ok := base.(Shape2D)
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrPrismBase2D, inner[:cut])
	}
	height, err := num(inner[cut+1:])
	if err != nil {
		return nil, err
	}
	return NewPrism(base2d, height, geom.Vec3{})
}

type rule struct {
	re    *regexp.Regexp
	build func(p *Parser, g []string) (Any, error)
}

// arg is the capture group for one numeric argument.
const arg = `([^,\])]+)`

// pat builds the anchored pattern for a fixed-arity production with a
// bracketed position of posDims components followed by params parameters.
func pat(name string, posDims, params int) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`^` + name + `\(\[`)
	for i := 0; i < posDims; i++ {
		if i > 0 {
			b.WriteString(`,`)
		}
		b.WriteString(arg)
	}
	b.WriteString(`\]`)
	for i := 0; i < params; i++ {
		b.WriteString(`,` + arg)
	}
	b.WriteString(`\)$`)
	return regexp.MustCompile(b.String())
}

func num(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q", ErrUnrecognizedShape, s)
	}
	return v, nil
}

func nums(g []string) ([]float64, error) {
	out := make([]float64, len(g))
	for i, s := range g {
		v, err := num(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var rules3D = []rule{
	{pat("cube", 3, 3), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		pos := geom.Vec3{X: v[0], Y: v[1], Z: v[2]}
		dims := [3]float64{v[3], v[4], v[5]}
		names := [3]string{"length", "width", "height"}
		for i, d := range dims {
			if d <= 0 {
				// A non-positive extent marks a container whose size is
				// filled in later from its children.
				p.log.Warn("clamping non-positive cube dimension to zero",
					zap.String("param", names[i]), zap.Float64("value", d))
				dims[i] = 0
			}
		}
		return &Cube{base3: base3{pos: pos}, length: dims[0], width: dims[1], height: dims[2]}, nil
	}},
	{pat("cylinder", 3, 2), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewCylinder(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4])
	}},
	{pat("hexagonal_prism", 3, 2), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewHexagonalPrism(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4])
	}},
	{pat("oblique_cube", 3, 5), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewObliqueCube(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4], v[5], v[6], v[7])
	}},
	{pat("rect_prism", 3, 3), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewRectPrism(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4], v[5])
	}},
	{pat("square_prism", 3, 2), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewSquarePrism(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4])
	}},
	{pat("oblong_x_prism", 3, 3), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewOblongXPrism(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4], v[5])
	}},
	{pat("oblong_y_prism", 3, 3), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewOblongYPrism(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4], v[5])
	}},
	{pat("rounded_rect_prism", 3, 4), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewRoundedRectPrism(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4], v[5], v[6])
	}},
	{pat("chamfered_rect_prism", 3, 4), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewChamferedRectPrism(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4], v[5], v[6])
	}},
	{pat("n_sided_polygon_prism", 3, 3), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g[:5])
		if err != nil {
			return nil, err
		}
		sides, err := strconv.Atoi(strings.TrimSpace(g[5]))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid side count %q", ErrUnrecognizedShape, g[5])
		}
		return NewNSidedPolygonPrism(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4], sides)
	}},
	{pat("trace", 3, 3), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewTrace(geom.Vec3{X: v[0], Y: v[1], Z: v[2]}, v[3], v[4], v[5])
	}},
}

var rules2D = []rule{
	{pat("circle", 2, 1), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewCircle(geom.Vec2{X: v[0], Y: v[1]}, v[2])
	}},
	{pat("rectangle", 2, 2), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewRectangle(geom.Vec2{X: v[0], Y: v[1]}, v[2], v[3])
	}},
	{pat("square", 2, 1), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewSquare(geom.Vec2{X: v[0], Y: v[1]}, v[2])
	}},
	{pat("oblong_x", 2, 2), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewOblongX(geom.Vec2{X: v[0], Y: v[1]}, v[2], v[3])
	}},
	{pat("oblong_y", 2, 2), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewOblongY(geom.Vec2{X: v[0], Y: v[1]}, v[2], v[3])
	}},
	{pat("rounded_rectangle", 2, 3), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewRoundedRectangle(geom.Vec2{X: v[0], Y: v[1]}, v[2], v[3], v[4])
	}},
	{pat("chamfered_rectangle", 2, 3), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g)
		if err != nil {
			return nil, err
		}
		return NewChamferedRectangle(geom.Vec2{X: v[0], Y: v[1]}, v[2], v[3], v[4])
	}},
	{pat("n_sided_polygon", 2, 2), func(p *Parser, g []string) (Any, error) {
		v, err := nums(g[:3])
		if err != nil {
			return nil, err
		}
		sides, err := strconv.Atoi(strings.TrimSpace(g[3]))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid side count %q", ErrUnrecognizedShape, g[3])
		}
		return NewNSidedPolygon(geom.Vec2{X: v[0], Y: v[1]}, v[2], sides)
	}},
}
