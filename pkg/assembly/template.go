package assembly

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/btdlab/thermkit/pkg/geom"
)

// templateRefPattern matches references of the form
// "Name([x,y,z])", e.g. "C4bump_BUMP([-405000,1458000,1208880])".
var templateRefPattern = regexp.MustCompile(`^([^(]+)\(\[([^\]]+)\]\)`)

// templateRef is a parsed template reference: the template name and the
// instance position, with the raw position text kept for substitution into
// the variant's shape string.
type templateRef struct {
	Name        string
	Position    geom.Vec3
	PositionRaw string
}

// parseTemplateRef splits a reference string into name and position. A
// malformed position falls back to the origin; a malformed reference
// returns false.
func parseTemplateRef(s string, log *zap.Logger) (templateRef, bool) {
	m := templateRefPattern.FindStringSubmatch(s)
	if m == nil {
		return templateRef{}, false
	}
	ref := templateRef{Name: m[1], PositionRaw: m[2]}

	parts := strings.Split(m[2], ",")
	if len(parts) >= 3 {
		vals := make([]float64, 0, 3)
		for _, p := range parts[:3] {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				log.Warn("malformed position in template reference",
					zap.String("reference", s), zap.String("token", p))
				return ref, true
			}
			vals = append(vals, v)
		}
		ref.Position = geom.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
	}
	return ref, true
}

// Library stores template definitions keyed by template name.
type Library struct {
	templates map[string]TemplateRecord
	log       *zap.Logger
}

func NewLibrary(log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{templates: make(map[string]TemplateRecord), log: log}
}

// Add registers a template definition, replacing any previous one with the
// same name.
func (l *Library) Add(rec TemplateRecord) {
	if _, exists := l.templates[rec.Name]; exists {
		l.log.Warn("replacing existing template", zap.String("template", rec.Name))
	}
	l.templates[rec.Name] = rec
}

func (l *Library) Get(name string) (TemplateRecord, bool) {
	rec, ok := l.templates[name]
	return rec, ok
}

func (l *Library) Len() int { return len(l.templates) }

// Names returns the registered template names, unordered.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.templates))
	for name := range l.templates {
		out = append(out, name)
	}
	return out
}

// variantFor finds the variant bound to the given parent section name. The
// match is exact and case sensitive.
func (l *Library) variantFor(templateName, sectionName string) (TemplateVariantRecord, bool) {
	rec, ok := l.templates[templateName]
	if !ok {
		return TemplateVariantRecord{}, false
	}
	for _, v := range rec.Shapes {
		if v.Section == sectionName {
			return v, true
		}
	}
	return TemplateVariantRecord{}, false
}
