package assembly

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/btdlab/thermkit/pkg/geom"
	"github.com/btdlab/thermkit/pkg/material"
	"github.com/btdlab/thermkit/pkg/shape"
)

// Builder turns section records into assembled sections: it parses shape
// strings, binds materials from the registry, resolves template references
// against the library, and back-fills container extents from children.
//
// Building is lenient where the input allows partial data: a child that
// fails to build or a template that does not resolve is logged and skipped
// or kept without geometry, never fatal for the section.
type Builder struct {
	registry *material.Registry
	library  *Library
	parser   *shape.Parser
	log      *zap.Logger
}

func NewBuilder(registry *material.Registry, library *Library, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	if library == nil {
		library = NewLibrary(log)
	}
	return &Builder{
		registry: registry,
		library:  library,
		parser:   shape.NewParser(log),
		log:      log,
	}
}

// BuildSection assembles one section from its record.
func (b *Builder) BuildSection(rec SectionRecord) *Section {
	s := &Section{
		Name:      rec.Name,
		Layer:     rec.Layer,
		Thickness: rec.Thickness,
		Rotation:  rec.Rotation,
	}

	kind, known := ParseComponentType(rec.Type)
	if rec.Type != "" && !known {
		b.log.Warn("unknown section type",
			zap.String("section", rec.Name), zap.String("type", rec.Type))
	}
	s.Type = kind

	if len(rec.Offset) >= 3 {
		s.Offset = geom.Vec3{X: rec.Offset[0], Y: rec.Offset[1], Z: rec.Offset[2]}
	}

	if rec.Shape != "" {
		parsed, err := b.parser.Parse(rec.Shape)
		if err != nil {
			b.log.Warn("failed to parse section shape",
				zap.String("section", rec.Name), zap.Error(err))
		} else if sh, ok := parsed.(shape.Shape); ok {
			s.Shape = sh
		} else {
			b.log.Warn("section shape is not 3D",
				zap.String("section", rec.Name), zap.String("shape", rec.Shape))
		}
	}

	for _, childRec := range rec.Children {
		child := b.buildComponent(childRec, rec.Name)
		s.AddChild(child)
	}

	if s.Shape != nil && s.fillContainerFromChildren() {
		length, width, height := s.EffectiveDimensions()
		b.log.Debug("sized container section from children",
			zap.String("section", rec.Name),
			zap.Float64("length", length),
			zap.Float64("width", width),
			zap.Float64("height", height))
	}

	s.Material = b.bindMaterials(rec.Name, rec.Materials)
	s.SetPower(rec.Power)
	return s
}

// buildComponent assembles one child component. parentSection is the name
// template variants are matched against.
func (b *Builder) buildComponent(rec ComponentRecord, parentSection string) *Component {
	c := &Component{
		Name:        rec.Name,
		TemplateRef: rec.Template,
		Rotation:    rec.Rotation,
		Scale:       geom.Vec3{X: 1, Y: 1, Z: 1},
		Op:          OpDifference,
		Description: rec.Description,
		State:       ResolutionExplicit,
	}
	if c.Name == "" {
		c.Name = "component_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		b.log.Debug("generated component name", zap.String("component", c.Name))
	}

	kind, known := ParseComponentType(rec.Type)
	if rec.Type != "" && !known {
		b.log.Warn("unknown component type",
			zap.String("component", c.Name), zap.String("type", rec.Type))
	}
	c.Type = kind

	if rec.Position != nil {
		c.Position = geom.Vec3{X: rec.Position.X, Y: rec.Position.Y, Z: rec.Position.Z}
	}
	if rec.Scale != nil {
		c.Scale = geom.Vec3{X: rec.Scale.X, Y: rec.Scale.Y, Z: rec.Scale.Z}
	}
	if rec.BooleanOperation != "" {
		op, valid := ParseBoolOp(rec.BooleanOperation)
		if !valid {
			b.log.Warn("unknown boolean operation, using difference",
				zap.String("component", c.Name), zap.String("op", rec.BooleanOperation))
		}
		c.Op = op
	}

	if rec.Shape != "" {
		parsed, err := b.parser.Parse(rec.Shape)
		if err != nil {
			b.log.Warn("failed to parse component shape",
				zap.String("component", c.Name), zap.Error(err))
		} else if sh, ok := parsed.(shape.Shape); ok {
			c.Shape = sh
		} else {
			b.log.Warn("component shape is not 3D",
				zap.String("component", c.Name), zap.String("shape", rec.Shape))
		}
	}

	switch {
	case rec.Material != "":
		c.Material = b.lookupMaterial(c.Name, rec.Material)
	case len(rec.Materials) > 0:
		// Inline lists on components bind the first entry only.
		c.Material = b.lookupMaterial(c.Name, rec.Materials[0].Name)
	case rec.Template != "":
		b.resolveTemplate(c, parentSection)
	default:
		b.log.Warn("component carries no material and no template",
			zap.String("component", c.Name))
		if c.Shape == nil {
			c.State = ResolutionUnresolved
		}
	}
	return c
}

// resolveTemplate fills the component's shape, material, and position from
// the template variant matching the parent section. Resolution is partial
// by design: whatever the variant provides is applied, and a miss leaves
// the component unresolved rather than failing the build.
func (b *Builder) resolveTemplate(c *Component, parentSection string) {
	ref, ok := parseTemplateRef(c.TemplateRef, b.log)
	if !ok {
		b.log.Warn("malformed template reference",
			zap.String("component", c.Name), zap.String("reference", c.TemplateRef))
		c.State = ResolutionUnresolved
		return
	}

	variant, ok := b.library.variantFor(ref.Name, parentSection)
	if !ok {
		b.log.Warn("template has no variant for section",
			zap.String("component", c.Name),
			zap.String("template", ref.Name),
			zap.String("section", parentSection))
		c.State = ResolutionUnresolved
		return
	}

	c.State = ResolutionTemplate
	c.Position = ref.Position

	if variant.Shape != "" {
		// The variant's shape is written at the origin; substitute the
		// instance position before parsing.
		placed := strings.ReplaceAll(variant.Shape, "[0,0,0]", "["+ref.PositionRaw+"]")
		parsed, err := b.parser.Parse(placed)
		if err != nil {
			b.log.Warn("failed to parse template shape",
				zap.String("template", ref.Name),
				zap.String("shape", placed), zap.Error(err))
		} else if sh, ok := parsed.(shape.Shape); ok {
			c.Shape = sh
		} else {
			b.log.Warn("template shape is not 3D",
				zap.String("template", ref.Name), zap.String("shape", placed))
		}
	}
	if len(variant.Materials) > 0 {
		c.Material = b.lookupMaterial(c.Name, variant.Materials[0].Name)
	}
}

// bindMaterials binds a section's material list: one entry becomes a plain
// material, several become a volume-fraction composite.
func (b *Builder) bindMaterials(sectionName string, refs []MaterialRef) material.Properties {
	switch len(refs) {
	case 0:
		return nil
	case 1:
		return b.lookupMaterial(sectionName, refs[0].Name)
	}

	composite := material.NewComposite(sectionName, b.log)
	bound := 0
	for _, ref := range refs {
		m, ok := b.registry.Get(ref.Name)
		if !ok {
			b.log.Warn("composite component material not found",
				zap.String("section", sectionName), zap.String("material", ref.Name))
			continue
		}
		fraction := ref.Percentage
		if fraction == 0 {
			fraction = 1.0
		}
		composite.AddComponent(m, fraction)
		bound++
	}
	if bound == 0 {
		return nil
	}
	return composite
}

// lookupMaterial fetches a registered material, logging a miss.
func (b *Builder) lookupMaterial(owner, name string) material.Properties {
	if name == "" {
		return nil
	}
	m, ok := b.registry.Get(name)
	if !ok {
		b.log.Warn("material not found",
			zap.String("owner", owner), zap.String("material", name))
		return nil
	}
	return m
}
