package assembly

// Record types mirror the JSON layout of a package description document.
// They are plain data; the Builder turns them into Sections and Components.

// VecRecord is a position or scale triple.
type VecRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// MaterialRef names a registered material, optionally with a volume
// fraction for composite assignments.
type MaterialRef struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage,omitempty"`
}

// SectionRecord is the serialized form of one section.
type SectionRecord struct {
	Name      string            `json:"name"`
	Layer     string            `json:"layer,omitempty"`
	Type      string            `json:"type,omitempty"`
	Thickness float64           `json:"thickness,omitempty"`
	Offset    []float64         `json:"offset,omitempty"`
	Rotation  float64           `json:"rotation,omitempty"`
	Shape     string            `json:"shape,omitempty"`
	Children  []ComponentRecord `json:"children,omitempty"`
	Materials []MaterialRef     `json:"materials,omitempty"`
	Power     float64           `json:"power,omitempty"`
}

// ComponentRecord is the serialized form of one component. A component
// either carries shape/material inline or references a template.
type ComponentRecord struct {
	Name             string        `json:"name,omitempty"`
	Type             string        `json:"type,omitempty"`
	Template         string        `json:"template,omitempty"`
	Shape            string        `json:"shape,omitempty"`
	Position         *VecRecord    `json:"position,omitempty"`
	Rotation         float64       `json:"rotation,omitempty"`
	Scale            *VecRecord    `json:"scale,omitempty"`
	Material         string        `json:"material,omitempty"`
	Materials        []MaterialRef `json:"materials,omitempty"`
	BooleanOperation string        `json:"boolean_operation,omitempty"`
	Description      string        `json:"description,omitempty"`
}

// TemplateRecord is a reusable component definition. Each variant binds a
// shape and materials to the name of the section it applies in.
type TemplateRecord struct {
	Name   string                  `json:"name"`
	Shapes []TemplateVariantRecord `json:"shapes"`
}

// TemplateVariantRecord is one per-section variant of a template.
type TemplateVariantRecord struct {
	Section   string        `json:"section"`
	Shape     string        `json:"shape"`
	Materials []MaterialRef `json:"materials,omitempty"`
}
