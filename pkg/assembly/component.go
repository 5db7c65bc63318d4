// Package assembly models the physical hierarchy of a package description:
// sections (stacked regions such as substrate or die layers) containing
// components, with template references resolved against a template library
// and container sections sized from the union of their children.
package assembly

import (
	"github.com/btdlab/thermkit/pkg/geom"
	"github.com/btdlab/thermkit/pkg/material"
	"github.com/btdlab/thermkit/pkg/shape"
)

// ComponentType classifies sections and components by their role in the
// package stack.
type ComponentType string

const (
	TypeBGA        ComponentType = "bga"
	TypeSubstrate  ComponentType = "substrate"
	TypeMiddle     ComponentType = "middle"
	TypeInterposer ComponentType = "interposer"
	TypeDie        ComponentType = "die"
	TypeTSV        ComponentType = "tsv"
	TypeVia        ComponentType = "via"
	TypeBump       ComponentType = "bump"
	TypeTrace      ComponentType = "trace"
	TypePowerCube  ComponentType = "powerCube"
	TypeUnknown    ComponentType = "unknown"
)

// ParseComponentType maps a type string to its enum value. Unrecognized
// strings map to TypeUnknown; the caller decides whether to log.
func ParseComponentType(s string) (ComponentType, bool) {
	switch t := ComponentType(s); t {
	case TypeBGA, TypeSubstrate, TypeMiddle, TypeInterposer, TypeDie,
		TypeTSV, TypeVia, TypeBump, TypeTrace, TypePowerCube, TypeUnknown:
		return t, true
	default:
		return TypeUnknown, false
	}
}

// BoolOp is the boolean operation a component applies against its parent
// section's solid.
type BoolOp string

const (
	OpUnion        BoolOp = "union"
	OpDifference   BoolOp = "difference"
	OpIntersection BoolOp = "intersection"
)

// ParseBoolOp returns the operation for s, or the default difference when s
// is not a recognized operation.
func ParseBoolOp(s string) (BoolOp, bool) {
	switch op := BoolOp(s); op {
	case OpUnion, OpDifference, OpIntersection:
		return op, true
	default:
		return OpDifference, false
	}
}

// ResolutionState tracks how a component got (or failed to get) its shape
// and material.
type ResolutionState int

const (
	// ResolutionExplicit means shape and material were given inline.
	ResolutionExplicit ResolutionState = iota
	// ResolutionTemplate means they were filled in from a template variant.
	ResolutionTemplate
	// ResolutionUnresolved means a template reference could not be resolved;
	// the component is kept but carries no geometry.
	ResolutionUnresolved
)

func (s ResolutionState) String() string {
	switch s {
	case ResolutionExplicit:
		return "explicit"
	case ResolutionTemplate:
		return "template"
	case ResolutionUnresolved:
		return "unresolved"
	default:
		return "invalid"
	}
}

// Component is one element inside a section: a bump, via, TSV or similar,
// either fully described inline or instantiated from a template.
type Component struct {
	Name        string
	Type        ComponentType
	TemplateRef string // raw reference string, empty for inline components
	State       ResolutionState

	Shape    shape.Shape
	Material material.Properties

	Position geom.Vec3
	Rotation float64
	Scale    geom.Vec3

	Op          BoolOp
	Description string
}

// BoundingBox returns the component shape's bounds. Unresolved components
// have no geometry and report false.
func (c *Component) BoundingBox() (geom.Box3, bool) {
	if c.Shape == nil {
		return geom.Box3{}, false
	}
	return c.Shape.BoundingBox(), true
}
