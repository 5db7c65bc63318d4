package material

import (
	"go.uber.org/zap"
)

// fractionTol is the tolerance applied when checking that volume fractions
// sum to one.
const fractionTol = 1e-6

// Component is one constituent of a composite with its volume fraction.
type Component struct {
	Material *Material
	Fraction float64
}

// Composite mixes several materials by volume fraction. Effective
// properties are the fraction-weighted averages of the components at the
// query temperature.
type Composite struct {
	name       string
	components []Component
	log        *zap.Logger
}

func NewComposite(name string, log *zap.Logger) *Composite {
	if name == "" {
		name = "Composite"
	}
	return &Composite{name: name, log: logger(log)}
}

func (c *Composite) Name() string            { return c.name }
func (c *Composite) Components() []Component { return append([]Component(nil), c.components...) }

// AddComponent appends a constituent. Fractions are checked at query and
// validation time, not here, so callers can assemble incrementally.
func (c *Composite) AddComponent(m *Material, fraction float64) {
	c.components = append(c.components, Component{Material: m, Fraction: fraction})
	c.log.Debug("added composite component",
		zap.String("composite", c.name),
		zap.String("material", m.Name()),
		zap.Float64("fraction", fraction))
}

// TotalFraction returns the sum of the component volume fractions.
func (c *Composite) TotalFraction() float64 {
	total := 0.0
	for _, comp := range c.components {
		total += comp.Fraction
	}
	return total
}

// ConductivityAt returns the fraction-weighted conductivity. A fraction sum
// away from one is logged but still honored.
func (c *Composite) ConductivityAt(temperature float64) Conductivity {
	if len(c.components) == 0 {
		c.log.Warn("conductivity queried on empty composite", zap.String("composite", c.name))
		return Conductivity{}
	}
	if total := c.TotalFraction(); abs(total-1.0) > fractionTol {
		c.log.Warn("composite fractions do not sum to one",
			zap.String("composite", c.name), zap.Float64("total", total))
	}
	var out Conductivity
	for _, comp := range c.components {
		k := comp.Material.ConductivityAt(temperature)
		out.X += k.X * comp.Fraction
		out.Y += k.Y * comp.Fraction
		out.Z += k.Z * comp.Fraction
	}
	return out
}

func (c *Composite) DensityAt(temperature float64) float64 {
	total := 0.0
	for _, comp := range c.components {
		total += comp.Material.DensityAt(temperature) * comp.Fraction
	}
	return total
}

func (c *Composite) HeatCapacityAt(temperature float64) float64 {
	total := 0.0
	for _, comp := range c.components {
		total += comp.Material.HeatCapacityAt(temperature) * comp.Fraction
	}
	return total
}
