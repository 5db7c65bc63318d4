// Package material models temperature-dependent thermal materials: single
// materials sampled at discrete temperature points with linear interpolation
// between them, volume-fraction composites, and a registry keyed by name.
package material

import (
	"sort"

	"go.uber.org/zap"
)

// DefaultTemperature is the ambient reference temperature in kelvin used
// when a caller does not care about a specific operating point.
const DefaultTemperature = 293.15

// Conductivity is a thermal conductivity in W/(m*K), split per axis for
// anisotropic materials.
type Conductivity struct {
	X float64
	Y float64
	Z float64
}

// Isotropic builds a conductivity with the same value on every axis.
func Isotropic(v float64) Conductivity {
	return Conductivity{X: v, Y: v, Z: v}
}

const isotropyTol = 1e-6

func (c Conductivity) IsIsotropic() bool {
	return abs(c.X-c.Y) < isotropyTol && abs(c.X-c.Z) < isotropyTol
}

func (c Conductivity) Average() float64 {
	return (c.X + c.Y + c.Z) / 3.0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TemperaturePoint holds the material properties sampled at one
// temperature.
type TemperaturePoint struct {
	Temperature  float64      // K
	Conductivity Conductivity // W/(m*K)
	Density      float64      // kg/m^3
	HeatCapacity float64      // J/(kg*K)
	Migration    float64      // electromigration coefficient
	Reflectance  float64      // solar reflectance
}

// Material is a named material whose properties vary with temperature.
// Properties between sample points are linearly interpolated; queries
// outside the sampled range clamp to the nearest point.
type Material struct {
	name   string
	kind   string
	points []TemperaturePoint // kept sorted by temperature
}

func New(name, kind string) *Material {
	if kind == "" {
		kind = "thermal"
	}
	return &Material{name: name, kind: kind}
}

func (m *Material) Name() string { return m.name }
func (m *Material) Kind() string { return m.kind }

// AddPoint inserts a temperature sample. A sample at an existing
// temperature replaces the previous one.
func (m *Material) AddPoint(p TemperaturePoint) {
	for i := range m.points {
		if m.points[i].Temperature == p.Temperature {
			m.points[i] = p
			return
		}
	}
	m.points = append(m.points, p)
	sort.Slice(m.points, func(i, j int) bool {
		return m.points[i].Temperature < m.points[j].Temperature
	})
}

// Points returns a copy of the temperature samples in ascending order.
func (m *Material) Points() []TemperaturePoint {
	out := make([]TemperaturePoint, len(m.points))
	copy(out, m.points)
	return out
}

func (m *Material) PointCount() int { return len(m.points) }

// TemperatureDependent reports whether the material has more than one
// sample and therefore actually varies with temperature.
func (m *Material) TemperatureDependent() bool { return len(m.points) > 1 }

// TemperatureRange returns the sampled temperature span, or (0, 0) when no
// samples exist.
func (m *Material) TemperatureRange() (min, max float64) {
	if len(m.points) == 0 {
		return 0, 0
	}
	return m.points[0].Temperature, m.points[len(m.points)-1].Temperature
}

// ConductivityAt interpolates the conductivity at the given temperature,
// component by component. Without samples it returns the zero conductivity.
func (m *Material) ConductivityAt(temperature float64) Conductivity {
	return Conductivity{
		X: m.scalarAt(temperature, func(p TemperaturePoint) float64 { return p.Conductivity.X }),
		Y: m.scalarAt(temperature, func(p TemperaturePoint) float64 { return p.Conductivity.Y }),
		Z: m.scalarAt(temperature, func(p TemperaturePoint) float64 { return p.Conductivity.Z }),
	}
}

func (m *Material) DensityAt(temperature float64) float64 {
	return m.scalarAt(temperature, func(p TemperaturePoint) float64 { return p.Density })
}

func (m *Material) HeatCapacityAt(temperature float64) float64 {
	return m.scalarAt(temperature, func(p TemperaturePoint) float64 { return p.HeatCapacity })
}

func (m *Material) MigrationAt(temperature float64) float64 {
	return m.scalarAt(temperature, func(p TemperaturePoint) float64 { return p.Migration })
}

func (m *Material) ReflectanceAt(temperature float64) float64 {
	return m.scalarAt(temperature, func(p TemperaturePoint) float64 { return p.Reflectance })
}

// scalarAt is the shared linear interpolation over the sorted samples.
func (m *Material) scalarAt(temperature float64, get func(TemperaturePoint) float64) float64 {
	switch len(m.points) {
	case 0:
		return 0
	case 1:
		return get(m.points[0])
	}
	if temperature <= m.points[0].Temperature {
		return get(m.points[0])
	}
	last := m.points[len(m.points)-1]
	if temperature >= last.Temperature {
		return get(last)
	}
	for i := 0; i < len(m.points)-1; i++ {
		p1, p2 := m.points[i], m.points[i+1]
		if temperature < p1.Temperature || temperature > p2.Temperature {
			continue
		}
		weight := (temperature - p1.Temperature) / (p2.Temperature - p1.Temperature)
		v1, v2 := get(p1), get(p2)
		return v1 + weight*(v2-v1)
	}
	return get(last)
}

// Properties is the read side shared by single and composite materials.
type Properties interface {
	Name() string
	ConductivityAt(temperature float64) Conductivity
	DensityAt(temperature float64) float64
	HeatCapacityAt(temperature float64) float64
}

var (
	_ Properties = (*Material)(nil)
	_ Properties = (*Composite)(nil)
)

// logger returns l or a nop logger, so constructors accept nil.
func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
