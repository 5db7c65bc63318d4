package material

import "fmt"

// Severity indicates whether a finding blocks use of the material or is
// merely advisory.
type Severity int

const (
	SeverityError   Severity = iota // blocks use
	SeverityWarning                 // advisory
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Issue describes a single validation finding.
type Issue struct {
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
}

// HasErrors reports whether any issue in the slice is blocking.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks the material data for completeness. Negative sample
// temperatures and missing data are errors; suspicious property values are
// warnings.
func (m *Material) Validate() []Issue {
	var issues []Issue
	if m.name == "" {
		issues = append(issues, Issue{SeverityError, "material name is empty"})
	}
	if len(m.points) == 0 {
		issues = append(issues, Issue{SeverityError,
			fmt.Sprintf("material %q has no temperature data", m.name)})
		return issues
	}
	for _, p := range m.points {
		if p.Temperature < 0 {
			issues = append(issues, Issue{SeverityError,
				fmt.Sprintf("material %q: invalid temperature %vK", m.name, p.Temperature)})
		}
		if p.Density <= 0 {
			issues = append(issues, Issue{SeverityWarning,
				fmt.Sprintf("material %q: non-positive density at %vK", m.name, p.Temperature)})
		}
		if p.HeatCapacity <= 0 {
			issues = append(issues, Issue{SeverityWarning,
				fmt.Sprintf("material %q: non-positive heat capacity at %vK", m.name, p.Temperature)})
		}
	}
	return issues
}

// Validate checks the composite and all of its components. Fractions must
// be in (0, 1] and sum to one.
func (c *Composite) Validate() []Issue {
	var issues []Issue
	if len(c.components) == 0 {
		issues = append(issues, Issue{SeverityError,
			fmt.Sprintf("composite %q has no components", c.name)})
		return issues
	}
	if total := c.TotalFraction(); abs(total-1.0) > fractionTol {
		issues = append(issues, Issue{SeverityError,
			fmt.Sprintf("composite %q: fractions sum to %v, want 1.0", c.name, total)})
	}
	for _, comp := range c.components {
		if comp.Fraction <= 0 || comp.Fraction > 1 {
			issues = append(issues, Issue{SeverityError,
				fmt.Sprintf("composite %q: invalid fraction %v for %q", c.name, comp.Fraction, comp.Material.Name())})
		}
		issues = append(issues, comp.Material.Validate()...)
	}
	return issues
}
