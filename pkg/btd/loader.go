package btd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/btdlab/thermkit/pkg/assembly"
	"github.com/btdlab/thermkit/pkg/material"
)

var (
	// ErrInvalidDocument wraps structural failures reported by the record
	// validator.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrNoTemperaturePoints is returned for a material record that carries
	// neither packed rows nor unpacked points.
	ErrNoTemperaturePoints = errors.New("material has no temperature points")
)

// Model is the loaded form of a document: the three tables populated and
// every section built.
type Model struct {
	Name      string
	Materials *material.Registry
	Templates *assembly.Library
	Sections  []*assembly.Section
}

// SectionByName finds a built section by its name.
func (m *Model) SectionByName(name string) (*assembly.Section, bool) {
	for _, s := range m.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Loader decodes and builds BTD Thermal documents. Material table failures
// are fatal; section-level problems (bad shapes, missing materials,
// unresolved templates) are logged and the section is kept partial.
type Loader struct {
	log *zap.Logger
}

func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// LoadFile loads a document from disk.
func (l *Loader) LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load decodes and builds a document from a reader.
func (l *Loader) Load(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return l.Parse(data)
}

// Parse decodes, validates, and builds a document from raw JSON.
func (l *Loader) Parse(data []byte) (*Model, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return l.Build(&doc)
}

// Build turns a decoded document into a model. Tables populate in order:
// materials, templates, sections. Sections are built last so every
// template reference resolves against complete tables.
func (l *Loader) Build(doc *Document) (*Model, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	model := &Model{
		Name:      doc.ModelName,
		Materials: material.NewRegistry(l.log),
		Templates: assembly.NewLibrary(l.log),
	}

	for _, rec := range doc.Materials {
		m, err := buildMaterial(rec)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", rec.Name, err)
		}
		model.Materials.Add(m)
	}
	l.log.Info("materials loaded", zap.Int("count", model.Materials.Len()))

	for _, rec := range doc.Templates {
		model.Templates.Add(rec)
	}

	builder := assembly.NewBuilder(model.Materials, model.Templates, l.log)
	for _, rec := range doc.Sections {
		s := builder.BuildSection(rec)
		model.Sections = append(model.Sections, s)
		if unresolved := s.UnresolvedChildren(); len(unresolved) > 0 {
			l.log.Warn("section has unresolved components",
				zap.String("section", s.Name), zap.Int("count", len(unresolved)))
		}
	}
	l.log.Info("document built",
		zap.String("model", model.Name),
		zap.Int("sections", len(model.Sections)))
	return model, nil
}

// buildMaterial unpacks one material record. Packed rows win when both
// forms are present.
func buildMaterial(rec MaterialRecord) (*material.Material, error) {
	m := material.New(rec.Name, rec.Kind)

	switch {
	case len(rec.Properties) > 0:
		for _, row := range rec.Properties {
			if len(row) != 8 {
				return nil, fmt.Errorf("property row has %d values, want 8", len(row))
			}
			m.AddPoint(material.TemperaturePoint{
				Temperature:  row[0],
				Conductivity: material.Conductivity{X: row[1], Y: row[2], Z: row[3]},
				Density:      row[4],
				HeatCapacity: row[5],
				Migration:    row[6],
				Reflectance:  row[7],
			})
		}
	case len(rec.Points) > 0:
		for _, p := range rec.Points {
			m.AddPoint(material.TemperaturePoint{
				Temperature:  p.Temperature,
				Conductivity: material.Conductivity{X: p.Kx, Y: p.Ky, Z: p.Kz},
				Density:      p.Density,
				HeatCapacity: p.HeatCapacity,
				Migration:    p.Migration,
				Reflectance:  p.Reflectance,
			})
		}
	default:
		return nil, ErrNoTemperaturePoints
	}
	return m, nil
}
