// Package btd loads BTD Thermal JSON documents: the materials table, the
// template table, and the section table, in that order. Loading populates
// a material registry and a template library first, then builds every
// section against them, so template resolution only ever reads fully
// populated tables.
package btd

import (
	"github.com/go-playground/validator/v10"

	"github.com/btdlab/thermkit/pkg/assembly"
)

// Document is the top-level JSON layout of a BTD Thermal description.
type Document struct {
	ModelName string                    `json:"model_name,omitempty"`
	Materials []MaterialRecord          `json:"materials,omitempty" validate:"dive"`
	Templates []assembly.TemplateRecord `json:"templates,omitempty"`
	Sections  []assembly.SectionRecord  `json:"sections,omitempty" validate:"dive"`
}

// MaterialRecord is one row of the materials table. Properties holds the
// packed per-temperature rows of the t_kx_ky_kz_rho_hc_em_ref_properties
// field: [temperature, kx, ky, kz, density, heat capacity, electrical
// migration, solar reflectance]. Points is the unpacked alternative; a
// record carries one or the other.
type MaterialRecord struct {
	Name       string             `json:"name" validate:"required"`
	Kind       string             `json:"kind,omitempty"`
	Properties [][]float64        `json:"t_kx_ky_kz_rho_hc_em_ref_properties,omitempty" validate:"omitempty,min=1,dive,len=8"`
	Points     []TemperaturePoint `json:"temperature_points,omitempty" validate:"omitempty,min=1,dive"`
}

// TemperaturePoint is the unpacked temperature-point form.
type TemperaturePoint struct {
	Temperature  float64 `json:"temperature" validate:"gte=0"`
	Kx           float64 `json:"kx"`
	Ky           float64 `json:"ky"`
	Kz           float64 `json:"kz"`
	Density      float64 `json:"density"`
	HeatCapacity float64 `json:"heat_capacity"`
	Migration    float64 `json:"electrical_migration,omitempty"`
	Reflectance  float64 `json:"solar_reflectance,omitempty"`
}

var docValidator = validator.New()

// Validate checks the document's structural constraints before any model
// construction happens.
func (d *Document) Validate() error {
	return docValidator.Struct(d)
}
