package btd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/btdlab/thermkit/pkg/assembly"
)

const sampleDocument = `{
  "model_name": "flipchip_demo",
  "materials": [
    {
      "name": "Copper",
      "t_kx_ky_kz_rho_hc_em_ref_properties": [
        [293.15, 400, 400, 400, 8960, 385, 0.1, 0.3],
        [393.15, 390, 390, 390, 8940, 390, 0.1, 0.3]
      ]
    },
    {
      "name": "Underfill",
      "temperature_points": [
        {"temperature": 293.15, "kx": 0.5, "ky": 0.5, "kz": 0.5,
         "density": 1700, "heat_capacity": 1000}
      ]
    }
  ],
  "templates": [
    {
      "name": "C4bump",
      "shapes": [
        {
          "section": "BumpLayer",
          "shape": "cylinder([0,0,0], 40, 60)",
          "materials": [{"name": "Copper"}]
        }
      ]
    }
  ],
  "sections": [
    {
      "name": "BumpLayer",
      "type": "bump",
      "thickness": 60,
      "shape": "cube([0,0,0], 0, 0, 0)",
      "materials": [
        {"name": "Copper", "percentage": 0.2},
        {"name": "Underfill", "percentage": 0.8}
      ],
      "children": [
        {"name": "b0", "template": "C4bump([100,100,0])"},
        {"name": "b1", "template": "C4bump([300,100,0])"}
      ]
    },
    {
      "name": "Die0",
      "type": "die",
      "thickness": 200,
      "shape": "cube([200,100,130], 800, 600, 200)",
      "materials": [{"name": "Copper"}],
      "power": 2.5
    }
  ]
}`

func TestLoader_Parse(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))
	model, err := loader.Parse([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "flipchip_demo", model.Name)
	assert.Equal(t, 2, model.Materials.Len())
	assert.Equal(t, 1, model.Templates.Len())
	require.Len(t, model.Sections, 2)
}

func TestLoader_MaterialTables(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))
	model, err := loader.Parse([]byte(sampleDocument))
	require.NoError(t, err)

	copper, ok := model.Materials.Get("Copper")
	require.True(t, ok)
	assert.Equal(t, 2, copper.PointCount())
	// Midpoint interpolation between the two packed rows.
	assert.InDelta(t, 395.0, copper.ConductivityAt(343.15).X, 1e-9)
	assert.InDelta(t, 8950.0, copper.DensityAt(343.15), 1e-9)

	underfill, ok := model.Materials.Get("Underfill")
	require.True(t, ok)
	assert.Equal(t, 1, underfill.PointCount())
	assert.InDelta(t, 0.5, underfill.ConductivityAt(500).Z, 1e-9)
}

func TestLoader_TemplateResolutionAcrossTables(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))
	model, err := loader.Parse([]byte(sampleDocument))
	require.NoError(t, err)

	bumps, ok := model.SectionByName("BumpLayer")
	require.True(t, ok)
	require.Len(t, bumps.Children, 2)
	for _, c := range bumps.Children {
		assert.Equal(t, assembly.ResolutionTemplate, c.State)
		require.NotNil(t, c.Shape)
		require.NotNil(t, c.Material)
		assert.Equal(t, "Copper", c.Material.Name())
	}
	assert.Equal(t, 100.0, bumps.Children[0].Position.X)
	assert.Equal(t, 300.0, bumps.Children[1].Position.X)
}

func TestLoader_ContainerBackfillFromDocument(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))
	model, err := loader.Parse([]byte(sampleDocument))
	require.NoError(t, err)

	bumps, _ := model.SectionByName("BumpLayer")
	bb, ok := bumps.BoundingBox()
	require.True(t, ok)
	// Two r=40 bumps at x=100 and x=300 span 60..340 in X, 80 in Y, 60 in Z.
	assert.InDelta(t, 280.0, bb.Width(), 1e-9)
	assert.InDelta(t, 80.0, bb.Depth(), 1e-9)
	assert.InDelta(t, 60.0, bb.Height(), 1e-9)
}

func TestLoader_SectionScalars(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))
	model, err := loader.Parse([]byte(sampleDocument))
	require.NoError(t, err)

	die, ok := model.SectionByName("Die0")
	require.True(t, ok)
	assert.Equal(t, assembly.TypeDie, die.Type)
	assert.Equal(t, 200.0, die.Thickness)
	assert.True(t, die.HasPower)
	assert.Equal(t, 2.5, die.TotalPower)
	_, single := die.SingleMaterial()
	assert.True(t, single)
}

func TestLoader_Errors(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))

	_, err := loader.Parse([]byte("{not json"))
	assert.Error(t, err)

	// Missing material name fails record validation.
	_, err = loader.Parse([]byte(`{"materials":[
		{"t_kx_ky_kz_rho_hc_em_ref_properties":[[293.15,1,1,1,1,1,0,0]]}]}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	// Short property row fails record validation.
	_, err = loader.Parse([]byte(`{"materials":[
		{"name":"M","t_kx_ky_kz_rho_hc_em_ref_properties":[[293.15,1,1]]}]}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	// A material with neither table form is rejected.
	_, err = loader.Parse([]byte(`{"materials":[{"name":"M"}]}`))
	assert.ErrorIs(t, err, ErrNoTemperaturePoints)
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))
	model, err := loader.Load(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	assert.Equal(t, "flipchip_demo", model.Name)
}

func TestLoader_EmptyDocument(t *testing.T) {
	loader := NewLoader(zaptest.NewLogger(t))
	model, err := loader.Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, model.Sections)
	assert.Equal(t, 0, model.Materials.Len())
}
