package plane

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-terrain/internal/engine/easing"
	"github.com/Faultbox/midgard-terrain/internal/engine/modifier"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

func TestDefaultSpec(t *testing.T) {
	s := Default()

	assert.Equal(t, DefaultName, s.Name)
	assert.Equal(t, [3]float32{}, s.Origin)
	assert.Equal(t, Dimensions{Width: 20, Length: 20}, s.Dimensions)
	assert.Equal(t, Subdivisions{}, s.Subdivisions)
	assert.Empty(t, s.Modifiers)
	assert.True(t, s.Active)
	assert.NoError(t, s.Validate())
	assert.EqualValues(t, 4, s.VertexCount())

	b := s.Bounds()
	assert.Equal(t, float32(-10), b.MinX)
	assert.Equal(t, float32(10), b.MaxZ)
}

func TestValidateReportsFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Spec)
		field  string
	}{
		{"zero width", func(s *Spec) { s.Dimensions.Width = 0 }, "dimensions.width"},
		{"negative length", func(s *Spec) { s.Dimensions.Length = -1 }, "dimensions.length"},
		{"nan width", func(s *Spec) { s.Dimensions.Width = math32.NaN() }, "dimensions.width"},
		{"infinite origin", func(s *Spec) { s.Origin[1] = math32.Inf(1) }, "origin[1]"},
		{"huge grid", func(s *Spec) { s.Subdivisions = Subdivisions{X: 1 << 16, Z: 1 << 16} }, "subdivisions"},
		{"empty modifier", func(s *Spec) { s.Modifiers = []modifier.Spec{{}} }, "modifiers[0]"},
		{"bad easing", func(s *Spec) {
			s.Modifiers = []modifier.Spec{
				modifier.EasingOf(easing.Of(easing.SmoothStep)),
				modifier.EasingOf(easing.Easing{Kind: "wobble"}),
			}
		}, "modifiers[1]"},
		{"inverted color range", func(s *Spec) {
			s.Colors.Ranges = []terrain.ColorRange{{From: 5, To: 1, Color: terrain.FlatColor(terrain.White)}}
		}, "colors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)

			err := s.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %T", err)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Equal(t, DefaultName, cfgErr.Plane)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	s := Default()
	s.Dimensions = Dimensions{}
	s.Modifiers = []modifier.Spec{{}}

	err := s.Validate()
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Len(t, joined.Unwrap(), 3)
	assert.ErrorIs(t, err, modifier.ErrNoVariant)
}

func TestDocumentValidate(t *testing.T) {
	bad := Default()
	bad.Name = "bad"
	bad.Dimensions.Width = -2

	doc := &Document{Planes: []Spec{Default(), bad}}
	err := doc.Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "bad", cfgErr.Plane)

	assert.NoError(t, (&Document{}).Validate())
}
