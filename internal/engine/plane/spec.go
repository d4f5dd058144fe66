// Package plane assembles terrain planes from their serializable specs.
//
// A Spec is validated, resolved into modifiers, and run through the build
// pipeline by an Assembler. A Registry tracks spawned planes and rebuilds
// them when their spec changes.
package plane

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-terrain/internal/engine/modifier"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	pmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// MaxVertices caps the grid size a spec may request. Indices are uint32.
const MaxVertices = 1 << 24

// DefaultName is the name given to planes created without one.
const DefaultName = "Default Plane"

// Subdivisions is the number of interior grid lines along each axis.
type Subdivisions struct {
	X uint32 `json:"x" yaml:"x"`
	Z uint32 `json:"z" yaml:"z"`
}

// Dimensions is the plane's extent along X (width) and Z (length).
type Dimensions struct {
	Width  float32 `json:"width" yaml:"width"`
	Length float32 `json:"length" yaml:"length"`
}

// Spec is the persisted description of one terrain plane.
type Spec struct {
	Name         string          `json:"name" yaml:"name"`
	Origin       [3]float32      `json:"origin" yaml:"origin"`
	Subdivisions Subdivisions    `json:"subdivisions" yaml:"subdivisions"`
	Dimensions   Dimensions      `json:"dimensions" yaml:"dimensions"`
	Modifiers    []modifier.Spec `json:"modifiers" yaml:"modifiers"`
	Colors       terrain.Colors  `json:"colors" yaml:"colors"`
	Active       bool            `json:"active" yaml:"active"`
}

// Default returns an active, flat 20x20 plane at the origin.
func Default() Spec {
	return Spec{
		Name:       DefaultName,
		Dimensions: Dimensions{Width: 20, Length: 20},
		Modifiers:  []modifier.Spec{},
		Active:     true,
	}
}

// Bounds returns the plane-local rectangle covered by the grid.
func (s Spec) Bounds() pmath.AABB {
	return pmath.CenteredAABB(s.Dimensions.Width, s.Dimensions.Length)
}

// VertexCount returns the number of vertices the grid will have.
func (s Spec) VertexCount() uint64 {
	return (uint64(s.Subdivisions.X) + 2) * (uint64(s.Subdivisions.Z) + 2)
}

// Geometry returns the geometry modifiers resolve against.
func (s Spec) Geometry() modifier.Plane {
	return modifier.Plane{Bounds: s.Bounds(), Origin: s.Origin}
}

// ConfigError reports an invalid field of a plane spec.
type ConfigError struct {
	Plane string // plane name
	Field string // dotted path, e.g. "modifiers[2]"
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("plane %q: %s: %v", e.Plane, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks the spec. Every invalid field is reported as a
// *ConfigError; several are joined with errors.Join.
func (s Spec) Validate() error {
	var errs []error
	fail := func(field string, err error) {
		errs = append(errs, &ConfigError{Plane: s.Name, Field: field, Err: err})
	}

	for i, v := range s.Origin {
		if !finite(v) {
			fail(fmt.Sprintf("origin[%d]", i), fmt.Errorf("must be finite, got %v", v))
		}
	}
	if !(s.Dimensions.Width > 0) || !finite(s.Dimensions.Width) {
		fail("dimensions.width", fmt.Errorf("must be positive, got %v", s.Dimensions.Width))
	}
	if !(s.Dimensions.Length > 0) || !finite(s.Dimensions.Length) {
		fail("dimensions.length", fmt.Errorf("must be positive, got %v", s.Dimensions.Length))
	}
	if n := s.VertexCount(); n > MaxVertices {
		fail("subdivisions", fmt.Errorf("grid of %d vertices exceeds %d", n, MaxVertices))
	}
	for i, m := range s.Modifiers {
		if err := m.Validate(); err != nil {
			fail(fmt.Sprintf("modifiers[%d]", i), err)
		}
	}
	if err := s.Colors.Validate(); err != nil {
		fail("colors", err)
	}

	return errors.Join(errs...)
}

// Document is a file holding several planes.
type Document struct {
	Planes []Spec `json:"planes" yaml:"planes"`
}

// Validate validates every plane in the document.
func (d *Document) Validate() error {
	var errs []error
	for _, p := range d.Planes {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
