// Package modifier implements the height modifier pipeline stages.
//
// A Spec is the serializable description of one stage. Resolve binds it to
// a plane's geometry and yields a Modifier that lives for one rebuild.
package modifier

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-terrain/internal/engine/easing"
	"github.com/Faultbox/midgard-terrain/internal/engine/noise"
	pmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// Kind names a modifier variant.
type Kind string

// Modifier kinds.
const (
	KindEasing            Kind = "easing"
	KindNoise             Kind = "noise"
	KindTargetWanderNoise Kind = "target_wander_noise"
	KindFlatEdge          Kind = "flat_edge"
	KindFlatEdges         Kind = "flat_edges"
	KindSmoothEdge        Kind = "smooth_edge"
)

// Kinds lists every variant.
var Kinds = []Kind{KindEasing, KindNoise, KindTargetWanderNoise, KindFlatEdge, KindFlatEdges, KindSmoothEdge}

// Side names one side of the plane. North is -Z.
type Side string

// Plane sides.
const (
	West  Side = "west"
	East  Side = "east"
	North Side = "north"
	South Side = "south"
)

// Errors returned by Spec validation.
var (
	ErrNoVariant    = errors.New("modifier has no variant set")
	ErrMultiVariant = errors.New("modifier has more than one variant set")
)

// Spec describes one pipeline stage. Exactly one field is set.
type Spec struct {
	Easing            *easing.Easing         `json:"easing,omitempty" yaml:"easing,omitempty"`
	Noise             *noise.Config          `json:"noise,omitempty" yaml:"noise,omitempty"`
	TargetWanderNoise *TargetWanderNoiseSpec `json:"target_wander_noise,omitempty" yaml:"target_wander_noise,omitempty"`
	FlatEdge          *FlatEdgeSpec          `json:"flat_edge,omitempty" yaml:"flat_edge,omitempty"`
	FlatEdges         *FlatEdgesSpec         `json:"flat_edges,omitempty" yaml:"flat_edges,omitempty"`
	SmoothEdge        *SmoothEdgeSpec        `json:"smooth_edge,omitempty" yaml:"smooth_edge,omitempty"`
}

// TargetWanderNoiseSpec is noise whose influence fades out with distance
// from a target point.
type TargetWanderNoiseSpec struct {
	Noise      noise.Config  `json:"noise" yaml:"noise"`
	Target     [2]float32    `json:"target" yaml:"target"` // relative to the plane, 0..1 on each axis
	Radius     float32       `json:"radius" yaml:"radius"`
	Falloff    easing.Easing `json:"falloff,omitempty" yaml:"falloff,omitempty"` // defaults to smooth_step
	EdgeHeight float32       `json:"edge_height,omitempty" yaml:"edge_height,omitempty"`
}

// FlatEdgeSpec flattens a strip along one side of the plane.
type FlatEdgeSpec struct {
	Side   Side    `json:"side" yaml:"side"`
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// FlatEdgesSpec flattens strips along several sides of the plane.
type FlatEdgesSpec struct {
	Sides  []Side  `json:"sides" yaml:"sides"`
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// SmoothEdgeSpec blends heights near edges toward the edge heights.
type SmoothEdgeSpec struct {
	Radius      float32       `json:"radius" yaml:"radius"`
	Easing      easing.Easing `json:"easing,omitempty" yaml:"easing,omitempty"` // defaults to smooth_step
	OutsideOnly bool          `json:"outside_only,omitempty" yaml:"outside_only,omitempty"`
}

// EasingOf wraps an easing curve in a Spec.
func EasingOf(e easing.Easing) Spec { return Spec{Easing: &e} }

// NoiseOf wraps a noise layer in a Spec.
func NoiseOf(cfg noise.Config) Spec { return Spec{Noise: &cfg} }

// TargetWanderNoiseOf wraps s in a Spec.
func TargetWanderNoiseOf(s TargetWanderNoiseSpec) Spec { return Spec{TargetWanderNoise: &s} }

// FlatEdgeOf wraps s in a Spec.
func FlatEdgeOf(s FlatEdgeSpec) Spec { return Spec{FlatEdge: &s} }

// FlatEdgesOf wraps s in a Spec.
func FlatEdgesOf(s FlatEdgesSpec) Spec { return Spec{FlatEdges: &s} }

// SmoothEdgeOf wraps s in a Spec.
func SmoothEdgeOf(s SmoothEdgeSpec) Spec { return Spec{SmoothEdge: &s} }

// Kind returns the variant that is set.
func (s Spec) Kind() (Kind, error) {
	var kinds []Kind
	if s.Easing != nil {
		kinds = append(kinds, KindEasing)
	}
	if s.Noise != nil {
		kinds = append(kinds, KindNoise)
	}
	if s.TargetWanderNoise != nil {
		kinds = append(kinds, KindTargetWanderNoise)
	}
	if s.FlatEdge != nil {
		kinds = append(kinds, KindFlatEdge)
	}
	if s.FlatEdges != nil {
		kinds = append(kinds, KindFlatEdges)
	}
	if s.SmoothEdge != nil {
		kinds = append(kinds, KindSmoothEdge)
	}
	switch len(kinds) {
	case 0:
		return "", ErrNoVariant
	case 1:
		return kinds[0], nil
	default:
		return "", fmt.Errorf("%w: %v", ErrMultiVariant, kinds)
	}
}

// Validate checks the variant parameters.
func (s Spec) Validate() error {
	kind, err := s.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case KindEasing:
		return s.Easing.Validate()
	case KindNoise:
		return s.Noise.Validate()
	case KindTargetWanderNoise:
		t := s.TargetWanderNoise
		var errs []error
		if err := t.Noise.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("noise: %w", err))
		}
		if err := t.Falloff.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("falloff: %w", err))
		}
		if !finite(t.Target[0]) || !finite(t.Target[1]) {
			errs = append(errs, fmt.Errorf("target must be finite, got %v", t.Target))
		}
		if !(t.Radius > 0) || !finite(t.Radius) {
			errs = append(errs, fmt.Errorf("radius must be positive, got %v", t.Radius))
		}
		return errors.Join(errs...)
	case KindFlatEdge:
		return validateStrip([]Side{s.FlatEdge.Side}, s.FlatEdge.Width, s.FlatEdge.Height)
	case KindFlatEdges:
		if len(s.FlatEdges.Sides) == 0 {
			return errors.New("flat_edges needs at least one side")
		}
		return validateStrip(s.FlatEdges.Sides, s.FlatEdges.Width, s.FlatEdges.Height)
	case KindSmoothEdge:
		var errs []error
		if err := s.SmoothEdge.Easing.Validate(); err != nil {
			errs = append(errs, err)
		}
		if s.SmoothEdge.Radius < 0 || !finite(s.SmoothEdge.Radius) {
			errs = append(errs, fmt.Errorf("radius must not be negative, got %v", s.SmoothEdge.Radius))
		}
		return errors.Join(errs...)
	}
	return nil
}

func validateStrip(sides []Side, width, height float32) error {
	var errs []error
	for _, side := range sides {
		switch side {
		case West, East, North, South:
		default:
			errs = append(errs, fmt.Errorf("unknown side %q", side))
		}
	}
	if !(width > 0) || !finite(width) {
		errs = append(errs, fmt.Errorf("width must be positive, got %v", width))
	}
	if !finite(height) {
		errs = append(errs, fmt.Errorf("height must be finite, got %v", height))
	}
	return errors.Join(errs...)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Plane is the geometry a Spec resolves against.
type Plane struct {
	Bounds pmath.AABB // plane-local rectangle
	Origin [3]float32 // world position
}

// Resolve binds s to the plane and returns the runtime modifier.
func (s Spec) Resolve(p Plane) (Modifier, error) {
	kind, err := s.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindEasing:
		return &Easing{Curve: *s.Easing}, nil
	case KindNoise:
		return &Noise{gen: noise.New(*s.Noise)}, nil
	case KindTargetWanderNoise:
		t := s.TargetWanderNoise
		target := pmath.Vec2{
			X: p.Bounds.MinX + t.Target[0]*p.Bounds.Width(),
			Y: p.Bounds.MinZ + t.Target[1]*p.Bounds.Length(),
		}
		return &TargetWanderNoise{
			gen:     noise.New(t.Noise),
			Target:  target,
			Radius:  t.Radius,
			Falloff: t.Falloff.OrDefault(easing.Of(easing.SmoothStep)),
			Region: pmath.AABB{
				MinX: target.X - t.Radius,
				MaxX: target.X + t.Radius,
				MinZ: target.Y - t.Radius,
				MaxZ: target.Y + t.Radius,
			},
			EdgeHeight: t.EdgeHeight,
		}, nil
	case KindFlatEdge:
		return &FlatEdge{
			Region: strip(p.Bounds, s.FlatEdge.Side, s.FlatEdge.Width),
			Height: s.FlatEdge.Height,
		}, nil
	case KindFlatEdges:
		regions := make([]pmath.AABB, 0, len(s.FlatEdges.Sides))
		for _, side := range s.FlatEdges.Sides {
			regions = append(regions, strip(p.Bounds, side, s.FlatEdges.Width))
		}
		return &FlatEdges{Regions: regions, Height: s.FlatEdges.Height}, nil
	case KindSmoothEdge:
		return &SmoothEdge{
			Radius:      s.SmoothEdge.Radius,
			Curve:       s.SmoothEdge.Easing.OrDefault(easing.Of(easing.SmoothStep)),
			OutsideOnly: s.SmoothEdge.OutsideOnly,
		}, nil
	}
	return nil, fmt.Errorf("unhandled modifier kind %q", kind)
}

// strip returns the band of the given width along one side of b.
func strip(b pmath.AABB, side Side, width float32) pmath.AABB {
	switch side {
	case West:
		return pmath.AABB{MinX: b.MinX, MaxX: b.MinX + width, MinZ: b.MinZ, MaxZ: b.MaxZ}
	case East:
		return pmath.AABB{MinX: b.MaxX - width, MaxX: b.MaxX, MinZ: b.MinZ, MaxZ: b.MaxZ}
	case North:
		return pmath.AABB{MinX: b.MinX, MaxX: b.MaxX, MinZ: b.MinZ, MaxZ: b.MinZ + width}
	default:
		return pmath.AABB{MinX: b.MinX, MaxX: b.MaxX, MinZ: b.MaxZ - width, MaxZ: b.MaxZ}
	}
}
