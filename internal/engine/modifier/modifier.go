package modifier

import (
	"fmt"

	"github.com/Faultbox/midgard-terrain/internal/engine/easing"
	"github.com/Faultbox/midgard-terrain/internal/engine/noise"
	pmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// Modifier is a resolved pipeline stage. The set of implementations is
// closed: ApplyPoint, ApplyArea and InnerEdges switch over every variant,
// and a new variant must be added to all three.
type Modifier interface {
	Kind() Kind
	modifier()
}

// Easing reapplies an easing curve to the incoming height.
type Easing struct {
	Curve easing.Easing
}

// Noise adds or sets procedural noise sampled at world XZ.
type Noise struct {
	gen *noise.Generator
}

// TargetWanderNoise applies noise that fades out with distance from Target.
type TargetWanderNoise struct {
	gen        *noise.Generator
	Target     pmath.Vec2 // plane-local XZ
	Radius     float32
	Falloff    easing.Easing
	Region     pmath.AABB // square of influence around Target
	EdgeHeight float32
}

// FlatEdge forces heights inside Region to Height.
type FlatEdge struct {
	Region pmath.AABB
	Height float32
}

// FlatEdges forces heights inside any of Regions to Height.
type FlatEdges struct {
	Regions []pmath.AABB
	Height  float32
}

// SmoothEdge blends heights within Radius of an edge toward that edge's
// reference height. It only acts in the area pass.
type SmoothEdge struct {
	Radius      float32
	Curve       easing.Easing
	OutsideOnly bool
}

func (*Easing) Kind() Kind            { return KindEasing }
func (*Noise) Kind() Kind             { return KindNoise }
func (*TargetWanderNoise) Kind() Kind { return KindTargetWanderNoise }
func (*FlatEdge) Kind() Kind          { return KindFlatEdge }
func (*FlatEdges) Kind() Kind         { return KindFlatEdges }
func (*SmoothEdge) Kind() Kind        { return KindSmoothEdge }

func (*Easing) modifier()            {}
func (*Noise) modifier()             {}
func (*TargetWanderNoise) modifier() {}
func (*FlatEdge) modifier()          {}
func (*FlatEdges) modifier()         {}
func (*SmoothEdge) modifier()        {}

// ApplyPoint returns the new height of the vertex at pos on a plane placed
// at origin. It reads nothing but its arguments and the modifier.
func ApplyPoint(m Modifier, pos, origin [3]float32) float32 {
	switch m := m.(type) {
	case *Easing:
		return m.Curve.Apply(pos[1])
	case *Noise:
		world := pmath.Vec3From(pos).Add(pmath.Vec3From(origin))
		return m.gen.Apply(pos[1], world.X, world.Z)
	case *TargetWanderNoise:
		return m.applyPoint(pos)
	case *FlatEdge:
		if m.Region.Contains(pmath.Vec3From(pos).XZ()) {
			return m.Height
		}
		return pos[1]
	case *FlatEdges:
		xz := pmath.Vec3From(pos).XZ()
		for _, r := range m.Regions {
			if r.Contains(xz) {
				return m.Height
			}
		}
		return pos[1]
	case *SmoothEdge:
		return pos[1]
	}
	panic(fmt.Sprintf("modifier: unhandled variant %T", m))
}

// ApplyArea returns height overrides keyed by vertex index. Vertices not in
// the map keep their height. positions is not modified.
func ApplyArea(m Modifier, positions [][3]float32, edges []pmath.EdgeLine) map[int]float32 {
	switch m := m.(type) {
	case *SmoothEdge:
		return m.applyArea(positions, edges)
	case *Easing, *Noise, *TargetWanderNoise, *FlatEdge, *FlatEdges:
		return nil
	}
	panic(fmt.Sprintf("modifier: unhandled variant %T", m))
}

// InnerEdges returns the boundary of the modifier's region against the
// plane rectangle, or nil for modifiers without a region.
func InnerEdges(m Modifier, plane pmath.AABB) []pmath.EdgeLine {
	switch m := m.(type) {
	case *TargetWanderNoise:
		return pmath.WithHeight(m.Region.ToEdges(plane), m.EdgeHeight)
	case *FlatEdge:
		return pmath.WithHeight(m.Region.ToEdges(plane), m.Height)
	case *FlatEdges:
		return pmath.WithHeight(pmath.ToEdges(m.Regions, plane), m.Height)
	case *Easing, *Noise, *SmoothEdge:
		return nil
	}
	panic(fmt.Sprintf("modifier: unhandled variant %T", m))
}

func (m *TargetWanderNoise) applyPoint(pos [3]float32) float32 {
	d := pmath.Vec3From(pos).XZ().Distance(m.Target)
	if !(d < m.Radius) {
		return pos[1]
	}
	w := m.Falloff.Apply(1 - d/m.Radius)
	return pmath.Lerp(pos[1], m.gen.Apply(pos[1], pos[0], pos[2]), w)
}
