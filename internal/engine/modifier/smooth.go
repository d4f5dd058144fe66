package modifier

import (
	pmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

func (m *SmoothEdge) applyArea(positions [][3]float32, edges []pmath.EdgeLine) map[int]float32 {
	if len(edges) == 0 {
		return nil
	}

	out := make(map[int]float32)
	for i, p := range positions {
		xz := pmath.Vec3From(p).XZ()
		edge, d := nearest(edges, xz)
		if m.OutsideOnly && edge.Inside(xz) {
			continue
		}

		var blend float32
		switch {
		case m.Radius > 0 && d < m.Radius:
			blend = m.Curve.Apply(1 - d/m.Radius)
		case d == 0:
			// A zero radius only reaches vertices lying on the edge.
			blend = m.Curve.Apply(1)
		default:
			continue
		}
		out[i] = pmath.Lerp(p[1], edge.Height, blend)
	}
	return out
}

// nearest returns the closest edge to p and its distance. Ties go to the
// earlier edge.
func nearest(edges []pmath.EdgeLine, p pmath.Vec2) (pmath.EdgeLine, float32) {
	best := edges[0]
	bestDist := best.Distance(p)
	for _, e := range edges[1:] {
		if d := e.Distance(p); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}
