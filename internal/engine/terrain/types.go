// Package terrain builds flat grid meshes and colors finished heights.
package terrain

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mesh holds parallel vertex attribute slices and a triangle list.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Colors    [][4]float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Bounds computes the bounding box of the mesh positions.
func (m *Mesh) Bounds() Bounds {
	b := Bounds{
		Min: [3]float32{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: [3]float32{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
	for _, p := range m.Positions {
		updateBounds(&b, p)
	}
	return b
}

// Extrema is the running min/max of vertex heights.
type Extrema struct {
	Min float32
	Max float32
}

// NewExtrema returns an accumulator that any height will replace.
func NewExtrema() Extrema {
	return Extrema{Min: math32.MaxFloat32, Max: -math32.MaxFloat32}
}

// Add folds h into the accumulator.
func (e *Extrema) Add(h float32) {
	if h > e.Max {
		e.Max = h
	}
	if h < e.Min {
		e.Min = h
	}
}

// Merge combines two accumulators.
func (e Extrema) Merge(other Extrema) Extrema {
	if other.Empty() {
		return e
	}
	e.Add(other.Min)
	e.Add(other.Max)
	return e
}

// Empty reports whether no height was added.
func (e Extrema) Empty() bool {
	return e.Min > e.Max
}

// Stats summarizes a mesh for logs and tooling.
type Stats struct {
	Vertices  int
	Triangles int
	Bounds    Bounds
}

// MeshStats returns the summary of m.
func MeshStats(m *Mesh) Stats {
	return Stats{
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		Bounds:    m.Bounds(),
	}
}

// String formats the stats on one line.
func (s Stats) String() string {
	return fmt.Sprintf("vertices=%d triangles=%d min=%v max=%v", s.Vertices, s.Triangles, s.Bounds.Min, s.Bounds.Max)
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
