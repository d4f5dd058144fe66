package terrain

import (
	"testing"
)

func TestBuildGridMinimal(t *testing.T) {
	m := BuildGrid(20, 20, 0, 0)

	if m.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", m.VertexCount())
	}
	if len(m.Indices) != 6 {
		t.Errorf("expected 6 indices, got %d", len(m.Indices))
	}
	if m.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", m.TriangleCount())
	}
	if len(m.Normals) != 4 || len(m.UVs) != 4 || len(m.Colors) != 4 {
		t.Errorf("attribute lengths mismatch: normals=%d uvs=%d colors=%d", len(m.Normals), len(m.UVs), len(m.Colors))
	}
	if m.Colors[0] != White {
		t.Errorf("expected white initial color, got %v", m.Colors[0])
	}

	wantPositions := [][3]float32{{-10, 0, -10}, {10, 0, -10}, {-10, 0, 10}, {10, 0, 10}}
	for i, want := range wantPositions {
		if m.Positions[i] != want {
			t.Errorf("position %d = %v, want %v", i, m.Positions[i], want)
		}
	}

	wantIndices := []uint32{3, 1, 2, 0, 2, 1}
	for i, want := range wantIndices {
		if m.Indices[i] != want {
			t.Errorf("index %d = %d, want %d", i, m.Indices[i], want)
		}
	}
}

func TestBuildGridSizing(t *testing.T) {
	tests := []struct {
		x, z uint32
	}{
		{0, 0}, {1, 0}, {0, 1}, {3, 5}, {10, 10}, {31, 2},
	}
	for _, tt := range tests {
		m := BuildGrid(8, 4, tt.x, tt.z)
		wantV := int((tt.x + 2) * (tt.z + 2))
		wantI := int(6 * (tt.x + 1) * (tt.z + 1))
		if m.VertexCount() != wantV {
			t.Errorf("subdiv (%d,%d): vertices = %d, want %d", tt.x, tt.z, m.VertexCount(), wantV)
		}
		if len(m.Indices) != wantI {
			t.Errorf("subdiv (%d,%d): indices = %d, want %d", tt.x, tt.z, len(m.Indices), wantI)
		}
		for i, idx := range m.Indices {
			if int(idx) >= wantV {
				t.Fatalf("subdiv (%d,%d): index %d out of range: %d", tt.x, tt.z, i, idx)
			}
		}
	}
}

func TestBuildGridExtentsAndAttributes(t *testing.T) {
	m := BuildGrid(6, 4, 2, 1)
	b := m.Bounds()

	if b.Min != [3]float32{-3, 0, -2} || b.Max != [3]float32{3, 0, 2} {
		t.Errorf("bounds = %+v, want [-3,0,-2]..[3,0,2]", b)
	}

	for i, n := range m.Normals {
		if n != [3]float32{0, 1, 0} {
			t.Errorf("normal %d = %v, want +Y", i, n)
		}
	}
	for i, uv := range m.UVs {
		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			t.Errorf("uv %d out of range: %v", i, uv)
		}
	}

	// First vertex sits at -Z, so v is flipped to 1.
	if m.UVs[0] != [2]float32{0, 1} {
		t.Errorf("first uv = %v, want [0 1]", m.UVs[0])
	}
	if last := m.UVs[len(m.UVs)-1]; last != [2]float32{1, 0} {
		t.Errorf("last uv = %v, want [1 0]", last)
	}
}

func TestExtrema(t *testing.T) {
	e := NewExtrema()
	if !e.Empty() {
		t.Error("new extrema should be empty")
	}
	for _, h := range []float32{3, -1, 7, 2} {
		e.Add(h)
	}
	if e.Min != -1 || e.Max != 7 {
		t.Errorf("extrema = %+v, want {-1 7}", e)
	}

	other := NewExtrema()
	other.Add(-5)
	merged := e.Merge(other)
	if merged.Min != -5 || merged.Max != 7 {
		t.Errorf("merged = %+v, want {-5 7}", merged)
	}
	if got := e.Merge(NewExtrema()); got != e {
		t.Errorf("merging empty changed extrema: %+v", got)
	}
}

func TestMeshStats(t *testing.T) {
	s := MeshStats(BuildGrid(2, 2, 1, 1))
	if s.Vertices != 9 || s.Triangles != 8 {
		t.Errorf("stats = %+v", s)
	}
	if s.String() == "" {
		t.Error("empty stats string")
	}
}
