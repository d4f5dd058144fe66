package terrain

import (
	"math"
	"testing"
)

func TestHeightmapInterpolation(t *testing.T) {
	m := BuildGrid(2, 2, 0, 0)
	// Corners: (-1,-1)=0 (1,-1)=2 (-1,1)=4 (1,1)=6
	for i := range m.Positions {
		m.Positions[i][1] = float32(2 * i)
	}

	h, err := NewHeightmap(m, 2, 2, 0, 0)
	if err != nil {
		t.Fatalf("NewHeightmap failed: %v", err)
	}

	tests := []struct {
		x, z float32
		want float32
	}{
		{-1, -1, 0},
		{1, -1, 2},
		{-1, 1, 4},
		{1, 1, 6},
		{0, 0, 3},
		{0, -1, 1},
		{-5, -5, 0}, // clamped
		{5, 5, 6},   // clamped
	}
	for _, tt := range tests {
		if got := h.HeightAt(tt.x, tt.z); math.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("HeightAt(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}

	if !h.Contains(1, -1) || h.Contains(1.5, 0) {
		t.Error("Contains should accept the border and reject outside points")
	}
}

func TestHeightmapMatchesVertices(t *testing.T) {
	m := BuildGrid(8, 4, 3, 1)
	for i := range m.Positions {
		m.Positions[i][1] = m.Positions[i][0]*0.5 - m.Positions[i][2]
	}

	h, err := NewHeightmap(m, 8, 4, 3, 1)
	if err != nil {
		t.Fatalf("NewHeightmap failed: %v", err)
	}
	for i, p := range m.Positions {
		if got := h.HeightAt(p[0], p[2]); math.Abs(float64(got-p[1])) > 1e-5 {
			t.Errorf("vertex %d: HeightAt = %v, want %v", i, got, p[1])
		}
	}
}

func TestHeightmapSizeMismatch(t *testing.T) {
	if _, err := NewHeightmap(BuildGrid(2, 2, 1, 1), 2, 2, 0, 0); err == nil {
		t.Error("expected error for mismatched subdivisions")
	}
}
