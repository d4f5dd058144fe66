package main

import (
	"testing"

	"github.com/Faultbox/midgard-terrain/internal/engine/plane"
)

func TestMeshFileName(t *testing.T) {
	tests := []struct {
		name string
		id   uint32
		want string
	}{
		{"Default Plane", 1, "default_plane_1.pmsh"},
		{"north-shore_2", 7, "north-shore_2_7.pmsh"},
		{"", 3, "plane_3.pmsh"},
		{"Île", 2, "_le_2.pmsh"},
	}
	for _, tt := range tests {
		if got := meshFileName(tt.name, plane.ID(tt.id)); got != tt.want {
			t.Errorf("meshFileName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
