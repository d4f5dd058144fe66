package terrain

import (
	"fmt"

	pmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// Heightmap answers height queries against a finished grid mesh, for
// placing objects on the plane.
type Heightmap struct {
	Width  float32
	Length float32
	NX, NZ int // vertices per row and column

	heights []float32
}

// NewHeightmap captures the heights of a grid built with BuildGrid. Later
// changes to m are not seen.
func NewHeightmap(m *Mesh, width, length float32, xSubdiv, zSubdiv uint32) (*Heightmap, error) {
	nx := int(xSubdiv) + 2
	nz := int(zSubdiv) + 2
	if len(m.Positions) != nx*nz {
		return nil, fmt.Errorf("mesh has %d vertices, grid needs %d", len(m.Positions), nx*nz)
	}

	heights := make([]float32, len(m.Positions))
	for i, p := range m.Positions {
		heights[i] = p[1]
	}
	return &Heightmap{Width: width, Length: length, NX: nx, NZ: nz, heights: heights}, nil
}

// Contains reports whether the plane-local point lies on the grid.
func (h *Heightmap) Contains(x, z float32) bool {
	return pmath.CenteredAABB(h.Width, h.Length).Contains(pmath.Vec2{X: x, Y: z})
}

// At returns the height of vertex (i, j).
func (h *Heightmap) At(i, j int) float32 {
	return h.heights[j*h.NX+i]
}

// HeightAt returns the bilinearly interpolated height at a plane-local
// position. Points off the grid are clamped to its border.
func (h *Heightmap) HeightAt(x, z float32) float32 {
	// Convert plane coordinates to fractional vertex coordinates
	fx := (x/h.Width + 0.5) * float32(h.NX-1)
	fz := (z/h.Length + 0.5) * float32(h.NZ-1)
	fx = pmath.Clamp(fx, 0, float32(h.NX-1))
	fz = pmath.Clamp(fz, 0, float32(h.NZ-1))

	i := min(int(fx), h.NX-2)
	j := min(int(fz), h.NZ-2)
	tx := fx - float32(i)
	tz := fz - float32(j)

	// North edge (lower Z) then south edge, then between them
	north := pmath.Lerp(h.At(i, j), h.At(i+1, j), tx)
	south := pmath.Lerp(h.At(i, j+1), h.At(i+1, j+1), tx)
	return pmath.Lerp(north, south, tz)
}
