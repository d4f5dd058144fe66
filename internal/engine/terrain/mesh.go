package terrain

// BuildGrid creates a flat grid centered on the origin in the XZ plane.
//
// The grid has (xSubdiv+2)*(zSubdiv+2) vertices laid out row by row with X
// varying fastest, and two triangles per cell. Normals all point up and are
// not recomputed when heights change later; colors start white. width and
// length must be positive.
func BuildGrid(width, length float32, xSubdiv, zSubdiv uint32) *Mesh {
	nx := xSubdiv + 2
	nz := zSubdiv + 2
	numVertices := int(nx * nz)
	numIndices := int((nx - 1) * (nz - 1) * 6)
	up := [3]float32{0, 1, 0}

	m := &Mesh{
		Positions: make([][3]float32, 0, numVertices),
		Normals:   make([][3]float32, 0, numVertices),
		UVs:       make([][2]float32, 0, numVertices),
		Colors:    make([][4]float32, 0, numVertices),
		Indices:   make([]uint32, 0, numIndices),
	}

	for j := uint32(0); j < nz; j++ {
		for i := uint32(0); i < nx; i++ {
			tx := float32(i) / float32(nx-1)
			tz := float32(j) / float32(nz-1)
			m.Positions = append(m.Positions, [3]float32{(tx - 0.5) * width, 0, (tz - 0.5) * length})
			m.Normals = append(m.Normals, up)
			m.UVs = append(m.UVs, [2]float32{tx, 1 - tz})
			m.Colors = append(m.Colors, White)
		}
	}

	for j := uint32(0); j < nz-1; j++ {
		for i := uint32(0); i < nx-1; i++ {
			quad := j*nx + i
			m.Indices = append(m.Indices,
				quad+nx+1, quad+1, quad+nx,
				quad, quad+nx, quad+1,
			)
		}
	}

	return m
}
