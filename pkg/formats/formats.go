// Package formats provides binary containers for generated terrain data.
package formats

// Note: PMSH (plane mesh) is implemented in mesh.go
