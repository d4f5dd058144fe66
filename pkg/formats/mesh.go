package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// PMSH format errors.
var (
	ErrInvalidMeshMagic       = errors.New("invalid mesh magic: expected 'PMSH'")
	ErrUnsupportedMeshVersion = errors.New("unsupported mesh version")
	ErrTruncatedMeshData      = errors.New("truncated mesh data")
)

// MeshMagic identifies PMSH files.
const MeshMagic = "PMSH"

// Current PMSH version.
const (
	MeshVersionMajor = 1
	MeshVersionMinor = 0
)

// maxMeshVertices bounds the counts accepted from a header.
const maxMeshVertices = 1 << 26

// MeshVersion represents the PMSH file version.
type MeshVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v MeshVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// MeshData holds parallel vertex attributes and a triangle index list.
//
// Layout on disk (little endian):
//
//	"PMSH" minor major
//	u32 vertex count, u32 index count
//	positions [3]f32, normals [3]f32, uvs [2]f32, colors [4]f32 per vertex
//	indices u32
type MeshData struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Colors    [][4]float32
	Indices   []uint32
}

// EncodeMesh writes m to w. All attribute slices must have the same length.
func EncodeMesh(w io.Writer, m *MeshData) error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.UVs) != n || len(m.Colors) != n {
		return fmt.Errorf("mesh attribute lengths differ: positions=%d normals=%d uvs=%d colors=%d",
			n, len(m.Normals), len(m.UVs), len(m.Colors))
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(MeshMagic)
	bw.WriteByte(MeshVersionMinor)
	bw.WriteByte(MeshVersionMajor)

	// binary.Write on a bufio.Writer only fails when the writer does, which
	// Flush reports below.
	binary.Write(bw, binary.LittleEndian, uint32(n))
	binary.Write(bw, binary.LittleEndian, uint32(len(m.Indices)))
	binary.Write(bw, binary.LittleEndian, m.Positions)
	binary.Write(bw, binary.LittleEndian, m.Normals)
	binary.Write(bw, binary.LittleEndian, m.UVs)
	binary.Write(bw, binary.LittleEndian, m.Colors)
	binary.Write(bw, binary.LittleEndian, m.Indices)

	return bw.Flush()
}

// MarshalMesh returns the encoded bytes of m.
func MarshalMesh(m *MeshData) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeMesh(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseMesh parses a PMSH file from raw bytes.
func ParseMesh(data []byte) (*MeshData, error) {
	if len(data) < 14 {
		return nil, ErrTruncatedMeshData
	}

	if string(data[0:4]) != MeshMagic {
		return nil, ErrInvalidMeshMagic
	}

	// Version is stored as [minor, major]
	version := MeshVersion{
		Major: data[5],
		Minor: data[4],
	}
	if version.Major != MeshVersionMajor {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMeshVersion, version)
	}

	r := bytes.NewReader(data[6:])

	var vertexCount, indexCount uint32
	if err := binary.Read(r, binary.LittleEndian, &vertexCount); err != nil {
		return nil, fmt.Errorf("%w: reading vertex count", ErrTruncatedMeshData)
	}
	if err := binary.Read(r, binary.LittleEndian, &indexCount); err != nil {
		return nil, fmt.Errorf("%w: reading index count", ErrTruncatedMeshData)
	}
	if vertexCount > maxMeshVertices || indexCount > 6*maxMeshVertices {
		return nil, fmt.Errorf("invalid mesh counts: %d vertices, %d indices", vertexCount, indexCount)
	}

	// Each vertex takes 12 floats, each index 4 bytes.
	need := int64(vertexCount)*12*4 + int64(indexCount)*4
	if int64(r.Len()) < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedMeshData, need, r.Len())
	}

	m := &MeshData{
		Positions: make([][3]float32, vertexCount),
		Normals:   make([][3]float32, vertexCount),
		UVs:       make([][2]float32, vertexCount),
		Colors:    make([][4]float32, vertexCount),
		Indices:   make([]uint32, indexCount),
	}

	sections := []struct {
		name string
		dst  any
	}{
		{"positions", m.Positions},
		{"normals", m.Normals},
		{"uvs", m.UVs},
		{"colors", m.Colors},
		{"indices", m.Indices},
	}
	for _, s := range sections {
		if err := binary.Read(r, binary.LittleEndian, s.dst); err != nil {
			return nil, fmt.Errorf("%w: reading %s", ErrTruncatedMeshData, s.name)
		}
	}

	for i, idx := range m.Indices {
		if idx >= vertexCount {
			return nil, fmt.Errorf("index %d out of range: %d >= %d", i, idx, vertexCount)
		}
	}

	return m, nil
}

// ParseMeshFile parses a PMSH file from disk.
func ParseMeshFile(path string) (*MeshData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}
	return ParseMesh(data)
}

// WriteMeshFile writes m to path.
func WriteMeshFile(path string, m *MeshData) error {
	data, err := MarshalMesh(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
