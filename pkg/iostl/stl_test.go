package iostl

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// writeBinarySTL assembles a minimal binary STL stream from a flat list of
// (x,y,z) vertex triples, three per triangle, with a zero normal.
func writeBinarySTL(t *testing.T, verts [][3]float32) []byte {
	t.Helper()
	if len(verts)%3 != 0 {
		t.Fatalf("verts must be a multiple of 3, got %d", len(verts))
	}
	var buf bytes.Buffer
	buf.Write(make([]byte, headerSize))
	count := uint32(len(verts) / 3)
	if err := binary.Write(&buf, binary.LittleEndian, count); err != nil {
		t.Fatalf("writing count: %v", err)
	}
	for i := 0; i < len(verts); i += 3 {
		buf.Write(make([]byte, 12)) // normal
		for j := 0; j < 3; j++ {
			v := verts[i+j]
			for _, comp := range v {
				if err := binary.Write(&buf, binary.LittleEndian, math.Float32bits(comp)); err != nil {
					t.Fatalf("writing vertex component: %v", err)
				}
			}
		}
		buf.Write(make([]byte, 2)) // attribute byte count
	}
	return buf.Bytes()
}

func TestLoadWeldsDuplicatedCubeVertices(t *testing.T) {
	cubeVerts := [][3]float32{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5},
		{-0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	}
	data := writeBinarySTL(t, cubeVerts)

	m, err := Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", m.TriangleCount())
	}
	// Two triangles sharing an edge: 6 duplicated vertex entries weld down
	// to 4 distinct corners.
	if m.VertexCount() != 4 {
		t.Fatalf("expected welding to 4 vertices, got %d", m.VertexCount())
	}
}

func TestLoadRejectsTruncatedStream(t *testing.T) {
	data := writeBinarySTL(t, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	truncated := data[:len(data)-10]
	if _, err := Load(bytes.NewReader(truncated)); err == nil {
		t.Fatal("expected an error reading a truncated STL stream")
	}
}
