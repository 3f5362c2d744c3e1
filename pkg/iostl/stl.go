// Package iostl loads binary STL files into pkg/mesh.Mesh, welding
// per-triangle duplicate vertices before handing the mesh to the core, per
// spec.md §6. Like pkg/ioobj, this is an external collaborator: the core
// (pkg/grid, pkg/sdf) never imports it.
package iostl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/sdfgen/sdfgen/pkg/mesh"
)

// weldTolerance is the fixed tolerance spec.md §6 mandates for STL's
// per-triangle duplicated vertices.
const weldTolerance = 1e-5

const (
	headerSize    = 80
	triangleBytes = 50
)

// Load parses a binary STL stream: an 80-byte header, a uint32 triangle
// count, then 50 bytes per triangle (a 12-byte normal, three 12-byte
// vertices, and a 2-byte attribute field). The loader welds duplicate
// vertices at 1e-5 before returning.
func Load(r io.Reader) (*mesh.Mesh, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("iostl: reading header: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("iostl: reading triangle count: %w", err)
	}

	m := mesh.New()
	m.Vertices = make([]mesh.Vertex, 0, count*3)
	m.Triangles = make([]mesh.Triangle, 0, count)

	buf := make([]byte, triangleBytes)
	for t := uint32(0); t < count; t++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("iostl: reading triangle %d: %w", t, err)
		}
		// Skip the 12-byte normal (bytes 0-11); read three vertices.
		base := int32(len(m.Vertices))
		for v := 0; v < 3; v++ {
			off := 12 + v*12
			x := readFloat32(buf[off : off+4])
			y := readFloat32(buf[off+4 : off+8])
			z := readFloat32(buf[off+8 : off+12])
			m.Vertices = append(m.Vertices, mesh.Vertex{X: x, Y: y, Z: z})
		}
		m.Triangles = append(m.Triangles, mesh.Triangle{base, base + 1, base + 2})
	}

	welded, _ := mesh.Weld(m, weldTolerance)
	return welded, nil
}

func readFloat32(b []byte) float32 {
	bits := binary.LittleEndian.Uint32(b)
	return math.Float32frombits(bits)
}
