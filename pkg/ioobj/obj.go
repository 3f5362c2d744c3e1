// Package ioobj loads ASCII Wavefront OBJ files into pkg/mesh.Mesh. This is
// one of the external collaborators named in spec.md §1/§6 — the core
// never depends on this package, but a complete tool needs a concrete
// loader, built the way the teacher's app.go reads files with plain
// os/bufio rather than reaching for a parser-combinator library the pack
// does not otherwise carry for this format.
package ioobj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sdfgen/sdfgen/pkg/mesh"
)

// Load parses an ASCII OBJ stream per spec.md §6: "v x y z" lines define
// vertices in order; "f i j k ..." lines define faces, 1-indexed, with
// optional "//n" or "/t/n" suffixes stripped, polygons fan-triangulated.
func Load(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("ioobj: line %d: %w", lineNo, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			tris, err := parseFace(fields[1:], len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("ioobj: line %d: %w", lineNo, err)
			}
			m.Triangles = append(m.Triangles, tris...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioobj: %w", err)
	}
	return m, nil
}

func parseVertex(fields []string) (mesh.Vertex, error) {
	if len(fields) < 3 {
		return mesh.Vertex{}, fmt.Errorf("vertex line needs 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return mesh.Vertex{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return mesh.Vertex{}, fmt.Errorf("bad y: %w", err)
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return mesh.Vertex{}, fmt.Errorf("bad z: %w", err)
	}
	return mesh.Vertex{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

// parseFace parses a face line into a fan-triangulated set of triangles.
// Each vertex reference may be "i", "i/t", "i//n", or "i/t/n"; only the
// leading vertex index is used.
func parseFace(fields []string, vertexCount int) ([]mesh.Triangle, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face line needs at least 3 vertices, got %d", len(fields))
	}
	indices := make([]int32, len(fields))
	for i, f := range fields {
		idx, err := parseFaceIndex(f, vertexCount)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}

	tris := make([]mesh.Triangle, 0, len(indices)-2)
	for i := 1; i < len(indices)-1; i++ {
		tris = append(tris, mesh.Triangle{indices[0], indices[i], indices[i+1]})
	}
	return tris, nil
}

// parseFaceIndex strips the optional "//n" or "/t/n" suffix and converts
// the 1-indexed OBJ reference to a 0-indexed vertex index. Negative
// (relative) indices are resolved against vertexCount.
func parseFaceIndex(field string, vertexCount int) (int32, error) {
	head := field
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		head = field[:slash]
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", field, err)
	}
	if n < 0 {
		n = vertexCount + n + 1
	}
	if n < 1 {
		return 0, fmt.Errorf("face index %d out of range", n)
	}
	return int32(n - 1), nil
}
