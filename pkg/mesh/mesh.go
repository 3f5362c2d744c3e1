// Package mesh implements the triangle-mesh data model, the adjacency
// analyzer, and the repair stage (vertex welding, hole filling) that the
// grid package relies on for reliable sign determination.
package mesh

import "github.com/sdfgen/sdfgen/pkg/geom"

// Vertex is a single mesh vertex: a 3-tuple of 32-bit floats in world units,
// matching the teacher's flat-array mesh convention (pkg/kernel.Mesh) but
// kept as a struct here since the core never serializes vertices directly.
type Vertex struct {
	X, Y, Z float32
}

// Vec3 widens the vertex to the float64 working type used throughout geom.
func (v Vertex) Vec3() geom.Vec3 {
	return geom.Vec3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// VertexFromVec3 narrows a geom.Vec3 back to storage precision.
func VertexFromVec3(v geom.Vec3) Vertex {
	return Vertex{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Triangle is a triple of vertex indices into Mesh.Vertices. Triangles are
// oriented consistently in input convention but orientation is not required
// by the core (spec.md §3); the parity test in pkg/grid tolerates either
// winding.
type Triangle [3]int32

// Degenerate reports whether the triangle references the same vertex twice.
func (t Triangle) Degenerate() bool {
	return t[0] == t[1] || t[1] == t[2] || t[0] == t[2]
}

// Mesh is an ordered sequence of vertices and an ordered sequence of
// triangles. It is the sole geometry input to the grid package; once repair
// completes (or is skipped), the core never mutates it.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// TriangleVerts returns the three world-space vertex positions of triangle i.
func (m *Mesh) TriangleVerts(i int) (a, b, c geom.Vec3) {
	t := m.Triangles[i]
	return m.Vertices[t[0]].Vec3(), m.Vertices[t[1]].Vec3(), m.Vertices[t[2]].Vec3()
}

// Bounds returns the axis-aligned bounding box of all vertices. Returns a
// degenerate empty box if the mesh has no vertices.
func (m *Mesh) Bounds() geom.AABB {
	box := geom.EmptyAABB()
	for _, v := range m.Vertices {
		box = box.Extend(v.Vec3())
	}
	return box
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices:  make([]Vertex, len(m.Vertices)),
		Triangles: make([]Triangle, len(m.Triangles)),
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Triangles, m.Triangles)
	return out
}
