package mesh

import (
	"fmt"
	"math"
)

// bucketKey identifies a cell of the spatial hash used by Weld: the integer
// floor of a vertex position divided by the welding tolerance, per axis.
type bucketKey struct {
	x, y, z int64
}

func bucketOf(v Vertex, tolerance float64) bucketKey {
	return bucketKey{
		x: int64(math.Floor(float64(v.X) / tolerance)),
		y: int64(math.Floor(float64(v.Y) / tolerance)),
		z: int64(math.Floor(float64(v.Z) / tolerance)),
	}
}

// WeldResult reports the outcome of Weld.
type WeldResult struct {
	Merged int // count of input vertices merged into an existing vertex
}

// Weld merges vertices that lie within tolerance of each other, using a
// spatial hash keyed by ⌊v/tolerance⌋ per axis (spec.md §4.C). Vertices are
// visited in input order; for each, the 3x3x3 neighborhood of buckets
// around it is searched for an already-emitted vertex within Euclidean
// distance tolerance. The first occurrence always wins, so the emitted
// vertex order is a prefix-stable subsequence of the input — applying Weld
// twice with the same tolerance is a no-op the second time, since every
// emitted vertex is already farther than tolerance from every other.
//
// Triangle indices are rewritten through the resulting remap; any triangle
// that becomes degenerate (two equal indices) after remapping is dropped.
func Weld(m *Mesh, tolerance float64) (*Mesh, WeldResult) {
	if tolerance <= 0 {
		tolerance = 1e-9
	}

	buckets := make(map[bucketKey][]int32) // bucket -> emitted vertex indices
	remap := make([]int32, len(m.Vertices))
	emitted := make([]Vertex, 0, len(m.Vertices))
	merged := 0

	for i, v := range m.Vertices {
		key := bucketOf(v, tolerance)
		match, found := findWeldMatch(v, key, buckets, emitted, tolerance)
		if found {
			remap[i] = match
			merged++
			continue
		}
		newIdx := int32(len(emitted))
		emitted = append(emitted, v)
		buckets[key] = append(buckets[key], newIdx)
		remap[i] = newIdx
	}

	out := &Mesh{Vertices: emitted}
	out.Triangles = make([]Triangle, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		nt := Triangle{remap[t[0]], remap[t[1]], remap[t[2]]}
		if nt.Degenerate() {
			continue
		}
		out.Triangles = append(out.Triangles, nt)
	}

	return out, WeldResult{Merged: merged}
}

// findWeldMatch searches the 3x3x3 neighborhood of key for an already
// emitted vertex within tolerance of v.
func findWeldMatch(v Vertex, key bucketKey, buckets map[bucketKey][]int32, emitted []Vertex, tolerance float64) (int32, bool) {
	tolSq := tolerance * tolerance
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				nk := bucketKey{key.x + dx, key.y + dy, key.z + dz}
				for _, idx := range buckets[nk] {
					o := emitted[idx]
					ddx := float64(v.X - o.X)
					ddy := float64(v.Y - o.Y)
					ddz := float64(v.Z - o.Z)
					if ddx*ddx+ddy*ddy+ddz*ddz <= tolSq {
						return idx, true
					}
				}
			}
		}
	}
	return 0, false
}

// FillHolesResult reports what hole filling did.
type FillHolesResult struct {
	TrianglesAdded int
	FallbacksUsed  int // number of loops where no non-degenerate ear was found
}

// FillHoles analyzes m and triangulates every boundary loop found by ear
// clipping (spec.md §4.C). New triangles follow the loop's winding order,
// which is not verified against the rest of the mesh — a loop walked in the
// "wrong" direction can produce inside-out faces. The core tolerates this
// because sign is decided by intersection parity (pkg/grid), not by face
// normals.
func FillHoles(m *Mesh) (*Mesh, FillHolesResult) {
	analysis := Analyze(m)
	out := m.Clone()
	var result FillHolesResult

	for _, loop := range analysis.BoundaryLoops {
		added, fellBack := earClip(out, loop)
		result.TrianglesAdded += added
		if fellBack {
			result.FallbacksUsed++
		}
	}
	return out, result
}

// earClip triangulates a single boundary loop in place on m, appending new
// triangles. While the loop has more than three vertices it removes one ear
// per iteration: the first index whose incident edges form a non-degenerate
// cross product. If no such ear exists, it falls back to emitting (0,1,2)
// and removing index 1, per spec.md §4.C.
func earClip(m *Mesh, loop []int32) (added int, usedFallback bool) {
	poly := append([]int32(nil), loop...)

	for len(poly) > 3 {
		ear := findEar(m, poly)
		if ear < 0 {
			m.Triangles = append(m.Triangles, Triangle{poly[0], poly[1], poly[2]})
			added++
			usedFallback = true
			poly = removeAt(poly, 1)
			continue
		}
		prev := (ear - 1 + len(poly)) % len(poly)
		next := (ear + 1) % len(poly)
		m.Triangles = append(m.Triangles, Triangle{poly[prev], poly[ear], poly[next]})
		added++
		poly = removeAt(poly, ear)
	}

	if len(poly) == 3 {
		m.Triangles = append(m.Triangles, Triangle{poly[0], poly[1], poly[2]})
		added++
	}

	return added, usedFallback
}

// findEar returns the index within poly of the first vertex whose incident
// edges produce a non-degenerate cross product, or -1 if none qualifies.
func findEar(m *Mesh, poly []int32) int {
	n := len(poly)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		a := m.Vertices[poly[prev]].Vec3()
		b := m.Vertices[poly[i]].Vec3()
		c := m.Vertices[poly[next]].Vec3()
		cross := b.Sub(a).Cross(c.Sub(a))
		if cross.LengthSq() > 1e-20 {
			return i
		}
	}
	return -1
}

// removeAt returns poly with the element at index i removed.
func removeAt(poly []int32, i int) []int32 {
	out := make([]int32, 0, len(poly)-1)
	out = append(out, poly[:i]...)
	out = append(out, poly[i+1:]...)
	return out
}

// String implements fmt.Stringer for Analysis, mirroring the teacher's
// habit of giving diagnostic structs a readable summary (cf.
// ValidationError/Warning's Message field in pkg/graph).
func (a Analysis) String() string {
	return fmt.Sprintf("edges=%d boundary=%d nonmanifold=%d loops=%d manifold=%v watertight=%v",
		a.EdgeCount, a.BoundaryEdgeCount, a.NonManifoldCount, len(a.BoundaryLoops), a.IsManifold, a.IsWatertight)
}
