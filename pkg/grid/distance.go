package grid

import "github.com/sdfgen/sdfgen/pkg/geom"

// pointTriangleDistance is a thin wrapper so the grid package has a single
// call site for the geometry primitive, matching how the teacher's
// tessellate package centralizes its calls into pkg/kernel rather than
// spreading raw geometry math across files.
func pointTriangleDistance(p, a, b, c geom.Vec3) float64 {
	return geom.PointTriangleDistance(p, a, b, c)
}

// degenerateTriangle reports whether the triangle (a,b,c) has zero area,
// per spec.md §4.D / §7: degenerate triangles are skipped silently during
// the narrow-band distance pass.
func degenerateTriangle(a, b, c geom.Vec3) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.Cross(ac).LengthSq() < 1e-20
}
