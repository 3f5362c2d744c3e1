package geom

import "math"

// PointTriangleDistance returns the exact Euclidean distance from p to the
// closed triangle (a, b, c). It is expressed as a barycentric projection
// onto the triangle plane with clamping into the triangle, covering all
// seven Voronoi regions (three vertices, three edges, the interior).
//
// Degenerate (zero-area) triangles never reach the plane-projection branch:
// they fall back to the minimum of the three point-segment distances, which
// is itself the minimum of the three point-point distances when all three
// vertices coincide. This keeps the function NaN-free for any input.
func PointTriangleDistance(p, a, b, c Vec3) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)

	normal := ab.Cross(ac)
	areaSq := normal.LengthSq()
	if areaSq < 1e-20 {
		return degenerateTriangleDistance(p, a, b, c)
	}

	ap := p.Sub(a)

	// Barycentric coordinates of the projection of p onto the plane of abc,
	// via the standard Cramer's-rule-free decomposition (Ericson,
	// "Real-Time Collision Detection" 3.4).
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return p.Distance(a) // vertex region a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return p.Distance(b) // vertex region b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return p.Distance(a.Add(ab.Scale(v))) // edge ab
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return p.Distance(c) // vertex region c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return p.Distance(a.Add(ac.Scale(w))) // edge ac
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return p.Distance(b.Add(c.Sub(b).Scale(w))) // edge bc
	}

	// Interior: project p onto the plane using barycentric coordinates.
	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	closest := a.Add(ab.Scale(v)).Add(ac.Scale(w))
	return p.Distance(closest)
}

// degenerateTriangleDistance handles zero-area triangles (collinear or
// coincident vertices) by falling back to the minimum of the three
// point-segment distances.
func degenerateTriangleDistance(p, a, b, c Vec3) float64 {
	d := pointSegmentDistance(p, a, b)
	d = math.Min(d, pointSegmentDistance(p, b, c))
	d = math.Min(d, pointSegmentDistance(p, c, a))
	return d
}

// pointSegmentDistance returns the distance from p to the closed segment ab,
// degrading to a point-point distance when a and b coincide.
func pointSegmentDistance(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Scale(t)))
}

// Orientation returns the signed area of the 2-D triangle (x,y)-(x1,y1)-(x2,y2),
// used by the intersection-parity pass to classify a ray origin against a
// triangle's projected edges. Positive means the query point is to the left
// of the directed edge (x1,y1)->(x2,y2). The parity pass compares this
// value's sign with strict inequalities and breaks an exact zero by the
// edge's direction, so that on-edge and on-vertex rays resolve to a single
// consistent owner.
func Orientation(x, y, x1, y1, x2, y2 float64) float64 {
	return (x1-x)*(y2-y) - (x2-x)*(y1-y)
}
