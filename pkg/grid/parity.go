package grid

import (
	"runtime"
	"sync"

	"github.com/sdfgen/sdfgen/pkg/geom"
)

// Parity runs the intersection-parity pass (spec.md §4.E): for every
// (i,j) column, it shoots a ray along the k-axis and, for each triangle
// whose (x,y) projection contains the ray origin, marks every voxel whose
// center-z exceeds the crossing-z with +1 (positive signed xy-area) or -1
// (negative). Columns are independent and are partitioned across workers
// with no synchronization, per spec.md's "no synchronization required".
func (g *Grid) Parity(triangles TriangleAccess, workers int) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	cols := g.Nx * g.Ny
	if cols == 0 {
		return
	}
	if workers > cols {
		workers = cols
	}

	var wg sync.WaitGroup
	batch := (cols + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * batch
		end := start + batch
		if end > cols {
			end = cols
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for c := start; c < end; c++ {
				i, j := c%g.Nx, c/g.Nx
				g.parityColumn(triangles, i, j)
			}
		}(start, end)
	}
	wg.Wait()
}

// parityColumn accumulates crossings for the single column (i,j) across
// every triangle in the mesh.
func (g *Grid) parityColumn(triangles TriangleAccess, i, j int) {
	center := g.VoxelCenter(i, j, 0)
	x, y := center.X, center.Y

	for ti := 0; ti < triangles.TriangleCount(); ti++ {
		a, b, c := triangles.TriangleVerts(ti)
		if degenerateTriangle(a, b, c) {
			continue // spec.md §7: degenerate triangles treated as zero-area in parity
		}

		area, crossZ, ok := rayTriangleColumnCrossing(x, y, a, b, c)
		if !ok {
			continue
		}

		delta := int32(1)
		if area < 0 {
			delta = -1
		}

		for k := 0; k < g.Nz; k++ {
			cz := g.Origin.Z + (float64(k)+0.5)*g.Dx
			if cz > crossZ {
				g.Inside[g.Index(i, j, k)] += delta
			}
		}
	}
}

// rayTriangleColumnCrossing tests whether the vertical ray through (x,y)
// passes through triangle (a,b,c)'s 2-D (x,y) projection, using the
// orientation predicate on the three projected edges (spec.md §4.E). When
// it does, it returns the triangle's signed (x,y) area and the z
// coordinate of the ray-plane intersection.
func rayTriangleColumnCrossing(x, y float64, a, b, c geom.Vec3) (signedArea, crossZ float64, ok bool) {
	// edgeSign is the orientation of (x,y) against the directed edge p->q,
	// with an exact zero (the ray on the edge's line) replaced by a value
	// taken from the edge's direction alone. Two triangles sharing an edge
	// traverse it in opposite directions, so they get opposite signs there
	// and exactly one of them owns a crossing on that edge. Rays through a
	// vertex are resolved by the same rule.
	edgeSign := func(px, py, qx, qy float64) float64 {
		o := geom.Orientation(x, y, px, py, qx, qy)
		if o == 0 {
			o = py - qy
		}
		if o == 0 {
			o = qx - px
		}
		return o
	}
	o1 := edgeSign(a.X, a.Y, b.X, b.Y)
	o2 := edgeSign(b.X, b.Y, c.X, c.Y)
	o3 := edgeSign(c.X, c.Y, a.X, a.Y)

	allPos := o1 > 0 && o2 > 0 && o3 > 0
	allNeg := o1 < 0 && o2 < 0 && o3 < 0
	if !allPos && !allNeg {
		return 0, 0, false
	}

	area := geom.Orientation(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	if area == 0 {
		return 0, 0, false // degenerate (x,y) projection
	}

	// Barycentric interpolation of z at (x,y) using the same orientation
	// values as area weights.
	wa := geom.Orientation(x, y, b.X, b.Y, c.X, c.Y) / area
	wb := geom.Orientation(x, y, c.X, c.Y, a.X, a.Y) / area
	wc := geom.Orientation(x, y, a.X, a.Y, b.X, b.Y) / area
	z := wa*a.Z + wb*b.Z + wc*c.Z

	return area, z, true
}
