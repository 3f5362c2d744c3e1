package grid

// sweepPasses is the number of full six-direction sweep passes. Two full
// passes suffice to produce the Eikonal-consistent distance for any voxel
// reachable through the narrow band on a uniform, unit-anisotropy grid
// (spec.md §4.F).
const sweepPasses = 2

// direction is one of the six axis-aligned sweep directions.
type direction struct {
	di, dj, dk int
}

// sweepSchedule is the fixed, deterministic order of the six directional
// sweeps, repeated sweepPasses times (spec.md §4.F: "The schedule is
// fixed... not convergence-based").
var sweepSchedule = [6]direction{
	{+1, 0, 0}, {-1, 0, 0},
	{0, +1, 0}, {0, -1, 0},
	{0, 0, +1}, {0, 0, -1},
}

// neighborOffsets are the six face neighbors examined at each voxel during
// a sweep.
var neighborOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Sweep extends exact distances computed by NarrowBand across the whole
// grid via six directional rook sweeps, run sequentially within each
// direction because every voxel depends on earlier neighbors in the same
// pass (spec.md §4.F). Parallelism across axes is legal but optional; this
// implementation runs single-threaded on the caller's goroutine, matching
// the orchestrator contract in spec.md §5 ("§4.F ... run on the main
// thread").
func (g *Grid) Sweep(triangles TriangleAccess) {
	for pass := 0; pass < sweepPasses; pass++ {
		for _, dir := range sweepSchedule {
			g.sweepOnce(triangles, dir)
		}
	}
}

// sweepOnce visits every voxel in the direction of travel implied by dir
// and relaxes it against its six neighbors.
func (g *Grid) sweepOnce(triangles TriangleAccess, dir direction) {
	iRange := axisRange(g.Nx, dir.di)
	jRange := axisRange(g.Ny, dir.dj)
	kRange := axisRange(g.Nz, dir.dk)

	for _, k := range kRange {
		for _, j := range jRange {
			for _, i := range iRange {
				g.relaxVoxel(triangles, i, j, k)
			}
		}
	}
}

// axisRange returns the traversal order for one axis given the sweep
// direction along it: ascending for +1/0, descending for -1.
func axisRange(n, d int) []int {
	order := make([]int, n)
	if d < 0 {
		for x := 0; x < n; x++ {
			order[x] = n - 1 - x
		}
		return order
	}
	for x := 0; x < n; x++ {
		order[x] = x
	}
	return order
}

// relaxVoxel examines the six neighbors of (i,j,k); for each neighbor with
// a valid closest-triangle id, it recomputes the distance from this
// voxel's center to that triangle and keeps it if it improves Phi.
func (g *Grid) relaxVoxel(triangles TriangleAccess, i, j, k int) {
	idx := g.Index(i, j, k)
	center := g.VoxelCenter(i, j, k)

	for _, off := range neighborOffsets {
		ni, nj, nk := i+off[0], j+off[1], k+off[2]
		if !g.InBounds(ni, nj, nk) {
			continue
		}
		nIdx := g.Index(ni, nj, nk)
		ct := g.Closest[nIdx]
		if ct < 0 {
			continue
		}
		a, b, c := triangles.TriangleVerts(int(ct))
		d := float32(pointTriangleDistance(center, a, b, c))
		if d < g.Phi[idx] {
			g.Phi[idx] = d
			g.Closest[idx] = ct
		}
	}
}
