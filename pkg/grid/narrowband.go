package grid

import (
	"math"
	"runtime"
	"sync"
)

// DefaultExactBand is the default narrow-band width B in voxels, per
// spec.md §4.D.
const DefaultExactBand = 1

// scratch holds one worker's private phi/closest arrays, sentinel-
// initialized, so that concurrent triangle batches never race on the same
// cell (spec.md §4.D, §9: "per-worker scratch + parallel reduce").
type scratch struct {
	phi     []float32
	closest []int32
}

func newScratch(n int, sentinel float32) *scratch {
	s := &scratch{phi: make([]float32, n), closest: make([]int32, n)}
	for i := range s.phi {
		s.phi[i] = sentinel
		s.closest[i] = -1
	}
	return s
}

// NarrowBand runs the exact narrow-band pass (spec.md §4.D): for every
// triangle, it visits the voxels in its footprint (bounding box expanded by
// exactBand and clamped to the grid) and writes the point-to-triangle
// distance into Phi/Closest whenever it improves on the current value.
//
// Triangles are partitioned into batches across workers goroutines.
// Because two triangles' footprints can overlap, each worker writes into a
// private scratch pair initialized to sentinels; results are then reduced
// by per-voxel minimum, so the final Phi[v] equals the minimum distance
// produced by any triangle and Closest[v] names a triangle achieving that
// minimum, ties broken by smallest triangle index (the reduce walks
// workers in index order and only overwrites on strict improvement).
func (g *Grid) NarrowBand(triangles TriangleAccess, exactBand int, workers int) {
	if exactBand < 1 {
		exactBand = DefaultExactBand
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := triangles.TriangleCount()
	if n == 0 {
		return
	}
	if workers > n {
		workers = n
	}

	total := len(g.Phi)
	scratches := make([]*scratch, workers)
	var wg sync.WaitGroup
	batch := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * batch
		end := start + batch
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		s := newScratch(total, g.Sentinel)
		scratches[w] = s
		wg.Add(1)
		go func(s *scratch, start, end int) {
			defer wg.Done()
			for ti := start; ti < end; ti++ {
				g.splatTriangle(s, triangles, ti, exactBand)
			}
		}(s, start, end)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		s := scratches[w]
		if s == nil {
			continue
		}
		for idx, d := range s.phi {
			if d < g.Phi[idx] {
				g.Phi[idx] = d
				g.Closest[idx] = s.closest[idx]
			}
		}
	}
}

// splatTriangle computes triangle ti's footprint and updates s's scratch
// arrays for every voxel inside it, per spec.md §4.D steps 1-3.
func (g *Grid) splatTriangle(s *scratch, triangles TriangleAccess, ti int, exactBand int) {
	a, b, c := triangles.TriangleVerts(ti)
	if degenerateTriangle(a, b, c) {
		// spec.md §7: degenerate triangles are skipped silently in distance.
		return
	}

	ia := g.WorldToIndex(a)
	ib := g.WorldToIndex(b)
	ic := g.WorldToIndex(c)

	minI := int(math.Floor(minOf3(ia.X, ib.X, ic.X))) - exactBand
	maxI := int(math.Ceil(maxOf3(ia.X, ib.X, ic.X))) + exactBand
	minJ := int(math.Floor(minOf3(ia.Y, ib.Y, ic.Y))) - exactBand
	maxJ := int(math.Ceil(maxOf3(ia.Y, ib.Y, ic.Y))) + exactBand
	minK := int(math.Floor(minOf3(ia.Z, ib.Z, ic.Z))) - exactBand
	maxK := int(math.Ceil(maxOf3(ia.Z, ib.Z, ic.Z))) + exactBand

	minI, maxI = clampRange(minI, maxI, g.Nx)
	minJ, maxJ = clampRange(minJ, maxJ, g.Ny)
	minK, maxK = clampRange(minK, maxK, g.Nz)

	for k := minK; k <= maxK; k++ {
		for j := minJ; j <= maxJ; j++ {
			for i := minI; i <= maxI; i++ {
				center := g.VoxelCenter(i, j, k)
				d := float32(pointTriangleDistance(center, a, b, c))
				idx := g.Index(i, j, k)
				if d < s.phi[idx] {
					s.phi[idx] = d
					s.closest[idx] = int32(ti)
				}
			}
		}
	}
}

func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}

func minOf3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func maxOf3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
