// Package sdf wires the geometry, mesh, and grid packages into the single
// public entry point described by spec.md §4.H, and the two grid-sizing
// modes an outer caller picks between.
package sdf

import (
	"errors"
	"fmt"
	"math"

	"github.com/sdfgen/sdfgen/pkg/geom"
	"github.com/sdfgen/sdfgen/pkg/grid"
	"github.com/sdfgen/sdfgen/pkg/mesh"
)

// ErrInvalidGrid is returned when grid dimensions or cell size are
// non-positive, per spec.md §7.
var ErrInvalidGrid = errors.New("sdf: grid dimension <= 0 or dx <= 0")

// Warning is an advisory diagnostic surfaced alongside a successful result,
// mirroring the teacher's ValidationWarning split between blocking errors
// and advisory warnings (pkg/graph/validate.go).
type Warning struct {
	Message string
}

// Options configures a single MakeLevelSet job.
type Options struct {
	ExactBand int  // narrow-band half-width in voxels, spec.md §4.D; 0 means default (1)
	Threads   int  // worker count; 0 means GOMAXPROCS
	Repair    bool // run mesh.Weld + mesh.FillHoles before gridding
	WeldTol   float64 // vertex welding tolerance when Repair is set; 0 means 1e-5
}

// Result is the output of MakeLevelSet: the signed distance field plus any
// advisory warnings gathered along the way (spec.md §7).
type Result struct {
	Grid     *grid.Grid
	Analysis mesh.Analysis
	Warnings []Warning
}

// MakeLevelSet is the orchestrator named in spec.md §4.H. It optionally
// repairs the mesh, allocates the three voxel arrays, runs the narrow-band
// pass and the parity pass in parallel, the sweep single-threaded, and
// finally applies sign. Grid size and origin are computed by the caller
// (see CellSizeMode / GridCountMode below); this function only needs the
// already-resolved (origin, dx, nx, ny, nz).
func MakeLevelSet(m *mesh.Mesh, origin geom.Vec3, dx float64, nx, ny, nz int, opts Options) (*Result, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 || dx <= 0 {
		return nil, ErrInvalidGrid
	}

	result := &Result{}
	workMesh := m

	if opts.Repair {
		tol := opts.WeldTol
		if tol <= 0 {
			tol = 1e-5
		}
		welded, weldRes := mesh.Weld(workMesh, tol)
		filled, fillRes := mesh.FillHoles(welded)
		workMesh = filled
		if weldRes.Merged > 0 {
			result.Warnings = append(result.Warnings, Warning{
				Message: fmt.Sprintf("repair: merged %d vertices within tolerance %g", weldRes.Merged, tol),
			})
		}
		if fillRes.TrianglesAdded > 0 {
			result.Warnings = append(result.Warnings, Warning{
				Message: fmt.Sprintf("repair: filled holes with %d triangles", fillRes.TrianglesAdded),
			})
		}
		if fillRes.FallbacksUsed > 0 {
			result.Warnings = append(result.Warnings, Warning{
				Message: fmt.Sprintf("repair: %d hole(s) used the fallback ear (no valid ear found)", fillRes.FallbacksUsed),
			})
		}
	}

	analysis := mesh.Analyze(workMesh)
	result.Analysis = analysis
	if !analysis.IsManifold {
		result.Warnings = append(result.Warnings, Warning{
			Message: fmt.Sprintf("mesh is non-manifold (%d non-manifold edges); sign may be incorrect", analysis.NonManifoldCount),
		})
	} else if !analysis.IsWatertight {
		result.Warnings = append(result.Warnings, Warning{
			Message: fmt.Sprintf("mesh is not watertight (%d boundary edges); sign may be incorrect without repair", analysis.BoundaryEdgeCount),
		})
	}

	g := grid.New(nx, ny, nz, origin, dx)
	result.Grid = g

	if workMesh.IsEmpty() {
		// spec.md §7: empty mesh returns all-sentinel phi, no failure.
		return result, nil
	}

	triangles := grid.Wrap(workMesh)
	exactBand := opts.ExactBand
	if exactBand < 1 {
		exactBand = grid.DefaultExactBand
	}

	g.NarrowBand(triangles, exactBand, opts.Threads)
	g.Parity(triangles, opts.Threads)
	g.Sweep(triangles)
	g.ApplySign()

	return result, nil
}

// CellSizeMode computes (origin, nx, ny, nz) for "cell-size mode": origin is
// derived from the mesh bounding box plus padding cells of empty space, and
// grid size is derived as ceil(size/dx) (spec.md §4.H).
func CellSizeMode(m *mesh.Mesh, dx float64, padding int) (origin geom.Vec3, nx, ny, nz int) {
	box := m.Bounds()
	padWorld := float64(padding) * dx
	padded := box.Pad(padWorld)
	size := padded.Size()

	nx = int(math.Ceil(size.X / dx))
	ny = int(math.Ceil(size.Y / dx))
	nz = int(math.Ceil(size.Z / dx))
	return padded.Min, nx, ny, nz
}

// GridCountMode computes (origin, dx) for "grid-count mode": grid size is
// fixed by the caller, dx is derived from the mesh's bounding box (plus
// padding cells) divided across the requested cell counts, and the mesh is
// centered in the grid (spec.md §4.H).
func GridCountMode(m *mesh.Mesh, nx, ny, nz, padding int) (origin geom.Vec3, dx float64) {
	box := m.Bounds()
	size := box.Size()

	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	usableCells := float64(maxOfInt(nx, maxOfInt(ny, nz))) - 2*float64(padding)
	if usableCells < 1 {
		usableCells = 1
	}
	dx = maxDim / usableCells
	if dx <= 0 {
		dx = 1
	}

	gridSize := geom.Vec3{X: float64(nx) * dx, Y: float64(ny) * dx, Z: float64(nz) * dx}
	center := box.Min.Add(box.Max).Scale(0.5)
	origin = center.Sub(gridSize.Scale(0.5))
	return origin, dx
}

func maxOfInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IsGPUAvailable reports whether a GPU backend is available. This CPU-only
// implementation always returns false; a GPU variant is a legal but
// unspecified replacement producing the same result within float tolerance
// (spec.md §9).
func IsGPUAvailable() bool {
	return false
}
