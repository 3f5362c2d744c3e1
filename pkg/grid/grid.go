// Package grid implements the voxel-grid stages of SDF generation: the
// exact narrow-band distance pass, the intersection-parity pass, the fast
// sweep propagation, and sign application. These are the three hard-
// engineering stages named in spec.md §1: D, E, F/G.
package grid

import (
	"github.com/sdfgen/sdfgen/pkg/geom"
	"github.com/sdfgen/sdfgen/pkg/mesh"
)

// sentinelFactor scales the grid diagonal to give Grid.Sentinel, the
// initial phi value: at least three times the grid diagonal, per spec.md §3.
const sentinelFactor = 3.0

// Grid is the triple (nx, ny, nz) plus world-space origin and cell size,
// and the three working arrays that share that shape in row-major
// k-outer/i-inner layout (i fastest), per spec.md §3.
type Grid struct {
	Nx, Ny, Nz int
	Origin     geom.Vec3
	Dx         float64

	Phi      []float32 // unsigned-then-signed distance field
	Closest  []int32   // index of the closest known triangle, or -1
	Inside   []int32   // signed intersection-parity accumulator

	Sentinel float32
}

// New allocates a grid of the given shape, with Phi initialized to the
// sentinel, Closest to -1, and Inside to 0.
func New(nx, ny, nz int, origin geom.Vec3, dx float64) *Grid {
	n := nx * ny * nz
	g := &Grid{
		Nx: nx, Ny: ny, Nz: nz,
		Origin: origin, Dx: dx,
		Phi:     make([]float32, n),
		Closest: make([]int32, n),
		Inside:  make([]int32, n),
	}
	diag := geom.Vec3{X: float64(nx), Y: float64(ny), Z: float64(nz)}.Scale(dx).Length()
	g.Sentinel = float32(sentinelFactor * diag)
	for i := range g.Phi {
		g.Phi[i] = g.Sentinel
		g.Closest[i] = -1
	}
	return g
}

// Index returns the flat offset of voxel (i,j,k) in the i-fastest,
// k-outermost layout shared by all three arrays.
func (g *Grid) Index(i, j, k int) int {
	return (k*g.Ny+j)*g.Nx + i
}

// VoxelCenter returns the world-space center of voxel (i,j,k), per
// spec.md §3: ox + (i+1/2)dx and so on.
func (g *Grid) VoxelCenter(i, j, k int) geom.Vec3 {
	return geom.Vec3{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dx,
		Z: g.Origin.Z + (float64(k)+0.5)*g.Dx,
	}
}

// InBounds reports whether (i,j,k) addresses a valid voxel.
func (g *Grid) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.Nx && j >= 0 && j < g.Ny && k >= 0 && k < g.Nz
}

// WorldToIndex transforms a world-space point into continuous grid-index
// space (spec.md §4.D step 1).
func (g *Grid) WorldToIndex(p geom.Vec3) geom.Vec3 {
	return p.Sub(g.Origin).Scale(1 / g.Dx)
}

// Diagonal returns the world-space length of the grid's diagonal, D in
// spec.md §8's invariant 1.
func (g *Grid) Diagonal() float64 {
	return geom.Vec3{X: float64(g.Nx), Y: float64(g.Ny), Z: float64(g.Nz)}.Scale(g.Dx).Length()
}

// TriangleAccess is the read-only view the grid stages need of the source
// mesh: world-space vertex positions per triangle, addressed by index
// (spec.md §9: "store a triangle index, never a pointer").
type TriangleAccess interface {
	TriangleCount() int
	TriangleVerts(i int) (a, b, c geom.Vec3)
}

// meshAccess adapts *mesh.Mesh to TriangleAccess; kept as a thin named type
// so callers outside this package can pass a *mesh.Mesh directly.
type meshAccess struct{ m *mesh.Mesh }

func (a meshAccess) TriangleCount() int { return a.m.TriangleCount() }
func (a meshAccess) TriangleVerts(i int) (geom.Vec3, geom.Vec3, geom.Vec3) {
	return a.m.TriangleVerts(i)
}

// Wrap adapts a *mesh.Mesh into the TriangleAccess the grid stages consume.
func Wrap(m *mesh.Mesh) TriangleAccess {
	return meshAccess{m}
}
