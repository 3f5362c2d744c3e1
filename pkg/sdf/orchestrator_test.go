package sdf

import (
	"math"
	"testing"

	"github.com/sdfgen/sdfgen/pkg/geom"
	"github.com/sdfgen/sdfgen/pkg/mesh"
)

func cubeMesh() *mesh.Mesh {
	v := []mesh.Vertex{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}
	faces := [][4]int32{
		{0, 1, 2, 3}, {4, 7, 6, 5}, {0, 4, 5, 1}, {3, 2, 6, 7}, {0, 3, 7, 4}, {1, 5, 6, 2},
	}
	m := mesh.New()
	m.Vertices = v
	for _, f := range faces {
		m.Triangles = append(m.Triangles, mesh.Triangle{f[0], f[1], f[2]}, mesh.Triangle{f[0], f[2], f[3]})
	}
	return m
}

func TestMakeLevelSetRejectsInvalidGrid(t *testing.T) {
	m := cubeMesh()
	if _, err := MakeLevelSet(m, geom.Vec3{}, 0, 4, 4, 4, Options{}); err != ErrInvalidGrid {
		t.Fatalf("expected ErrInvalidGrid for dx=0, got %v", err)
	}
	if _, err := MakeLevelSet(m, geom.Vec3{}, 0.1, 0, 4, 4, Options{}); err != ErrInvalidGrid {
		t.Fatalf("expected ErrInvalidGrid for nx=0, got %v", err)
	}
}

func TestMakeLevelSetCubeSignsCorrectly(t *testing.T) {
	m := cubeMesh()
	origin, nx, ny, nz := CellSizeMode(m, 0.1, 3)
	result, err := MakeLevelSet(m, origin, 0.1, nx, ny, nz, Options{ExactBand: 1, Threads: 2})
	if err != nil {
		t.Fatalf("MakeLevelSet: %v", err)
	}
	if !result.Analysis.IsWatertight {
		t.Fatalf("cube fixture should analyze watertight, got %s", result.Analysis)
	}

	g := result.Grid
	centerIdx := g.Index(nx/2, ny/2, nz/2)
	if g.Phi[centerIdx] >= 0 {
		t.Fatalf("expected negative phi at grid center, got %v", g.Phi[centerIdx])
	}
	cornerIdx := g.Index(0, 0, 0)
	if g.Phi[cornerIdx] <= 0 {
		t.Fatalf("expected positive phi at padded corner, got %v", g.Phi[cornerIdx])
	}
}

func TestMakeLevelSetEmptyMeshReturnsAllSentinel(t *testing.T) {
	m := mesh.New()
	result, err := MakeLevelSet(m, geom.Vec3{}, 0.1, 4, 4, 4, Options{})
	if err != nil {
		t.Fatalf("MakeLevelSet on empty mesh should not fail: %v", err)
	}
	for _, phi := range result.Grid.Phi {
		if phi != result.Grid.Sentinel {
			t.Fatalf("expected all-sentinel phi for empty mesh, got %v", phi)
		}
	}
}

func TestMakeLevelSetRepairWarnsOnDuplicatedVerticesAndHole(t *testing.T) {
	m := cubeMesh()
	m.Triangles = m.Triangles[:len(m.Triangles)-2] // drop +x face

	// Duplicate every vertex used, as an unwelded STL import would.
	dup := mesh.New()
	for _, tri := range m.Triangles {
		base := int32(len(dup.Vertices))
		dup.Vertices = append(dup.Vertices, m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]])
		dup.Triangles = append(dup.Triangles, mesh.Triangle{base, base + 1, base + 2})
	}

	origin, nx, ny, nz := CellSizeMode(dup, 0.1, 3)
	result, err := MakeLevelSet(dup, origin, 0.1, nx, ny, nz, Options{Repair: true, WeldTol: 1e-6})
	if err != nil {
		t.Fatalf("MakeLevelSet: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected repair warnings for a welded, hole-filled mesh")
	}
	if !result.Analysis.IsWatertight {
		t.Fatalf("post-repair analysis should be watertight, got %s", result.Analysis)
	}
}

func TestGridCountModeCentersMesh(t *testing.T) {
	m := cubeMesh()
	origin, dx := GridCountMode(m, 20, 20, 20, 2)
	if dx <= 0 {
		t.Fatalf("expected positive dx, got %v", dx)
	}
	gridCenter := origin.Add(geom.Vec3{X: 20 * dx, Y: 20 * dx, Z: 20 * dx}.Scale(0.5))
	if math.Abs(gridCenter.X) > 1e-9 || math.Abs(gridCenter.Y) > 1e-9 || math.Abs(gridCenter.Z) > 1e-9 {
		t.Fatalf("expected grid centered on mesh centroid (origin), got %+v", gridCenter)
	}
}

func TestIsGPUAvailableIsFalse(t *testing.T) {
	if IsGPUAvailable() {
		t.Fatal("CPU-only build must report no GPU backend")
	}
}
