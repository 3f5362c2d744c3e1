package sdf

import (
	"testing"

	"github.com/deadsy/sdfx/render"
	sdfxsdf "github.com/deadsy/sdfx/sdf"

	"github.com/sdfgen/sdfgen/pkg/mesh"
)

// sphereFixtureCells controls marching-cubes tessellation resolution for
// the sphere test fixture below; it only needs to be fine enough that the
// tessellation error is small relative to the grid's dx in the tests that
// use it.
const sphereFixtureCells = 40

// sphereMesh tessellates a unit-radius-scaled sphere using
// github.com/deadsy/sdfx — the same SDF-to-mesh path the teacher's own
// SdfxKernel.ToMesh uses — to produce a ground-truth triangle mesh for
// spec.md §8 scenario 6 ("sphere of radius r approximated by N
// triangles"). Using sdfx here keeps its marching-cubes renderer exercised
// by this repository even though the repository's own core goes the
// opposite direction (mesh to SDF, not SDF to mesh).
func sphereMesh(t *testing.T, radius float64) (*mesh.Mesh, int) {
	t.Helper()

	s, err := sdfxsdf.Sphere3D(radius)
	if err != nil {
		t.Fatalf("sdfx.Sphere3D: %v", err)
	}

	renderer := render.NewMarchingCubesUniform(sphereFixtureCells)
	triangles := render.ToTriangles(s, renderer)
	if len(triangles) == 0 {
		t.Fatal("sdfx produced zero triangles for sphere fixture")
	}

	out := mesh.New()
	out.Vertices = make([]mesh.Vertex, 0, len(triangles)*3)
	out.Triangles = make([]mesh.Triangle, 0, len(triangles))
	for _, tri := range triangles {
		base := int32(len(out.Vertices))
		for j := 0; j < 3; j++ {
			v := tri[j]
			out.Vertices = append(out.Vertices, mesh.Vertex{
				X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z),
			})
		}
		out.Triangles = append(out.Triangles, mesh.Triangle{base, base + 1, base + 2})
	}
	return out, len(triangles)
}
