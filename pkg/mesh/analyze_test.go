package mesh

import "testing"

func TestAnalyzeSingleTriangleIsBoundary(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Triangles: []Triangle{{0, 1, 2}},
	}
	a := Analyze(m)
	if a.EdgeCount != 3 {
		t.Fatalf("expected 3 edges, got %d", a.EdgeCount)
	}
	if a.BoundaryEdgeCount != 3 {
		t.Fatalf("expected 3 boundary edges, got %d", a.BoundaryEdgeCount)
	}
	if !a.IsManifold {
		t.Fatal("single triangle should be manifold")
	}
	if a.IsWatertight {
		t.Fatal("single triangle is not watertight")
	}
	if len(a.BoundaryLoops) != 1 || len(a.BoundaryLoops[0]) != 3 {
		t.Fatalf("expected one 3-vertex boundary loop, got %+v", a.BoundaryLoops)
	}
}

func TestAnalyzeCubeMinusOneFaceHasOneLoop(t *testing.T) {
	m := cubeMesh()
	// Drop the two triangles covering the +x face (indices 10, 11 per the
	// face order in cubeMesh).
	m.Triangles = m.Triangles[:len(m.Triangles)-2]

	a := Analyze(m)
	if a.IsWatertight {
		t.Fatal("mesh with a missing face must not be watertight")
	}
	if len(a.BoundaryLoops) != 1 {
		t.Fatalf("expected exactly one boundary loop, got %d", len(a.BoundaryLoops))
	}
	if len(a.BoundaryLoops[0]) != 4 {
		t.Fatalf("expected a 4-vertex boundary loop around the missing face, got %d vertices", len(a.BoundaryLoops[0]))
	}
}

func TestAnalyzeNonManifoldEdge(t *testing.T) {
	// Three triangles sharing the edge (0,1): a non-manifold "book" fold.
	m := &Mesh{
		Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}},
		Triangles: []Triangle{
			{0, 1, 2},
			{0, 1, 3},
			{0, 1, 4},
		},
	}
	a := Analyze(m)
	if a.IsManifold {
		t.Fatal("shared edge with 3 incident triangles must not be manifold")
	}
	if a.NonManifoldCount != 1 {
		t.Fatalf("expected 1 non-manifold edge, got %d", a.NonManifoldCount)
	}
}
