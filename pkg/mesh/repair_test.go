package mesh

import "testing"

func TestWeldMergesDuplicatedCubeVertices(t *testing.T) {
	dup := cubeMeshDuplicatedVertices()
	if dup.VertexCount() != 36 {
		t.Fatalf("fixture setup: expected 36 duplicated vertices, got %d", dup.VertexCount())
	}

	welded, res := Weld(dup, 1e-6)
	if welded.VertexCount() != 8 {
		t.Fatalf("expected weld down to 8 vertices, got %d", welded.VertexCount())
	}
	if res.Merged != 36-8 {
		t.Fatalf("expected %d merges, got %d", 36-8, res.Merged)
	}
	if welded.TriangleCount() != dup.TriangleCount() {
		t.Fatalf("weld must not drop non-degenerate triangles: got %d want %d", welded.TriangleCount(), dup.TriangleCount())
	}

	a := Analyze(welded)
	if !a.IsWatertight {
		t.Fatalf("welded cube should be watertight, got %s", a)
	}
}

func TestWeldIsIdempotent(t *testing.T) {
	dup := cubeMeshDuplicatedVertices()
	once, _ := Weld(dup, 1e-6)
	twice, res := Weld(once, 1e-6)

	if twice.VertexCount() != once.VertexCount() {
		t.Fatalf("second weld changed vertex count: %d vs %d", twice.VertexCount(), once.VertexCount())
	}
	if res.Merged != 0 {
		t.Fatalf("second weld should merge nothing, got %d merges", res.Merged)
	}
}

func TestFillHolesOnWatertightMeshIsNoop(t *testing.T) {
	m := cubeMesh()
	filled, res := FillHoles(m)
	if res.TrianglesAdded != 0 {
		t.Fatalf("watertight mesh should need no repair triangles, got %d", res.TrianglesAdded)
	}
	if filled.TriangleCount() != m.TriangleCount() {
		t.Fatalf("triangle count changed on watertight mesh: %d vs %d", filled.TriangleCount(), m.TriangleCount())
	}
}

func TestFillHolesClosesMissingFace(t *testing.T) {
	m := cubeMesh()
	m.Triangles = m.Triangles[:len(m.Triangles)-2] // drop +x face

	filled, res := FillHoles(m)
	if res.TrianglesAdded == 0 {
		t.Fatal("expected FillHoles to add triangles for the missing face")
	}

	a := Analyze(filled)
	if !a.IsWatertight {
		t.Fatalf("mesh should be watertight after filling its only hole, got %s", a)
	}
}
