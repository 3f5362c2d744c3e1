package geom

import (
	"math"
	"testing"
)

func TestPointTriangleDistanceVertexRegion(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{0, 1, 0}
	p := Vec3{-1, -1, 0}

	got := PointTriangleDistance(p, a, b, c)
	want := p.Distance(a)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("vertex region: got %v want %v", got, want)
	}
}

func TestPointTriangleDistanceEdgeRegion(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 0, 0}
	c := Vec3{0, 2, 0}
	p := Vec3{1, -1, 0}

	got := PointTriangleDistance(p, a, b, c)
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("edge region: got %v want 1", got)
	}
}

func TestPointTriangleDistanceInterior(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{0, 1, 0}
	p := Vec3{0.25, 0.25, 2}

	got := PointTriangleDistance(p, a, b, c)
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("interior: got %v want 2", got)
	}
}

func TestPointTriangleDistanceDegenerateIsFinite(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{1, 1, 1}
	c := Vec3{1, 1, 1}
	p := Vec3{4, 5, 6}

	got := PointTriangleDistance(p, a, b, c)
	want := p.Distance(a)
	if math.IsNaN(got) || math.Abs(got-want) > 1e-9 {
		t.Fatalf("degenerate triangle: got %v want %v", got, want)
	}
}

func TestPointTriangleDistanceCollinearIsFinite(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{2, 0, 0}
	p := Vec3{0.5, 3, 0}

	got := PointTriangleDistance(p, a, b, c)
	if math.IsNaN(got) || math.Abs(got-3) > 1e-9 {
		t.Fatalf("collinear triangle: got %v want 3", got)
	}
}

func TestOrientationSign(t *testing.T) {
	// Point (0.1,0.1) lies to the left of the directed edge (0,0)->(1,0), so
	// its orientation is positive, and negative against the reversed edge.
	left := Orientation(0.1, 0.1, 0, 0, 1, 0)
	if left <= 0 {
		t.Fatalf("expected positive orientation, got %v", left)
	}
	right := Orientation(0.1, 0.1, 1, 0, 0, 0)
	if right >= 0 {
		t.Fatalf("expected negative orientation, got %v", right)
	}
}
