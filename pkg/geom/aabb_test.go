package geom

import "testing"

func TestAABBExtendAndSize(t *testing.T) {
	box := EmptyAABB()
	box = box.Extend(Vec3{1, 2, 3})
	box = box.Extend(Vec3{-1, 0, 5})

	size := box.Size()
	if size.X != 2 || size.Y != 2 || size.Z != 2 {
		t.Fatalf("unexpected size: %+v", size)
	}
}

func TestAABBPad(t *testing.T) {
	box := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	padded := box.Pad(0.5)
	if padded.Min != (Vec3{-0.5, -0.5, -0.5}) || padded.Max != (Vec3{1.5, 1.5, 1.5}) {
		t.Fatalf("unexpected padded box: %+v", padded)
	}
}
