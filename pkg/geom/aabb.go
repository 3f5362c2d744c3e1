package geom

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns an inverted box suitable as the identity for Extend.
func EmptyAABB() AABB {
	const inf = 1e300
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Extend grows the box to include p.
func (b AABB) Extend(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Size returns Max-Min.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Diagonal returns the length of the box diagonal.
func (b AABB) Diagonal() float64 {
	return b.Size().Length()
}

// Pad grows the box by d in every direction.
func (b AABB) Pad(d float64) AABB {
	pad := Vec3{d, d, d}
	return AABB{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}
