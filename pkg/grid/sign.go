package grid

// ApplySign negates Phi[v] wherever Inside[v] has odd parity, converting
// the unsigned distance field into a signed one (spec.md §4.G). Voxels left
// at the sentinel (disconnected from any triangle — should not occur after
// Sweep on a non-empty mesh) keep their positive sign.
func (g *Grid) ApplySign() {
	for idx, inside := range g.Inside {
		if isOddParity(inside) {
			g.Phi[idx] = -g.Phi[idx]
		}
	}
}

// isOddParity reports whether n is odd, matching spec.md §4.E's
// "inside[i,j,k] is odd (equivalently, non-zero with correct winding)".
func isOddParity(n int32) bool {
	if n < 0 {
		n = -n
	}
	return n%2 != 0
}
