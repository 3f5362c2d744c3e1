package mesh

import "sort"

// edgeKey is an unordered vertex-index pair, canonicalized so (a,b) and
// (b,a) hash identically.
type edgeKey struct {
	lo, hi int32
}

func makeEdgeKey(a, b int32) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// edgeTable maps an unordered vertex-index pair to the list of triangle
// indices that contain it. Derived, rebuilt on demand — it is never stored
// on Mesh itself (spec.md §3: "Derived, rebuilt on demand").
type edgeTable map[edgeKey][]int

// buildEdgeTable walks every triangle's three edges and records the
// incident triangle index for each.
func buildEdgeTable(m *Mesh) edgeTable {
	table := make(edgeTable, len(m.Triangles)*3/2+1)
	for ti, t := range m.Triangles {
		edges := [3]edgeKey{
			makeEdgeKey(t[0], t[1]),
			makeEdgeKey(t[1], t[2]),
			makeEdgeKey(t[2], t[0]),
		}
		for _, e := range edges {
			table[e] = append(table[e], ti)
		}
	}
	return table
}

// Analysis is the result of analyzing a mesh's topology.
type Analysis struct {
	EdgeCount          int
	BoundaryEdgeCount  int
	NonManifoldCount   int
	BoundaryLoops      [][]int32
	IsManifold         bool
	IsWatertight       bool
}

// Analyze produces edge/triangle adjacency statistics, manifoldness, and
// boundary loops for m. IsManifold holds when no edge has more than two
// incident triangles; IsWatertight additionally requires zero boundary
// edges (spec.md §4.B).
func Analyze(m *Mesh) Analysis {
	table := buildEdgeTable(m)

	a := Analysis{EdgeCount: len(table), IsManifold: true}
	boundaryAdj := make(map[int32][]int32) // boundary-vertex adjacency graph

	for e, tris := range table {
		switch {
		case len(tris) == 1:
			a.BoundaryEdgeCount++
			boundaryAdj[e.lo] = append(boundaryAdj[e.lo], e.hi)
			boundaryAdj[e.hi] = append(boundaryAdj[e.hi], e.lo)
		case len(tris) > 2:
			a.NonManifoldCount++
			a.IsManifold = false
		}
	}

	a.IsWatertight = a.IsManifold && a.BoundaryEdgeCount == 0
	a.BoundaryLoops = findBoundaryLoops(boundaryAdj)
	return a
}

// findBoundaryLoops discovers cyclic boundary-vertex sequences by
// repeatedly picking an unvisited boundary vertex and walking to an
// unvisited neighbor until the start is revisited or no neighbor remains
// (spec.md §4.B). Loops shorter than 3 are discarded.
func findBoundaryLoops(adj map[int32][]int32) [][]int32 {
	// Sort vertex keys for a deterministic traversal order.
	verts := make([]int32, 0, len(adj))
	for v := range adj {
		verts = append(verts, v)
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i] < verts[j] })

	visited := make(map[int32]bool, len(adj))
	visitedEdge := make(map[edgeKey]bool)
	var loops [][]int32

	for _, start := range verts {
		if visited[start] {
			continue
		}
		loop := []int32{start}
		visited[start] = true
		cur := start
		for {
			next, closesLoop, ok := nextBoundaryStep(adj, cur, start, visited, visitedEdge)
			if !ok {
				break
			}
			visitedEdge[makeEdgeKey(cur, next)] = true
			if closesLoop {
				break
			}
			loop = append(loop, next)
			visited[next] = true
			cur = next
		}
		if len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// nextBoundaryStep returns the next vertex to walk to from v: an unvisited
// neighbor, or the loop's start vertex if that is the only way to close the
// cycle. Among candidates it prefers the smallest index for a deterministic
// walk. closesLoop is true when the step lands back on start.
func nextBoundaryStep(adj map[int32][]int32, v, start int32, visited map[int32]bool, visitedEdge map[edgeKey]bool) (next int32, closesLoop bool, ok bool) {
	bestUnvisited, haveUnvisited := int32(0), false
	canClose := false

	for _, n := range adj[v] {
		if visitedEdge[makeEdgeKey(v, n)] {
			continue
		}
		if n == start && v != start {
			canClose = true
			continue
		}
		if !visited[n] && (!haveUnvisited || n < bestUnvisited) {
			bestUnvisited, haveUnvisited = n, true
		}
	}

	if haveUnvisited {
		return bestUnvisited, false, true
	}
	if canClose {
		return start, true, true
	}
	return 0, false, false
}
