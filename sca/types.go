package sca

import "errors"

// Sentinel errors for SCA queries.
var (
	// ErrGraphNil is returned by New when the graph is nil.
	ErrGraphNil = errors.New("sca: graph is nil")

	// ErrEmptySources is returned when a query side has no vertices.
	ErrEmptySources = errors.New("sca: empty source set")

	// ErrVertexOutOfRange is returned when a source vertex, or a neighbour
	// reported by the graph, lies outside [0, V).
	ErrVertexOutOfRange = errors.New("sca: vertex out of range")

	// ErrNoCommonAncestor is returned when the two sides share no ancestor.
	// It cannot happen on a rooted graph where every vertex reaches the root.
	ErrNoCommonAncestor = errors.New("sca: no common ancestor")
)

// Graph is the read-only view of a concept graph the engine needs.
// Vertices are the dense range [0, V()); Adj(v) lists the hypernyms of v.
// Implementations must not change while an Engine is using them.
// *digraph.Digraph satisfies Graph.
type Graph interface {
	V() int
	Adj(v int) []int
}

// Result is the answer to one query.
type Result struct {
	// Ancestor is a shortest common ancestor. When several ancestors tie on
	// Length, which one is returned is unspecified.
	Ancestor int

	// Length is DistA(Ancestor) + DistB(Ancestor), the minimum over all
	// common ancestors.
	Length int
}

// Reach is the outcome of one multi-source BFS along hypernym edges:
// the visited set, the hop distance of every visited vertex from the
// nearest source, and the visit order (non-decreasing distance).
type Reach struct {
	dist  []int // -1 = not visited
	order []int
}

// Dist returns the hop distance from the nearest source to v,
// and false if v was not reached or lies outside the graph.
func (r *Reach) Dist(v int) (int, bool) {
	if v < 0 || v >= len(r.dist) || r.dist[v] < 0 {
		return 0, false
	}

	return r.dist[v], true
}

// Visited reports whether v was reached.
func (r *Reach) Visited(v int) bool {
	_, ok := r.Dist(v)

	return ok
}

// Order returns a copy of the visited vertices in BFS order.
func (r *Reach) Order() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)

	return out
}

// Len returns the size of the visited set.
func (r *Reach) Len() int { return len(r.order) }
