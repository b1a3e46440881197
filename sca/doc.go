// Package sca finds shortest common ancestors in a rooted DAG of hypernyms.
//
// What
//
//   - A common ancestor of two vertex sets A and B is a vertex reachable,
//     along hypernym edges, from some member of A and some member of B.
//   - Its ancestral path length is DistA(x) + DistB(x), where DistS(x) is the
//     hop count from the nearest member of S.
//   - A shortest common ancestor (SCA) minimises that length.
//
// The engine answers this for single vertices (Query, Ancestor, Length) and
// for arbitrary finite sets (QuerySet, AncestorSet, LengthSet). A single
// vertex is the one-element set; both paths return the same Length for it.
//
// How
//
//	Set queries run a multi-source BFS from each side and scan the vertices
//	visited by both. Pair queries expand v fully, then walk up from w and stop
//	once the frontier depth alone can no longer beat the best candidate.
//	Visited sets and distances are dense slices indexed by vertex id; nothing
//	is cached between queries.
//
// Preconditions (not checked)
//
//   - The graph is acyclic and every vertex reaches the root.
//     On a cyclic graph every query still terminates, but the answer need not
//     be an ancestor in any meaningful sense.
//
// Concurrency
//
//	An Engine holds only the graph and its size. Any number of goroutines may
//	query one Engine at the same time provided the graph is not mutated.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per query.
//   - Memory: O(V) per query.
//
// Usage
//
//	g, _ := digraph.New(5, 0,
//		digraph.Edge{From: 1, To: 0}, digraph.Edge{From: 2, To: 0},
//		digraph.Edge{From: 3, To: 1}, digraph.Edge{From: 4, To: 1})
//	e, _ := sca.New(g)
//	r, _ := e.Query(3, 4) // r.Ancestor == 1, r.Length == 2
//
// Errors
//
//   - ErrGraphNil          New received a nil graph.
//   - ErrEmptySources      a query side is empty.
//   - ErrVertexOutOfRange  a source (or a neighbour reported by the graph)
//     is outside [0, V).
//   - ErrNoCommonAncestor  the sides share no ancestor (disconnected input).
package sca
