// Package digraph provides the immutable concept graph the SCA engine walks:
// a directed graph over the dense vertex range [0, V) whose edges point from a
// concept to its more general hypernym(s).
//
// What
//
//   - Vertices are plain ints; labels live elsewhere (see package wordnet).
//   - Edges are unweighted and directed (specific → general).
//   - A vertex may have several hypernyms, so the graph is a DAG, not a tree.
//   - The root is a required argument of Build and must have out-degree 0.
//
// Why
//
//	Keeping the graph dense and frozen lets breadth-first searches index
//	distance and visited arrays directly by vertex id, and lets any number of
//	goroutines read one Digraph without locks.
//
// Preconditions (not checked)
//
//   - The graph is acyclic.
//   - Every vertex reaches the root by following outgoing edges.
//
// Complexity (V = vertices, E = edges)
//
//   - Build:   O(V + E) time and memory.
//   - Adj:     O(1).
//
// Errors
//
//   - ErrVertexOutOfRange  an edge endpoint or the root is outside [0, V).
//   - ErrNegativeSize      NewBuilder was called with a negative size.
//   - ErrRootHasHypernyms  the chosen root has outgoing edges.
//   - ErrBuilderSealed     the Builder was reused after Build.
package digraph
