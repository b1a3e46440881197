package digraph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, V).
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

	// ErrNegativeSize indicates a negative vertex count.
	ErrNegativeSize = errors.New("digraph: negative vertex count")

	// ErrRootHasHypernyms indicates the designated root has outgoing edges.
	ErrRootHasHypernyms = errors.New("digraph: root has outgoing edges")

	// ErrBuilderSealed indicates a Builder was used after Build.
	ErrBuilderSealed = errors.New("digraph: builder already built")
)

// Edge is a directed hypernym link From → To.
type Edge struct {
	// From is the more specific concept.
	From int

	// To is the more general concept (the hypernym).
	To int
}

// Digraph is an immutable directed graph over vertices [0, V) with one root.
// A *Digraph is safe for concurrent use by multiple goroutines.
type Digraph struct {
	adj   [][]int // adj[v] = hypernyms of v, in insertion order
	edges int
	root  int
}
