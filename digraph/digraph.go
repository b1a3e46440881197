package digraph

import "fmt"

// Builder accumulates edges for a Digraph of a fixed size.
// A Builder is not safe for concurrent use.
type Builder struct {
	adj    [][]int
	edges  int
	sealed bool
}

// NewBuilder returns a Builder for a graph with n vertices and no edges.
// Returns ErrNegativeSize if n < 0.
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}

	return &Builder{adj: make([][]int, n)}, nil
}

// AddEdge records the hypernym link from → to.
// Parallel edges are kept; they do not change any BFS distance.
func (b *Builder) AddEdge(from, to int) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if err := b.check(from); err != nil {
		return err
	}
	if err := b.check(to); err != nil {
		return err
	}
	b.adj[from] = append(b.adj[from], to)
	b.edges++

	return nil
}

// Build freezes the accumulated edges into a Digraph rooted at root.
// The root must be in range and have no outgoing edges.
// After Build the Builder rejects further use with ErrBuilderSealed.
func (b *Builder) Build(root int) (*Digraph, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	if err := b.check(root); err != nil {
		return nil, err
	}
	if len(b.adj[root]) != 0 {
		return nil, fmt.Errorf("%w: root %d has %d hypernym(s)", ErrRootHasHypernyms, root, len(b.adj[root]))
	}
	b.sealed = true

	g := &Digraph{adj: b.adj, edges: b.edges, root: root}
	b.adj = nil

	return g, nil
}

func (b *Builder) check(v int) error {
	if v < 0 || v >= len(b.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(b.adj))
	}

	return nil
}

// New builds a Digraph with n vertices, the given root and edges in one call.
func New(n, root int, edges ...Edge) (*Digraph, error) {
	b, err := NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = b.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return b.Build(root)
}

// V returns the number of vertices.
func (g *Digraph) V() int { return len(g.adj) }

// E returns the number of edges, parallel edges included.
func (g *Digraph) E() int { return g.edges }

// Root returns the designated root vertex.
func (g *Digraph) Root() int { return g.root }

// Adj returns the hypernyms of v in insertion order.
// The returned slice is shared with the graph and must not be modified.
// Adj panics if v is outside [0, V); use Contains to check first.
func (g *Digraph) Adj(v int) []int { return g.adj[v] }

// OutDegree returns the number of hypernyms of v.
func (g *Digraph) OutDegree(v int) int { return len(g.adj[v]) }

// Contains reports whether v is a vertex of g.
func (g *Digraph) Contains(v int) bool { return v >= 0 && v < len(g.adj) }

// Edges returns a fresh slice of every edge, ordered by source vertex.
func (g *Digraph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for v, hs := range g.adj {
		for _, w := range hs {
			out = append(out, Edge{From: v, To: w})
		}
	}

	return out
}
