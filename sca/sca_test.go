package sca_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernym/digraph"
	"github.com/katalvlaran/hypernym/sca"
)

// smallHierarchy builds
//
//	3 → 1 → 0
//	4 → 1
//	2 → 0
func smallHierarchy(t *testing.T) *digraph.Digraph {
	t.Helper()
	g, err := digraph.New(5, 0,
		digraph.Edge{From: 1, To: 0},
		digraph.Edge{From: 2, To: 0},
		digraph.Edge{From: 3, To: 1},
		digraph.Edge{From: 4, To: 1},
	)
	require.NoError(t, err)

	return g
}

func newEngine(t *testing.T, g sca.Graph) *sca.Engine {
	t.Helper()
	e, err := sca.New(g)
	require.NoError(t, err)

	return e
}

// TestNew_NilGraph verifies the constructor rejects a nil graph.
func TestNew_NilGraph(t *testing.T) {
	e, err := sca.New(nil)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, sca.ErrGraphNil)

	// a nil *digraph.Digraph is still a nil graph
	var g *digraph.Digraph
	e, err = sca.New(g)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, sca.ErrGraphNil)
}

// TestQuery_InvalidSources covers empty and out-of-range sources on every entry point.
func TestQuery_InvalidSources(t *testing.T) {
	e := newEngine(t, smallHierarchy(t))

	_, err := e.QuerySet(nil, []int{1})
	assert.ErrorIs(t, err, sca.ErrEmptySources)
	_, err = e.QuerySet([]int{1}, []int{})
	assert.ErrorIs(t, err, sca.ErrEmptySources)
	_, err = e.Reach(nil)
	assert.ErrorIs(t, err, sca.ErrEmptySources)

	_, err = e.Query(-1, 0)
	assert.ErrorIs(t, err, sca.ErrVertexOutOfRange)
	_, err = e.Query(0, 5)
	assert.ErrorIs(t, err, sca.ErrVertexOutOfRange)
	_, err = e.QuerySet([]int{1, 9}, []int{2})
	assert.ErrorIs(t, err, sca.ErrVertexOutOfRange)

	a, err := e.Ancestor(7, 0)
	assert.ErrorIs(t, err, sca.ErrVertexOutOfRange)
	assert.Equal(t, -1, a)
	l, err := e.LengthSet([]int{}, []int{0})
	assert.ErrorIs(t, err, sca.ErrEmptySources)
	assert.Equal(t, -1, l)
}

// TestQuery_Scenario checks the reference hierarchy answers.
func TestQuery_Scenario(t *testing.T) {
	e := newEngine(t, smallHierarchy(t))

	anc, err := e.Ancestor(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, anc)
	l, err := e.Length(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, l)

	anc, err = e.Ancestor(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, anc)
	l, err = e.Length(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, l)

	// set form gives the same answers
	anc, err = e.AncestorSet([]int{3}, []int{4})
	require.NoError(t, err)
	assert.Equal(t, 1, anc)
	l, err = e.LengthSet([]int{3}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, 3, l)
}

// TestQuerySet_MultiSource covers A={3,4}, B={2}: only the root is shared.
func TestQuerySet_MultiSource(t *testing.T) {
	e := newEngine(t, smallHierarchy(t))

	r, err := e.QuerySet([]int{3, 4}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, sca.Result{Ancestor: 0, Length: 3}, r)

	// overlapping sets meet at distance zero
	r, err = e.QuerySet([]int{3, 2}, []int{2, 4})
	require.NoError(t, err)
	assert.Equal(t, sca.Result{Ancestor: 2, Length: 0}, r)

	// duplicates are harmless
	r, err = e.QuerySet([]int{3, 3, 3}, []int{4, 4})
	require.NoError(t, err)
	assert.Equal(t, sca.Result{Ancestor: 1, Length: 2}, r)
}

// TestQuery_SelfDistance checks distance({v},{v}) == 0 and ancestor == v.
func TestQuery_SelfDistance(t *testing.T) {
	g := smallHierarchy(t)
	e := newEngine(t, g)
	for v := 0; v < g.V(); v++ {
		r, err := e.Query(v, v)
		require.NoError(t, err)
		assert.Equal(t, sca.Result{Ancestor: v, Length: 0}, r)

		r, err = e.QuerySet([]int{v}, []int{v})
		require.NoError(t, err)
		assert.Equal(t, sca.Result{Ancestor: v, Length: 0}, r)
	}
}

// TestQuery_FirstSharedVertexIsNotEnough builds a DAG where the first ancestor
// of w that v also reaches is not the shortest common ancestor:
//
//	1 → 2 → 3 → 0
//	4 → 0
//	4 → 5 → 2
//
// From 4 the root is dequeued first (total 3+1), but 2 gives 1+2.
func TestQuery_FirstSharedVertexIsNotEnough(t *testing.T) {
	g, err := digraph.New(6, 0,
		digraph.Edge{From: 1, To: 2},
		digraph.Edge{From: 2, To: 3},
		digraph.Edge{From: 3, To: 0},
		digraph.Edge{From: 4, To: 0},
		digraph.Edge{From: 4, To: 5},
		digraph.Edge{From: 5, To: 2},
	)
	require.NoError(t, err)
	e := newEngine(t, g)

	r, err := e.Query(1, 4)
	require.NoError(t, err)
	assert.Equal(t, sca.Result{Ancestor: 2, Length: 3}, r)

	rs, err := e.QuerySet([]int{1}, []int{4})
	require.NoError(t, err)
	assert.Equal(t, r, rs)
}

// TestReach_RootUniversality checks that the root is reached from every
// vertex and that distance({v},{root}) equals the root's BFS depth from v.
func TestReach_RootUniversality(t *testing.T) {
	g := smallHierarchy(t)
	e := newEngine(t, g)
	root := g.Root()

	for v := 0; v < g.V(); v++ {
		reach, err := e.Reach([]int{v})
		require.NoError(t, err)
		require.True(t, reach.Visited(root), "root not reached from %d", v)

		depth, ok := reach.Dist(root)
		require.True(t, ok)
		l, err := e.Length(v, root)
		require.NoError(t, err)
		assert.Equal(t, depth, l, "vertex %d", v)
	}
}

// TestReach_Accessors covers Dist, Visited, Order and Len.
func TestReach_Accessors(t *testing.T) {
	e := newEngine(t, smallHierarchy(t))

	reach, err := e.Reach([]int{3, 2})
	require.NoError(t, err)

	assert.Equal(t, 4, reach.Len())
	assert.Equal(t, []int{3, 2, 1, 0}, reach.Order())
	d, ok := reach.Dist(0)
	assert.True(t, ok)
	assert.Equal(t, 1, d)
	assert.False(t, reach.Visited(4))
	_, ok = reach.Dist(99)
	assert.False(t, ok)

	// Order returns a copy
	order := reach.Order()
	order[0] = 42
	assert.Equal(t, 3, reach.Order()[0])
}

// TestQuery_CyclicInputTerminates documents that a cycle does not hang a query.
func TestQuery_CyclicInputTerminates(t *testing.T) {
	g, err := digraph.New(3, 0,
		digraph.Edge{From: 1, To: 2},
		digraph.Edge{From: 2, To: 1},
		digraph.Edge{From: 2, To: 0},
	)
	require.NoError(t, err)
	e := newEngine(t, g)

	l, err := e.Length(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, l)
}

// disconnected has two roots; vertices 0 and 1 share nothing.
type disconnected struct{}

func (disconnected) V() int        { return 2 }
func (disconnected) Adj(int) []int { return nil }

// badNeighbor reports a hypernym outside the vertex range.
type badNeighbor struct{}

func (badNeighbor) V() int { return 2 }
func (badNeighbor) Adj(v int) []int {
	if v == 1 {
		return []int{7}
	}
	return nil
}

// TestQuery_MalformedGraphs covers the structured errors for broken inputs.
func TestQuery_MalformedGraphs(t *testing.T) {
	e := newEngine(t, disconnected{})
	_, err := e.Query(0, 1)
	assert.ErrorIs(t, err, sca.ErrNoCommonAncestor)
	_, err = e.QuerySet([]int{0}, []int{1})
	assert.ErrorIs(t, err, sca.ErrNoCommonAncestor)

	e = newEngine(t, badNeighbor{})
	_, err = e.Query(1, 0)
	assert.ErrorIs(t, err, sca.ErrVertexOutOfRange)
	_, err = e.QuerySet([]int{0}, []int{1})
	assert.ErrorIs(t, err, sca.ErrVertexOutOfRange)
}

// randomDAG returns a rooted DAG on n vertices: every v > 0 gets between one
// and three hypernyms drawn from [0, v), so 0 is the only root.
func randomDAG(t *testing.T, rnd *rand.Rand, n int) *digraph.Digraph {
	t.Helper()
	b, err := digraph.NewBuilder(n)
	require.NoError(t, err)
	for v := 1; v < n; v++ {
		k := 1 + rnd.Intn(3)
		for i := 0; i < k; i++ {
			require.NoError(t, b.AddEdge(v, rnd.Intn(v)))
		}
	}
	g, err := b.Build(0)
	require.NoError(t, err)

	return g
}

// allPairs returns d[u][x], the directed hop distance from u to x (MaxInt if none),
// by Floyd–Warshall.
func allPairs(g *digraph.Digraph) [][]int {
	n := g.V()
	d := make([][]int, n)
	for u := range d {
		d[u] = make([]int, n)
		for x := range d[u] {
			d[u][x] = math.MaxInt
		}
		d[u][u] = 0
		for _, x := range g.Adj(u) {
			d[u][x] = 1
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k] == math.MaxInt || d[k][j] == math.MaxInt {
					continue
				}
				if s := d[i][k] + d[k][j]; s < d[i][j] {
					d[i][j] = s
				}
			}
		}
	}

	return d
}

// bruteForce enumerates every common ancestor of a and b and returns the minimum length
// together with the set of vertices achieving it.
func bruteForce(d [][]int, a, b []int) (int, map[int]bool) {
	minDist := func(src []int, x int) int {
		best := math.MaxInt
		for _, s := range src {
			if d[s][x] < best {
				best = d[s][x]
			}
		}
		return best
	}
	best := math.MaxInt
	arg := map[int]bool{}
	for x := range d {
		da, db := minDist(a, x), minDist(b, x)
		if da == math.MaxInt || db == math.MaxInt {
			continue
		}
		switch s := da + db; {
		case s < best:
			best = s
			arg = map[int]bool{x: true}
		case s == best:
			arg[x] = true
		}
	}

	return best, arg
}

func randomSet(rnd *rand.Rand, n int) []int {
	k := 1 + rnd.Intn(3)
	out := make([]int, k)
	for i := range out {
		out[i] = rnd.Intn(n)
	}

	return out
}

// TestQuery_BruteForceRandomDAGs cross-checks both query paths against exhaustive
// enumeration on small random DAGs, and checks symmetry along the way.
func TestQuery_BruteForceRandomDAGs(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rnd.Intn(19) // 2..20 vertices
		g := randomDAG(t, rnd, n)
		e := newEngine(t, g)
		d := allPairs(g)

		for q := 0; q < 20; q++ {
			// single pair: early-stop path vs. set path vs. brute force
			v, w := rnd.Intn(n), rnd.Intn(n)
			want, arg := bruteForce(d, []int{v}, []int{w})

			r, err := e.Query(v, w)
			require.NoError(t, err)
			rs, err := e.QuerySet([]int{v}, []int{w})
			require.NoError(t, err)

			assert.Equal(t, want, r.Length, "trial %d pair (%d,%d)", trial, v, w)
			assert.Equal(t, r.Length, rs.Length, "trial %d pair (%d,%d)", trial, v, w)
			assert.True(t, arg[r.Ancestor], "trial %d: %d is not a shortest ancestor", trial, r.Ancestor)
			assert.True(t, arg[rs.Ancestor], "trial %d: %d is not a shortest ancestor", trial, rs.Ancestor)

			back, err := e.Length(w, v)
			require.NoError(t, err)
			assert.Equal(t, r.Length, back, "symmetry (%d,%d)", v, w)

			// multi-source sets
			a, b := randomSet(rnd, n), randomSet(rnd, n)
			want, arg = bruteForce(d, a, b)
			rs, err = e.QuerySet(a, b)
			require.NoError(t, err)
			assert.Equal(t, want, rs.Length, "trial %d sets %v %v", trial, a, b)
			assert.True(t, arg[rs.Ancestor], "trial %d sets %v %v: ancestor %d", trial, a, b, rs.Ancestor)

			rev, err := e.LengthSet(b, a)
			require.NoError(t, err)
			assert.Equal(t, rs.Length, rev, "symmetry %v %v", a, b)
		}
	}
}

// TestEngine_ConcurrentQueries runs queries from many goroutines against one engine.
func TestEngine_ConcurrentQueries(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	g := randomDAG(t, rnd, 200)
	e := newEngine(t, g)

	want := make([]int, g.V())
	for v := range want {
		l, err := e.Length(v, g.V()-1)
		require.NoError(t, err)
		want[v] = l
	}

	var wg sync.WaitGroup
	errs := make(chan error, g.V())
	for v := 0; v < g.V(); v++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			l, err := e.LengthSet([]int{v}, []int{g.V() - 1})
			if err != nil {
				errs <- err
				return
			}
			assert.Equal(t, want[v], l, "vertex %d", v)
		}(v)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent query: %v", err)
	}
}
