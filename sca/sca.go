package sca

import (
	"fmt"
	"math"
	"reflect"
)

// Engine answers shortest-common-ancestor queries over one Graph.
// It keeps no per-query state, so one Engine may serve concurrent callers
// as long as the Graph is never mutated.
type Engine struct {
	g Graph
	n int
}

// New returns an Engine over g. Returns ErrGraphNil if g is nil,
// including a nil pointer wrapped in the interface.
func New(g Graph) (*Engine, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}

	return &Engine{g: g, n: g.V()}, nil
}

func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}

	return false
}

// walker holds the query-scoped state of one BFS.
// order doubles as the FIFO queue: order[head:] is the frontier.
type walker struct {
	g     Graph
	dist  []int
	order []int
}

func newWalker(g Graph, n int) *walker {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}

	return &walker{g: g, dist: dist, order: make([]int, 0, 16)}
}

// seed marks v as a source at depth 0; duplicates are ignored.
func (w *walker) seed(v int) {
	if w.dist[v] < 0 {
		w.dist[v] = 0
		w.order = append(w.order, v)
	}
}

// run expands the frontier until it is empty or visit returns false.
// visit is called once per dequeued vertex, in non-decreasing depth order,
// before its hypernyms are enqueued.
func (w *walker) run(visit func(v, depth int) bool) error {
	for head := 0; head < len(w.order); head++ {
		v := w.order[head]
		d := w.dist[v]
		if visit != nil && !visit(v, d) {
			return nil
		}
		for _, h := range w.g.Adj(v) {
			if h < 0 || h >= len(w.dist) {
				return fmt.Errorf("%w: hypernym %d of %d", ErrVertexOutOfRange, h, v)
			}
			if w.dist[h] < 0 {
				w.dist[h] = d + 1
				w.order = append(w.order, h)
			}
		}
	}

	return nil
}

func (e *Engine) checkSources(side string, src []int) error {
	if len(src) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptySources, side)
	}
	for _, v := range src {
		if v < 0 || v >= e.n {
			return fmt.Errorf("%w: %s source %d not in [0,%d)", ErrVertexOutOfRange, side, v, e.n)
		}
	}

	return nil
}

// Reach runs one multi-source BFS from sources and returns every ancestor
// reached with its distance from the nearest source.
func (e *Engine) Reach(sources []int) (*Reach, error) {
	if err := e.checkSources("sources", sources); err != nil {
		return nil, err
	}

	return e.reach(sources)
}

func (e *Engine) reach(sources []int) (*Reach, error) {
	w := newWalker(e.g, e.n)
	for _, v := range sources {
		w.seed(v)
	}
	if err := w.run(nil); err != nil {
		return nil, err
	}

	return &Reach{dist: w.dist, order: w.order}, nil
}

// QuerySet returns a shortest common ancestor of the vertex sets a and b
// together with the length of the shortest ancestral path through it.
//
// Both sets are expanded fully; every vertex reached from both is a
// candidate, and the candidate minimising DistA + DistB wins. Among equal
// sums the first one in a's BFS order is returned.
// Complexity: O(V + E).
func (e *Engine) QuerySet(a, b []int) (Result, error) {
	if err := e.checkSources("a", a); err != nil {
		return Result{}, err
	}
	if err := e.checkSources("b", b); err != nil {
		return Result{}, err
	}

	ra, err := e.reach(a)
	if err != nil {
		return Result{}, err
	}
	rb, err := e.reach(b)
	if err != nil {
		return Result{}, err
	}

	best := Result{Ancestor: -1, Length: math.MaxInt}
	for _, x := range ra.order {
		db := rb.dist[x]
		if db < 0 {
			continue
		}
		if sum := ra.dist[x] + db; sum < best.Length {
			best = Result{Ancestor: x, Length: sum}
		}
	}
	if best.Ancestor < 0 {
		return Result{}, ErrNoCommonAncestor
	}

	return best, nil
}

// Query returns a shortest common ancestor of v and w and the length of the
// shortest ancestral path through it.
//
// The ancestors of v are expanded fully; the BFS from w then stops as soon as
// its frontier depth reaches the best sum found so far, because every vertex
// dequeued later has DistW >= that depth and DistV >= 0. On a hierarchy close
// to a tree this stops within a few levels of the first shared vertex.
// Complexity: O(V + E), usually far less for the second search.
func (e *Engine) Query(v, w int) (Result, error) {
	if err := e.checkSources("v", []int{v}); err != nil {
		return Result{}, err
	}
	if err := e.checkSources("w", []int{w}); err != nil {
		return Result{}, err
	}

	rv, err := e.reach([]int{v})
	if err != nil {
		return Result{}, err
	}

	best := Result{Ancestor: -1, Length: math.MaxInt}
	ww := newWalker(e.g, e.n)
	ww.seed(w)
	err = ww.run(func(x, depth int) bool {
		if depth >= best.Length {
			return false
		}
		if dv := rv.dist[x]; dv >= 0 && dv+depth < best.Length {
			best = Result{Ancestor: x, Length: dv + depth}
		}

		return true
	})
	if err != nil {
		return Result{}, err
	}
	if best.Ancestor < 0 {
		return Result{}, ErrNoCommonAncestor
	}

	return best, nil
}

// Ancestor returns a shortest common ancestor of v and w.
func (e *Engine) Ancestor(v, w int) (int, error) {
	r, err := e.Query(v, w)
	if err != nil {
		return -1, err
	}

	return r.Ancestor, nil
}

// Length returns the length of the shortest ancestral path between v and w.
func (e *Engine) Length(v, w int) (int, error) {
	r, err := e.Query(v, w)
	if err != nil {
		return -1, err
	}

	return r.Length, nil
}

// AncestorSet returns a shortest common ancestor of the sets a and b.
func (e *Engine) AncestorSet(a, b []int) (int, error) {
	r, err := e.QuerySet(a, b)
	if err != nil {
		return -1, err
	}

	return r.Ancestor, nil
}

// LengthSet returns the length of the shortest ancestral path between any
// vertex of a and any vertex of b.
func (e *Engine) LengthSet(a, b []int) (int, error) {
	r, err := e.QuerySet(a, b)
	if err != nil {
		return -1, err
	}

	return r.Length, nil
}
