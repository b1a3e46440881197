package wordnet

import (
	"cmp"
	"slices"
	"sort"
)

// entry pairs a label with one synset containing it.
type entry struct {
	label string
	id    int
}

// index is a (label, id)-sorted slice searched by binary search.
type index []entry

func buildIndex(synsets []synset) index {
	n := 0
	for _, s := range synsets {
		n += len(s.labels)
	}
	idx := make(index, 0, n)
	for id, s := range synsets {
		for _, l := range s.labels {
			idx = append(idx, entry{label: l, id: id})
		}
	}
	slices.SortFunc(idx, func(a, b entry) int {
		if c := cmp.Compare(a.label, b.label); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	// a label repeated inside one synset would otherwise yield its id twice
	return slices.Compact(idx)
}

// lower returns the first position whose label is >= s.
func (x index) lower(s string) int {
	return sort.Search(len(x), func(i int) bool { return x[i].label >= s })
}

func (x index) contains(s string) bool {
	i := x.lower(s)

	return i < len(x) && x[i].label == s
}

// ids returns the ascending synset ids of s, or nil.
func (x index) ids(s string) []int {
	var out []int
	for i := x.lower(s); i < len(x) && x[i].label == s; i++ {
		out = append(out, x[i].id)
	}

	return out
}

// labels returns the distinct labels in order.
func (x index) labels() []string {
	out := make([]string, 0, len(x))
	for i, e := range x {
		if i == 0 || x[i-1].label != e.label {
			out = append(out, e.label)
		}
	}

	return out
}
