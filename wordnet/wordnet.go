package wordnet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hypernym/digraph"
	"github.com/katalvlaran/hypernym/sca"
)

// WordNet is a loaded noun hierarchy: the concept graph, the label index and
// an SCA engine over the graph.
type WordNet struct {
	graph   *digraph.Digraph
	engine  *sca.Engine
	synsets []synset
	index   index
	nouns   []string
	log     logrus.FieldLogger
}

// Parse builds a WordNet from a synset catalogue and a hypernym list.
func Parse(synsets, hypernyms io.Reader, opts ...Option) (*WordNet, error) {
	if synsets == nil || hypernyms == nil {
		return nil, ErrNilReader
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ss, err := parseSynsets(synsets, o.GlossColumn)
	if err != nil {
		return nil, err
	}
	g, err := parseHypernyms(hypernyms, len(ss))
	if err != nil {
		return nil, err
	}
	e, err := sca.New(g)
	if err != nil {
		return nil, err
	}

	idx := buildIndex(ss)
	wn := &WordNet{
		graph:   g,
		engine:  e,
		synsets: ss,
		index:   idx,
		nouns:   idx.labels(),
		log:     o.Logger,
	}
	wn.log.WithFields(logrus.Fields{
		"synsets": g.V(),
		"edges":   g.E(),
		"nouns":   len(wn.nouns),
		"root":    g.Root(),
	}).Debug("wordnet loaded")

	return wn, nil
}

// Load opens the two files and calls Parse.
func Load(synsetsPath, hypernymsPath string, opts ...Option) (*WordNet, error) {
	if synsetsPath == "" || hypernymsPath == "" {
		return nil, ErrEmptyPath
	}
	sf, err := os.Open(synsetsPath)
	if err != nil {
		return nil, fmt.Errorf("wordnet: open synsets: %w", err)
	}
	defer sf.Close()
	hf, err := os.Open(hypernymsPath)
	if err != nil {
		return nil, fmt.Errorf("wordnet: open hypernyms: %w", err)
	}
	defer hf.Close()

	return Parse(sf, hf, opts...)
}

// Graph returns the concept graph.
func (wn *WordNet) Graph() *digraph.Digraph { return wn.graph }

// Engine returns the SCA engine over the concept graph, nil on a nil WordNet.
func (wn *WordNet) Engine() *sca.Engine {
	if wn == nil {
		return nil
	}

	return wn.engine
}

// Len returns the number of synsets.
func (wn *WordNet) Len() int { return len(wn.synsets) }

// Nouns returns every distinct label in lexicographic order.
func (wn *WordNet) Nouns() []string {
	out := make([]string, len(wn.nouns))
	copy(out, wn.nouns)

	return out
}

// IsNoun reports whether word is a label of some synset. O(log N).
func (wn *WordNet) IsNoun(word string) bool { return wn.index.contains(word) }

// SynsetIDs returns the ids of every synset containing noun, ascending.
// Returns ErrNounNotFound for an unknown noun.
func (wn *WordNet) SynsetIDs(noun string) ([]int, error) {
	ids := wn.index.ids(noun)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNounNotFound, noun)
	}

	return ids, nil
}

// Synset returns the labels of synset id.
func (wn *WordNet) Synset(id int) ([]string, error) {
	if id < 0 || id >= len(wn.synsets) {
		return nil, fmt.Errorf("%w: %d", ErrSynsetID, id)
	}
	labels := wn.synsets[id].labels
	out := make([]string, len(labels))
	copy(out, labels)

	return out, nil
}

// Gloss returns the gloss of synset id, empty when none was loaded.
func (wn *WordNet) Gloss(id int) string {
	if id < 0 || id >= len(wn.synsets) {
		return ""
	}

	return wn.synsets[id].gloss
}

// Result resolves both nouns and runs one set query between their synsets.
func (wn *WordNet) Result(nounA, nounB string) (sca.Result, error) {
	a, err := wn.SynsetIDs(nounA)
	if err != nil {
		return sca.Result{}, err
	}
	b, err := wn.SynsetIDs(nounB)
	if err != nil {
		return sca.Result{}, err
	}

	return wn.engine.QuerySet(a, b)
}

// Distance returns the length of the shortest ancestral path between any
// synset of nounA and any synset of nounB.
func (wn *WordNet) Distance(nounA, nounB string) (int, error) {
	r, err := wn.Result(nounA, nounB)
	if err != nil {
		return -1, err
	}

	return r.Length, nil
}

// SCA returns the labels of a shortest common ancestor of nounA and nounB,
// joined by a single space.
func (wn *WordNet) SCA(nounA, nounB string) (string, error) {
	r, err := wn.Result(nounA, nounB)
	if err != nil {
		return "", err
	}

	return strings.Join(wn.synsets[r.Ancestor].labels, " "), nil
}
