package wordnet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hypernym/digraph"
)

// synset is one parsed catalogue entry.
type synset struct {
	labels []string
	gloss  string
}

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // variable arity
	cr.LazyQuotes = true    // glosses quote freely
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

func parseID(s string, line int) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedLine, line, s)
	}

	return id, nil
}

// parseSynsets reads the catalogue and returns entries indexed by id.
func parseSynsets(r io.Reader, glossColumn bool) ([]synset, error) {
	cr := newCSVReader(r)
	byID := map[int]synset{}
	maxID := -1

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: synsets: %v", ErrMalformedLine, err)
		}
		line, _ := cr.FieldPos(0)

		id, err := parseID(rec[0], line)
		if err != nil {
			return nil, err
		}
		if id < 0 {
			return nil, fmt.Errorf("%w: line %d: negative id %d", ErrSynsetID, line, id)
		}
		if _, dup := byID[id]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate id %d", ErrSynsetID, line, id)
		}

		var s synset
		fields := rec[1:]
		if glossColumn && len(fields) > 1 {
			s.gloss = strings.Join(fields[1:], ",")
			fields = fields[:1]
		}
		for _, f := range fields {
			s.labels = append(s.labels, strings.Fields(f)...)
		}
		if len(s.labels) == 0 {
			return nil, fmt.Errorf("%w: line %d: synset %d has no labels", ErrMalformedLine, line, id)
		}

		byID[id] = s
		if id > maxID {
			maxID = id
		}
	}

	if maxID+1 != len(byID) {
		return nil, fmt.Errorf("%w: ids are not dense: %d synsets, highest id %d", ErrSynsetID, len(byID), maxID)
	}
	out := make([]synset, len(byID))
	for id, s := range byID {
		out[id] = s
	}

	return out, nil
}

// parseHypernyms reads the hypernym list into a Digraph over n vertices.
func parseHypernyms(r io.Reader, n int) (*digraph.Digraph, error) {
	b, err := digraph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	cr := newCSVReader(r)
	root := -1

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: hypernyms: %v", ErrMalformedLine, err)
		}
		line, _ := cr.FieldPos(0)

		id, err := parseID(rec[0], line)
		if err != nil {
			return nil, err
		}
		if id < 0 || id >= n {
			return nil, fmt.Errorf("%w: line %d: id %d not in [0,%d)", ErrSynsetID, line, id, n)
		}

		parents := 0
		for _, f := range rec[1:] {
			if strings.TrimSpace(f) == "" {
				continue
			}
			p, err := parseID(f, line)
			if err != nil {
				return nil, err
			}
			if err = b.AddEdge(id, p); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrSynsetID, line, err)
			}
			parents++
		}

		if parents == 0 {
			if root >= 0 && root != id {
				return nil, fmt.Errorf("%w: %d and %d (line %d)", ErrMultipleRoots, root, id, line)
			}
			root = id
		}
	}

	if root < 0 {
		return nil, ErrNoRoot
	}
	g, err := b.Build(root)
	if err != nil {
		return nil, fmt.Errorf("wordnet: root %d: %w", root, err)
	}

	return g, nil
}
