package outcast

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Selector computes outcasts against one Oracle. It is safe for concurrent use.
type Selector struct {
	wn   Oracle
	opts Options
}

// New returns a Selector over wn.
// Returns ErrNilWordNet for a nil oracle or engine, ErrOptionViolation for bad options.
func New(wn Oracle, opts ...Option) (*Selector, error) {
	if wn == nil || wn.Engine() == nil {
		return nil, ErrNilWordNet
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Selector{wn: wn, opts: o}, nil
}

// Scores returns, for each noun in order, the sum of its distances to every
// other noun of the list. An unknown noun fails the whole call with the
// oracle's error (wordnet.ErrNounNotFound for *wordnet.WordNet).
func (s *Selector) Scores(ctx context.Context, nouns []string) ([]Score, error) {
	if len(nouns) == 0 {
		return nil, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids := make([][]int, len(nouns))
	for i, n := range nouns {
		v, err := s.wn.SynsetIDs(n)
		if err != nil {
			return nil, err
		}
		ids[i] = v
	}

	// dist[i*n+j] for i < j
	n := len(nouns)
	dist := make([]int, n*n)
	engine := s.wn.Engine()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				l, err := engine.LengthSet(ids[i], ids[j])
				if err != nil {
					return err
				}
				dist[i*n+j] = l

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Score, n)
	for i := range out {
		out[i].Noun = nouns[i]
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out[i].Distance += dist[i*n+j]
			out[j].Distance += dist[i*n+j]
		}
	}

	return out, nil
}

// Outcast returns the noun with the largest summed distance to the others.
// Ties are broken in favour of the earliest noun.
func (s *Selector) Outcast(ctx context.Context, nouns []string) (string, error) {
	scores, err := s.Scores(ctx, nouns)
	if err != nil {
		return "", err
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Distance > scores[best].Distance {
			best = i
		}
	}
	s.opts.Logger.WithFields(logrus.Fields{
		"nouns":    len(nouns),
		"pairs":    len(nouns) * (len(nouns) - 1) / 2,
		"outcast":  scores[best].Noun,
		"distance": scores[best].Distance,
	}).Debug("outcast selected")

	return scores[best].Noun, nil
}
