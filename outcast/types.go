// Package outcast picks the semantic outcast of a list of nouns: the noun
// whose summed shortest-ancestral-path distance to all the others is largest.
//
// Each unordered pair is measured once (distance is symmetric) and pairs are
// measured concurrently, bounded by WithConcurrency. Ties go to the noun that
// appears first in the input.
package outcast

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hypernym/sca"
)

// Sentinel errors for outcast selection.
var (
	// ErrNilWordNet is returned by New when the oracle or its engine is nil.
	ErrNilWordNet = errors.New("outcast: wordnet is nil")

	// ErrEmptyInput is returned for an empty noun list.
	ErrEmptyInput = errors.New("outcast: no nouns given")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("outcast: invalid option supplied")
)

// Oracle resolves nouns to synsets and exposes the SCA engine over them.
// *wordnet.WordNet satisfies Oracle.
type Oracle interface {
	SynsetIDs(noun string) ([]int, error)
	Engine() *sca.Engine
}

// Score is one noun and its summed distance to every other noun of the list.
type Score struct {
	Noun     string
	Distance int
}

// Option configures a Selector.
type Option func(*Options)

// Options holds Selector settings.
type Options struct {
	// Concurrency bounds the number of pair queries in flight.
	Concurrency int

	// Logger receives a debug record per selection.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns GOMAXPROCS concurrency and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Concurrency: runtime.GOMAXPROCS(0), Logger: l}
}

// WithConcurrency bounds parallel pair queries.
//
//	n > 0:  at most n queries at a time
//	n == 0: GOMAXPROCS
//	n < 0:  invalid → ErrOptionViolation
func WithConcurrency(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: concurrency cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Concurrency = runtime.GOMAXPROCS(0)
		default:
			o.Concurrency = n
		}
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
