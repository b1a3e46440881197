package wordnet

import "errors"

// Sentinel errors for loading and lookup.
var (
	// ErrEmptyPath is returned by Load when a file path is empty.
	ErrEmptyPath = errors.New("wordnet: empty file path")

	// ErrNilReader is returned by Parse when an input reader is nil.
	ErrNilReader = errors.New("wordnet: nil reader")

	// ErrMalformedLine indicates a line that cannot be parsed.
	ErrMalformedLine = errors.New("wordnet: malformed line")

	// ErrSynsetID indicates a duplicate, missing or out-of-range synset id.
	ErrSynsetID = errors.New("wordnet: bad synset id")

	// ErrNoRoot indicates no hypernym line without parents.
	ErrNoRoot = errors.New("wordnet: no root synset")

	// ErrMultipleRoots indicates more than one hypernym line without parents.
	ErrMultipleRoots = errors.New("wordnet: multiple root synsets")

	// ErrNounNotFound indicates a label outside the indexed vocabulary.
	ErrNounNotFound = errors.New("wordnet: noun not found")
)
