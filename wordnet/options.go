package wordnet

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures Parse and Load.
type Option func(*Options)

// Options holds loader settings.
type Options struct {
	// Logger receives debug records about the loaded data.
	Logger logrus.FieldLogger

	// GlossColumn selects the id,labels,gloss synset layout.
	GlossColumn bool
}

// DefaultOptions returns Options with a discarding logger and the
// id,label[,label...] synset layout.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithGlossColumn treats the synset catalogue as id,labels,gloss.
func WithGlossColumn() Option {
	return func(o *Options) { o.GlossColumn = true }
}
