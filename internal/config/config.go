// Package config loads the hypernym CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the on-disk configuration.
type Config struct {
	// Synsets is the path of the synset catalogue.
	Synsets string `yaml:"synsets"`

	// Hypernyms is the path of the hypernym list.
	Hypernyms string `yaml:"hypernyms"`

	// GlossColumn selects the id,labels,gloss synset layout.
	GlossColumn bool `yaml:"gloss_column"`

	// Concurrency bounds parallel distance queries; 0 means GOMAXPROCS.
	Concurrency int `yaml:"concurrency"`

	Log Log `yaml:"log"`
}

// Log configures the logrus logger.
type Log struct {
	Level  string `yaml:"level"`  // logrus level name
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Synsets:   "synsets.txt",
		Hypernyms: "hypernyms.txt",
		Log:       Log{Level: "info", Format: "text"},
	}
}

// Decode reads YAML from r on top of Default. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return c, c.Validate()
}

// Load reads the file at path. Relative data paths are resolved against the
// directory holding the file.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Config{}, err
	}
	dir := filepath.Dir(path)
	c.Synsets = resolve(dir, c.Synsets)
	c.Hypernyms = resolve(dir, c.Hypernyms)

	return c, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}

// Validate checks field values.
func (c Config) Validate() error {
	var problems []string
	if c.Synsets == "" {
		problems = append(problems, "synsets path is empty")
	}
	if c.Hypernyms == "" {
		problems = append(problems, "hypernyms path is empty")
	}
	if c.Concurrency < 0 {
		problems = append(problems, fmt.Sprintf("concurrency %d is negative", c.Concurrency))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log format %q", c.Log.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// NewLogger builds a logrus logger writing to w as configured.
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return l, nil
}
