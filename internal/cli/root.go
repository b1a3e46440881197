// Package cli implements the hypernym command line.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypernym/internal/config"
	"github.com/katalvlaran/hypernym/outcast"
	"github.com/katalvlaran/hypernym/wordnet"
)

// options carries flag values for one command tree.
type options struct {
	configPath  string
	synsets     string
	hypernyms   string
	glossColumn bool
	verbose     bool
	files       []string

	out io.Writer
	err io.Writer
}

// Execute is the entry point of the hypernym binary.
func Execute(ctx context.Context, version string) {
	root := NewRootCommand(os.Stdout, os.Stderr)
	root.Version = version
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	o := &options{out: out, err: errOut}

	root := &cobra.Command{
		Use:          "hypernym",
		Short:        "Shortest common ancestors and outcasts over a WordNet noun hierarchy",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVarP(&o.synsets, "synsets", "s", "", "path to the synset catalogue")
	pf.StringVarP(&o.hypernyms, "hypernyms", "H", "", "path to the hypernym list")
	pf.BoolVarP(&o.glossColumn, "gloss", "g", false, "synsets are id,labels,gloss")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		&cobra.Command{
			Use:   "distance <noun> <noun>",
			Short: "Print the shortest ancestral path length between two nouns",
			Args:  cobra.ExactArgs(2),
			RunE:  o.runDistance,
		},
		&cobra.Command{
			Use:   "sca <noun> <noun>",
			Short: "Print a shortest common ancestor synset of two nouns",
			Args:  cobra.ExactArgs(2),
			RunE:  o.runSCA,
		},
		&cobra.Command{
			Use:   "is-noun <word>",
			Short: "Report whether a word is a noun of the hierarchy",
			Args:  cobra.ExactArgs(1),
			RunE:  o.runIsNoun,
		},
		o.outcastCommand(),
	)

	return root
}

func (o *options) outcastCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outcast [noun...]",
		Short: "Print the noun least related to the others",
		Long: "Print the noun whose summed distance to the other nouns is largest.\n" +
			"Nouns come from the arguments, or from each --file (whitespace separated), one result per file.",
		RunE: o.runOutcast,
	}
	cmd.Flags().StringSliceVarP(&o.files, "file", "f", nil, "file of nouns; may be repeated")

	return cmd
}

// resolve merges the config file, defaults and explicit flags.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	c := config.Default()
	if o.configPath != "" {
		var err error
		if c, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("synsets") {
		c.Synsets = o.synsets
	}
	if flags.Changed("hypernyms") {
		c.Hypernyms = o.hypernyms
	}
	if flags.Changed("gloss") {
		c.GlossColumn = o.glossColumn
	}
	if o.verbose {
		c.Log.Level = log.DebugLevel.String()
	}

	return c, c.Validate()
}

// load builds the logger and the WordNet described by the resolved config.
func (o *options) load(cmd *cobra.Command) (*wordnet.WordNet, config.Config, *log.Logger, error) {
	c, err := o.resolve(cmd)
	if err != nil {
		return nil, c, nil, err
	}
	logger, err := c.NewLogger(o.err)
	if err != nil {
		return nil, c, nil, err
	}
	logger.WithFields(log.Fields{"synsets": c.Synsets, "hypernyms": c.Hypernyms}).Debug("loading wordnet")

	opts := []wordnet.Option{wordnet.WithLogger(logger)}
	if c.GlossColumn {
		opts = append(opts, wordnet.WithGlossColumn())
	}
	wn, err := wordnet.Load(c.Synsets, c.Hypernyms, opts...)
	if err != nil {
		return nil, c, nil, err
	}

	return wn, c, logger, nil
}

func (o *options) runDistance(cmd *cobra.Command, args []string) error {
	wn, _, _, err := o.load(cmd)
	if err != nil {
		return err
	}
	d, err := wn.Distance(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(o.out, d)

	return nil
}

func (o *options) runSCA(cmd *cobra.Command, args []string) error {
	wn, _, _, err := o.load(cmd)
	if err != nil {
		return err
	}
	s, err := wn.SCA(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(o.out, s)

	return nil
}

func (o *options) runIsNoun(cmd *cobra.Command, args []string) error {
	wn, _, _, err := o.load(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(o.out, wn.IsNoun(args[0]))

	return nil
}

func (o *options) runOutcast(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(o.files) == 0 {
		return fmt.Errorf("%w: give nouns as arguments or with --file", outcast.ErrEmptyInput)
	}
	wn, c, logger, err := o.load(cmd)
	if err != nil {
		return err
	}
	sel, err := outcast.New(wn, outcast.WithConcurrency(c.Concurrency), outcast.WithLogger(logger))
	if err != nil {
		return err
	}

	if len(args) > 0 {
		noun, err := sel.Outcast(cmd.Context(), args)
		if err != nil {
			return err
		}
		fmt.Fprintln(o.out, noun)
	}
	for _, path := range o.files {
		nouns, err := readNouns(path)
		if err != nil {
			return err
		}
		noun, err := sel.Outcast(cmd.Context(), nouns)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(o.out, "%s: %s\n", path, noun)
	}

	return nil
}

// readNouns returns the whitespace-separated words of the file at path.
func readNouns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var nouns []string
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		nouns = append(nouns, sc.Text())
	}

	return nouns, sc.Err()
}
