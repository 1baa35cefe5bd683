package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/asctree/builder"
	"github.com/katalvlaran/asctree/core"
	"github.com/katalvlaran/asctree/internal/loader"
)

var errNoComplex = errors.New("no complex given: pass a file or --fixture")

// rootOptions holds the persistent flags shared by every sub-command.
type rootOptions struct {
	verbose      bool
	fixture      string
	mirror       bool
	allOrderings bool
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) error {
	return newRootCmd(ctx, version, os.Stdout).Execute()
}

func newRootCmd(ctx context.Context, version string, out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "asctree",
		Short:        "Store a simplicial complex in a face-path tree and compute its boundary matrices over GF(2)",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	pf.StringVarP(&opts.fixture, "fixture", "x", "",
		fmt.Sprintf("use a built-in complex (%s)", strings.Join(builder.FixtureNames(), ", ")))
	pf.BoolVarP(&opts.mirror, "mirror", "m", false, "enable the vertex mirror index")
	pf.BoolVar(&opts.allOrderings, "all-orderings", false, "insert every ordering of each face")

	rootCmd.AddCommand(
		newFacesCmd(opts),
		newBoundaryCmd(opts),
		newRankCmd(opts),
		newEdgesCmd(opts),
		newTreeCmd(opts),
	)

	return rootCmd
}

// loadTree resolves the complex named by args or --fixture and builds its tree.
func (o *rootOptions) loadTree(args []string) (*core.Tree, error) {
	var (
		c      *loader.Complex
		source string
	)
	switch {
	case len(args) > 0:
		var err error
		if c, err = loader.Load(args[0]); err != nil {
			return nil, err
		}
		source = args[0]
	case o.fixture != "":
		faces, ok := builder.Fixture(o.fixture)
		if !ok {
			return nil, fmt.Errorf("%w: %q", loader.ErrUnknownFixture, o.fixture)
		}
		c = &loader.Complex{Faces: faces}
		source = "fixture " + o.fixture
	default:
		return nil, errNoComplex
	}
	c.Mirror = c.Mirror || o.mirror

	var bopts []builder.BuilderOption
	if o.allOrderings {
		bopts = append(bopts, builder.WithAllOrderings())
	}
	t, err := c.Tree(bopts...)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"source": source,
		"faces":  len(c.Faces),
		"nodes":  t.Len(),
		"mirror": t.Mirrored(),
	}).Debug("built face-path tree")

	return t, nil
}

// formatValue is a pflag.Value restricted to a fixed set of names.
type formatValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(def string, allowed ...string) *formatValue {
	return &formatValue{value: def, allowed: allowed}
}

func (f *formatValue) String() string { return f.value }

func (f *formatValue) Set(s string) error {
	s = strings.ToLower(s)
	for _, a := range f.allowed {
		if s == a {
			f.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(f.allowed, ", "))
}

func (f *formatValue) Type() string { return "format" }
