// Package cli implements the name-base command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/namebase/basename"
	"github.com/on-the-ground/namebase/internal/config"
	"github.com/on-the-ground/namebase/internal/logging"
	"github.com/on-the-ground/namebase/store"
)

const longHelp = `a base-neutral system for naming numbering systems

NUMBER arguments must be of the following forms:
  n      Single number
  n..m   Inclusive range
By default it only displays the given NUMBERs base name.

Options may also be bundled in the form +vapr.`

// Main loads the configuration and runs the command. It returns the exit status.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return Execute(ctx, cfg, args, stdout, stderr)
}

// Execute runs the command with an explicit configuration.
func Execute(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(cfg, stdout, stderr)
	// A non-nil slice keeps cobra away from os.Args.
	cmd.SetArgs(NormalizeArgs(args))
	if err := cmd.ExecuteContext(ctx); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

// NewRootCommand builds the name-base command. Flags override cfg.
func NewRootCommand(cfg config.Config, stdout, stderr io.Writer) *cobra.Command {
	var cols Columns
	cmd := &cobra.Command{
		Use:           "name-base [OPTIONS]... [NUMBER]...",
		Short:         "a base-neutral system for naming numbering systems",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return run(cmd.Context(), cfg, cols, args, stdout)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cols.Value, "values", "v", false, "display NUMBER values")
	flags.BoolVarP(&cols.Abbreviation, "abbreviations", "a", false, "display abbreviations")
	flags.BoolVarP(&cols.Prefix, "prefix", "p", false, "display prefix forms")
	flags.BoolVarP(&cols.Roots, "roots", "r", false, "display root counts")
	flags.BoolVarP(&cfg.Decimal, "decimal", "d", cfg.Decimal, "decimal mode (by default use seximal)")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of radixes named concurrently")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or yaml")
	flags.StringVar(&cfg.Store, "store", cfg.Store, "memo table backend: memory or memdb")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func run(ctx context.Context, cfg config.Config, cols Columns, args []string, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ranges := make([]Range, 0, len(args))
	for _, arg := range args {
		r, err := ParseRange(arg, cfg.Base())
		if err != nil {
			return err
		}
		ranges = append(ranges, r)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	namer, err := newNamer(cfg, logger)
	if err != nil {
		return err
	}
	defer namer.Close()
	logger.Info("naming radixes",
		zap.String("namer", namer.ID()),
		zap.Int("ranges", len(ranges)),
		zap.Int("workers", cfg.Workers),
		zap.Int("base", cfg.Base()),
	)

	if cfg.Format == config.FormatYAML {
		var all []basename.Names
		err := Run(ctx, namer, ranges, cfg.Workers, func(names basename.Names) error {
			all = append(all, names)
			return nil
		})
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(stdout)
		defer enc.Close()
		return enc.Encode(all)
	}

	return Run(ctx, namer, ranges, cfg.Workers, func(names basename.Names) error {
		_, err := fmt.Fprintln(stdout, FormatLine(names, cols))
		return err
	})
}

func newNamer(cfg config.Config, logger *zap.Logger) (*basename.Namer, error) {
	var (
		s   store.Store[int64, basename.FactorRecord]
		err error
	)
	switch cfg.Store {
	case config.StoreMemDB:
		if s, err = store.NewMemDBStore[int64, basename.FactorRecord](); err != nil {
			return nil, err
		}
	default:
		s = store.NewInMemoryStore[int64, basename.FactorRecord](cfg.StoreShards)
	}
	return basename.New(
		basename.WithLogger(logger),
		basename.WithStore(s),
		basename.WithNameCache(cfg.NameCache),
	)
}

// report prints err the way users of the original tool expect.
func report(w io.Writer, err error) {
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if errors.Is(argErr, ErrOutOfRange) {
		fmt.Fprintf(w, "%s out of range\n", argErr.Arg)
		return
	}
	mode := "seximal"
	if argErr.Base == 10 {
		mode = "decimal"
	}
	fmt.Fprintf(w, "Unable to parse %s using %s\n", argErr.Arg, mode)
	if argErr.Base != 10 {
		fmt.Fprintln(w, "Use '-d' if you intended to use decimal")
	}
	fmt.Fprintln(w, "Use '-h' to show help")
}
