package cli

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/on-the-ground/namebase/basename"
	"github.com/on-the-ground/namebase/shared/orderedbuffer"
)

// Describer names one radix. *basename.Namer is the production implementation.
type Describer interface {
	Describe(radix int64) (basename.Names, error)
}

// Columns selects the optional output columns. The name is always shown.
type Columns struct {
	Value        bool
	Abbreviation bool
	Prefix       bool
	Roots        bool
}

// FormatLine renders one output line, columns separated by " | ".
func FormatLine(names basename.Names, cols Columns) string {
	parts := make([]string, 0, 5)
	if cols.Value {
		parts = append(parts, strconv.FormatInt(names.Value, 10))
	}
	parts = append(parts, names.Name)
	if cols.Abbreviation {
		parts = append(parts, names.Abbreviation)
	}
	if cols.Prefix {
		parts = append(parts, names.Prefix)
	}
	if cols.Roots {
		parts = append(parts, strconv.FormatInt(names.Roots, 10))
	}
	return strings.Join(parts, " | ")
}

// Run names every radix of ranges on up to workers goroutines and hands the
// results to emit in input order.
func Run(
	ctx context.Context,
	describer Describer,
	ranges []Range,
	workers int,
	emit func(basename.Names) error,
) error {
	buf := orderedbuffer.NewSequenceBuffer(emit)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var seq uint64
produce:
	for _, r := range ranges {
		if r.First > r.Last {
			continue
		}
		for radix := r.First; ; radix++ {
			if gctx.Err() != nil {
				break produce
			}
			s, n := seq, radix
			g.Go(func() error {
				names, err := describer.Describe(n)
				if err != nil {
					return err
				}
				return buf.Insert(s, names)
			})
			seq++
			if radix == r.Last {
				break
			}
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return buf.Close()
}
