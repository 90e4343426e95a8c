package paths

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/yutboard/yut/yut"
)

type Command struct {
	shape   string
	context string
	full    bool
}

func (*Command) Name() string     { return "paths" }
func (*Command) Synopsis() string { return "Print where each throw takes a token" }
func (*Command) Usage() string {
	return `paths [flags] [CELL...]

Prints, for each CELL (default: every cell of the board), the
destination of every throw. Cells are written start, o7, A0 (the entry
of diagonal A), A1-A4, center.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.shape, "shape", "traditional", "board shape: "+strings.Join(yut.ShapeNames(), ", "))
	flags.StringVar(&c.context, "context", "", "path context of the token, e.g. A2")
	flags.BoolVar(&c.full, "full", false, "print whole paths instead of destinations")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shape, err := yut.ShapeByName(c.shape)
	if err != nil {
		log.Error().Err(err).Msg("-shape")
		return subcommands.ExitUsageError
	}
	pathCtx := yut.NoCell
	if c.context != "" {
		if pathCtx, err = yut.ParseCell(shape, c.context); err != nil {
			log.Error().Err(err).Msg("-context")
			return subcommands.ExitUsageError
		}
	}
	var origins []yut.Cell
	for _, arg := range flag.Args() {
		cell, err := yut.ParseCell(shape, arg)
		if err != nil {
			log.Error().Err(err).Msg("parse cell")
			return subcommands.ExitUsageError
		}
		origins = append(origins, cell)
	}
	if len(origins) == 0 {
		for _, cell := range shape.Cells() {
			if cell != yut.Finish {
				origins = append(origins, cell)
			}
		}
	}
	describeShape(os.Stdout, shape)
	Render(os.Stdout, shape, origins, pathCtx, c.full)
	return subcommands.ExitSuccess
}

func describeShape(out io.Writer, s *yut.Shape) {
	fmt.Fprintf(out, "%s: ring of %d, default diagonal %s\n", s.Name(), s.RingLength(), s.Default())
	for _, d := range s.Diagonals() {
		var cells []string
		for _, c := range d.Path() {
			cells = append(cells, c.String())
		}
		fmt.Fprintf(out, "  %s: %s (%d to finish)\n", d.Name, strings.Join(cells, " "), s.DistanceToFinish(d.Name))
	}
	fmt.Fprintln(out)
}

// Render prints a table of destinations, one row per origin and one
// column per throw.
func Render(out io.Writer, s *yut.Shape, origins []yut.Cell, pathCtx yut.Cell, full bool) {
	w := tabwriter.NewWriter(out, 4, 8, 1, ' ', 0)
	fmt.Fprintf(w, "from")
	for _, t := range yut.Throws {
		fmt.Fprintf(w, "\t%s", t)
	}
	fmt.Fprintf(w, "\n")
	for _, o := range origins {
		fmt.Fprintf(w, "%s", o)
		for _, t := range yut.Throws {
			path, err := yut.Resolve(s, o, pathCtx, t.Steps())
			switch {
			case err != nil:
				fmt.Fprintf(w, "\t-")
			case full:
				var cells []string
				for _, c := range path {
					cells = append(cells, c.String())
				}
				fmt.Fprintf(w, "\t%s", strings.Join(cells, ","))
			default:
				fmt.Fprintf(w, "\t%s", path[len(path)-1])
			}
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
}
