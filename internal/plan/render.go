package plan

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	faint = color.New(color.Faint)
)

// Render writes the plan as a summary followed by a table of pairs.
func Render(w io.Writer, p *Plan) error {
	if _, err := bold.Fprintf(w, "Benchmark %s (%s)\n", p.Benchmark, p.Objective); err != nil {
		return err
	}
	fmt.Fprintf(w, "  Datasets selected: %d\n", len(p.Datasets))
	fmt.Fprintf(w, "  Solvers selected:  %d\n", len(p.Solvers))
	fmt.Fprintf(w, "  Runs:              %d (%d skipped)\n", len(p.Runnable()), len(p.Skipped()))
	if p.HasSeed {
		fmt.Fprintf(w, "  Seed fingerprint:  %016x\n", p.Fingerprint)
	}
	fmt.Fprintln(w)

	if len(p.Pairs) == 0 {
		_, err := faint.Fprintln(w, "Nothing to run.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Dataset", "Solver", "Status")
	for _, pair := range p.Pairs {
		status := green.Sprint("run")
		if !pair.Compatible {
			status = faint.Sprint("skip: sparse data not supported")
		}
		if err := table.Append(pair.Dataset.Name, pair.Solver.Name, status); err != nil {
			return err
		}
	}
	return table.Render()
}
