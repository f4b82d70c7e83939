package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"launchnote/internal/annotate"
	"launchnote/internal/display"
	"launchnote/internal/format"
	"launchnote/internal/launch"
	"launchnote/internal/rules"
)

// passFlags are shared by the cost, payload and all commands.
type passFlags struct {
	file      string
	dryRun    bool
	breakdown bool
	markdown  bool
}

func bindPassFlags(cmd *cobra.Command, pf *passFlags) {
	f := cmd.Flags()
	f.StringVarP(&pf.file, "file", "f", launch.DefaultPath, "Launch collection (JSON array of records)")
	f.BoolVar(&pf.dryRun, "dry-run", false, "Annotate and report without writing the file")
	f.BoolVar(&pf.breakdown, "breakdown", false, "Print a per-rule table of updated records")
	f.BoolVar(&pf.markdown, "markdown", false, "Render tables as Markdown")
}

// runPasses is the load → annotate → report → save cycle behind every pass command.
func runPasses(cmd *cobra.Command, pf *passFlags, as ...annotate.Annotator) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	store := launch.NewFileStore(pf.file)

	c, err := store.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d launches\n", len(c))

	results, err := annotate.RunAll(ctx, c, as...)
	if err != nil {
		return err
	}

	for _, res := range results {
		printResult(out, res)
		if pf.breakdown {
			fmt.Fprintln(out, breakdownTable(res, format.ModeFor(pf.markdown)))
		}
	}

	if pf.dryRun {
		fmt.Fprintf(out, "Dry run: %s left unchanged\n", store.Path())
		return nil
	}
	if err := store.Save(ctx, c); err != nil {
		return err
	}
	fmt.Fprintln(out, "Data file updated successfully")
	return nil
}

func printResult(w io.Writer, res annotate.Result) {
	switch res.Annotator {
	case annotate.NameCost:
		fmt.Fprintf(w, "Added launch cost estimates to %d launches\n", res.Updated)
		fmt.Fprintf(w, "Launches with cost data: %s\n", format.FmtRatio(res.WithValue, res.Loaded))
		fmt.Fprintf(w, "Total estimated launch costs: %s\n", format.FmtMillions(res.Total))
	case annotate.NamePayloadMass:
		fmt.Fprintf(w, "Updated %d launches with payload mass estimates\n", res.Updated)
		fmt.Fprintf(w, "Remaining null values: %s\n", format.FmtRatio(res.Missing, res.Loaded))
	default:
		fmt.Fprintf(w, "%s: updated %d of %d launches\n", display.Annotator(res.Annotator), res.Updated, res.Loaded)
	}
}

func breakdownTable(res annotate.Result, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Title(display.AnnotatorWithCode(res.Annotator))
	estimate := "Estimate"
	var unit string
	values := make(map[string]int)
	if rs, err := rules.Get(res.Annotator); err == nil {
		estimate = display.Field(rs.Field)
		unit = rs.Unit
		for _, r := range rs.Rules {
			values[r.Name] = r.Value
		}
	}

	names := make([]string, 0, len(res.ByRule))
	for name := range res.ByRule {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if res.ByRule[names[i]] != res.ByRule[names[j]] {
			return res.ByRule[names[i]] > res.ByRule[names[j]]
		}
		return names[i] < names[j]
	})

	tb.Header("Rule", estimate, "Records", "Share")
	for _, name := range names {
		n := res.ByRule[name]
		tb.Row(name, display.Quantity(values[name], unit), n, format.FmtPercent(n, res.Loaded))
	}
	tb.Footer("TOTAL", "", res.Updated, format.FmtPercent(res.Updated, res.Loaded))
	tb.Columns(
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
	)
	return tb.String()
}
