package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchnote/internal/display"
	"launchnote/internal/format"
	"launchnote/internal/rules"
)

var rulesFlags struct {
	markdown bool
}

var rulesCmd = &cobra.Command{
	Use:       "rules [rule-set]",
	Short:     "List the estimate rule tables in evaluation order",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: rules.Names(),
	RunE:      runRules,
}

func init() {
	rulesCmd.Flags().BoolVar(&rulesFlags.markdown, "markdown", false, "Render tables as Markdown")
}

func runRules(cmd *cobra.Command, args []string) error {
	names := rules.Names()
	if len(args) == 1 {
		names = args
	}
	out := cmd.OutOrStdout()
	for i, name := range names {
		rs, err := rules.Get(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, ruleTable(rs, format.ModeFor(rulesFlags.markdown)))
	}
	return nil
}

func ruleTable(rs *rules.RuleSet, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Title(fmt.Sprintf("%s -> %s", display.AnnotatorWithCode(rs.Name), rs.Field))
	tb.Header("#", "Rule", "When", display.Field(rs.Field))
	for i, r := range rs.Rules {
		tb.Row(i+1, r.Name, r.When.String(), display.Quantity(r.Value, rs.Unit))
	}
	tb.Columns(
		format.ColumnConfig{Number: 3, MaxWidth: 60},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
	)
	return tb.String()
}
