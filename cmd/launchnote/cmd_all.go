package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"launchnote/internal/annotate"
)

var (
	allFlags  passFlags
	allPasses string
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the cost and payload passes over one load and one save",
	Long: "Run the selected passes in order over one load of the collection and\n" +
		"save it once. Fields a record gains appear in pass order.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		as, err := selectPasses(allPasses)
		if err != nil {
			return err
		}
		return runPasses(cmd, &allFlags, as...)
	},
}

func init() {
	bindPassFlags(allCmd, &allFlags)
	allCmd.Flags().StringVar(&allPasses, "passes", annotate.NameCost+","+annotate.NamePayloadMass,
		"Comma-separated passes to run, in order")
}

// selectPasses resolves a comma-separated pass list.
func selectPasses(list string) ([]annotate.Annotator, error) {
	var as []annotate.Annotator
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		a, err := annotate.ByName(name)
		if err != nil {
			return nil, err
		}
		as = append(as, a)
	}
	if len(as) == 0 {
		return nil, fmt.Errorf("no passes selected")
	}
	return as, nil
}
