package main

import (
	"github.com/spf13/cobra"

	"launchnote/internal/annotate"
)

var costFlags passFlags

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Fill missing launch costs (USD millions)",
	Long: "Fill launch_cost_usd_millions on records without a cost, from vehicle\n" +
		"family, reuse era and mission category. Existing costs are never changed.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPasses(cmd, &costFlags, annotate.NewCostAnnotator())
	},
}

func init() {
	bindPassFlags(costCmd, &costFlags)
}
