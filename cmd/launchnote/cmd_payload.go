package main

import (
	"github.com/spf13/cobra"

	"launchnote/internal/annotate"
)

var payloadFlags passFlags

var payloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Fill missing payload masses (kg)",
	Long: "Fill payload_mass_kg on records whose mass is absent or zero, from mission\n" +
		"category and vehicle. Nonzero masses are never changed.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPasses(cmd, &payloadFlags, annotate.NewPayloadAnnotator())
	},
}

func init() {
	bindPassFlags(payloadCmd, &payloadFlags)
}
