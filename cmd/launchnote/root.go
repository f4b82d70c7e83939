package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchnote/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "launchnote",
	Short: "Fill estimated launch costs and payload masses into a launch dataset",
	Long: "launchnote reads a JSON collection of spaceflight launch records, fills in\n" +
		"missing launch_cost_usd_millions and payload_mass_kg values from fixed\n" +
		"mission/vehicle rule tables, writes the collection back and reports coverage.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.Version = version
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(rootFlags.logLevel)
	if err != nil {
		return err
	}
	switch rootFlags.logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", rootFlags.logFormat)
	}
	logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())
	return nil
}
