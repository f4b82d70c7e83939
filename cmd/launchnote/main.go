// launchnote fills estimated launch costs and payload masses into a launch dataset.
//
// Usage:
//
//	launchnote cost    [-f <launches.json>] [--dry-run] [--breakdown]
//	launchnote payload [-f <launches.json>] [--dry-run] [--breakdown]
//	launchnote all     [-f <launches.json>] [--dry-run] [--breakdown]
//	launchnote rules   [cost|payload_mass] [--markdown]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
