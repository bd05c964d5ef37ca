// Package cmd implements the stackplan command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Stackplan is the root command.
var Stackplan = &cobra.Command{
	Use:           "stackplan",
	Short:         "Compile resource documents into construction plans",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	Stackplan.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
