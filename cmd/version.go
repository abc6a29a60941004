package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quitcheck/internal/variant"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "quitcheck", version)
		fmt.Fprintf(cmd.OutOrStdout(), "variant format %s.x\n", variant.SupportedFormat)
	},
}
