package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quitcheck/internal/variant"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the built-in questionnaires",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := variant.All()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-12s  %-9s  %9s  %8s  %s\n", "NAME", "FORMAT", "QUESTIONS", "SECTIONS", "TITLE")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		for _, v := range all {
			fmt.Fprintf(out, "%-12s  %-9s  %9d  %8d  %s\n",
				v.Name, v.Format, v.Catalog.Len(), len(v.Catalog.Sections()), v.Title)
		}
		fmt.Fprintf(out, "\n%d variants\n", len(all))
		return nil
	},
}
