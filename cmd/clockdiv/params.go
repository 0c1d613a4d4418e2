package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-clockdiv/internal/worklet"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List the host parameters and their ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCORE\tDEFAULT\tMIN\tMAX\tRATE")
			for _, d := range worklet.Descriptors() {
				fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%s\n",
					d.Name, d.Param, d.Default, d.Min, d.Max, d.Rate)
			}
			return tw.Flush()
		},
	}
}
