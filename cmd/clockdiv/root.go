package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clockdiv",
		Short: "Render and inspect a gate clock divider.",
		Long: `clockdiv runs the clock divider over generated clock and reset gates ` +
			`and prints the measured clock rate, output rate and division ratio.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRenderCmd(), newParamsCmd())

	return root
}
