package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/parley/internal/cli"
)

// numberCmd runs a numeric prompt, optionally range-restricted.
var numberCmd = &cobra.Command{
	Use:   "number <prompt>",
	Short: "Ask for a number",
	Long: `Asks for a number. Input containing a decimal point is treated as a
float, anything else as an integer. With --min and --max the answer must fall
inside the inclusive range; reversed bounds are swapped silently.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var minPtr, maxPtr *float64
		if cmd.Flags().Changed("min") {
			v, _ := cmd.Flags().GetFloat64("min")
			minPtr = &v
		}
		if cmd.Flags().Changed("max") {
			v, _ := cmd.Flags().GetFloat64("max")
			maxPtr = &v
		}
		kind, _ := cmd.Flags().GetString("kind")
		return cli.HandleExecutionError(cli.RunNumber(globalOptions(cmd), args[0], minPtr, maxPtr, kind))
	},
}

func init() {
	rootCmd.AddCommand(numberCmd)

	numberCmd.Flags().Float64("min", 0, "Lower bound (requires --max)")
	numberCmd.Flags().Float64("max", 0, "Upper bound (requires --min)")
	numberCmd.Flags().String("kind", "entered", "Returned representation: entered, int or float")
}
