package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/parley/internal/cli"
)

// askCmd runs a single enumerated-choice prompt.
var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Ask an enumerated-choice question",
	Long: `Asks a question and loops until the answer matches one of the options
exactly. Options are given as repeated --option key=description flags and are
displayed in the order they appear on the command line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, _ := cmd.Flags().GetStringArray("option")
		wantDescription, _ := cmd.Flags().GetBool("description")
		return cli.HandleExecutionError(cli.RunAsk(globalOptions(cmd), args[0], pairs, wantDescription))
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringArrayP("option", "o", nil, "Choice as key=description (repeatable)")
	askCmd.Flags().Bool("description", false, "Print the matched description instead of the key")
}
