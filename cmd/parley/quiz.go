package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/parley/internal/cli"
)

// quizCmd runs a YAML question script.
var quizCmd = &cobra.Command{
	Use:   "quiz <script.yaml>",
	Short: "Run a YAML question script",
	Long: `Loads a YAML script of questions (choice, yesno, truefalse, number,
range) and walks through them in order, printing each answer. An exit word
cancels the remaining questions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.HandleExecutionError(cli.RunQuiz(globalOptions(cmd), args[0]))
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
}
