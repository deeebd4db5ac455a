package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/parley/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Parley is an interactive prompt-and-validate engine",
	Long: `Parley asks questions on the terminal and validates the answers:
enumerated choices, yes/no, true/false, and numbers with optional ranges.
Enter "quit", "exit" or "leave" at any prompt to end the session.

Running parley without a subcommand starts a short demonstration of every
prompt kind.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.HandleExecutionError(cli.RunDemo(globalOptions(cmd)))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// globalOptions collects the persistent flags shared by every command.
func globalOptions(cmd *cobra.Command) cli.RunOptions {
	debug, _ := cmd.Flags().GetBool("debug")
	plain, _ := cmd.Flags().GetBool("plain")
	return cli.RunOptions{Debug: debug, Plain: plain}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable the banner and markdown rendering")
}
