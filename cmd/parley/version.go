package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/parley"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the Parley version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("parley v%s\n", parley.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
