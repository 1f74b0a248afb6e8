// Package cmd provides the command-line interface of conveyorsim.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "conveyorsim",
	Short: "Conveyorsim simulates workers assembling products on a belt.",
	Long: `Conveyorsim simulates a conveyor belt that carries components past ` +
		`pairs of workers. Workers pick up one component of each type, ` +
		`build a product, and put it back on the belt. After the run, a ` +
		`summary of what entered and left the belt is printed.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
