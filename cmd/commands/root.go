package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vca-engine",
	Short: "Optical order VCA gateway",
	Long:  `Converts optical prescription orders to the VCA fixed-field format and resolves free-text codes against the reference catalog`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(serverCmd) // HTTP API server
}
