// Package cmd provides the CLI commands for wire-drop.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wire-drop/internal/config"
	"wire-drop/internal/logging"
)

var (
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wire-drop",
	Short: "Calculate voltage drop for common wire gauges",
	Long: `wire-drop computes the voltage drop across standard copper wire gauges
for a given voltage, current, and one-way run length, and recommends the
thinnest gauge that keeps the drop under an acceptable limit.

Resistance values are for copper at 75°C, and the run length is doubled
for the return path.

Examples:
  wire-drop -v 120 -c 20 -d 50
  wire-drop -v 120 -c 20 -d 50 -m 5
  wire-drop -v 12 -c 30 -d 15 --gauges 10,12,14`,
	RunE: runReport,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// -v is taken by --voltage, so these are long-form only
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(gaugesCmd)
}

func initConfig() {
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.InitializeDefault()
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wire-drop version 0.1.0")
	},
}
