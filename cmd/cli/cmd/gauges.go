// Package cmd - gauge catalog listing
package cmd

import (
	"github.com/spf13/cobra"

	"wire-drop/core/gauge"
	"wire-drop/core/ui"
	"wire-drop/internal/config"
)

// gaugesCmd lists the supported gauge catalog
var gaugesCmd = &cobra.Command{
	Use:   "gauges",
	Short: "List supported wire gauges",
	Long:  `List every supported AWG size with its resistance in ohms per 1000 feet (copper, 75°C).`,
	Run: func(cmd *cobra.Command, args []string) {
		w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
		w.Println("Supported copper wire gauges (Ω per 1000 ft at 75°C):")
		for _, s := range gauge.Table() {
			w.Println("  %-9s %s", s.Label, s.OhmsPerKFT)
		}
	},
}
