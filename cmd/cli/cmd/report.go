// Package cmd - voltage drop report
package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wire-drop/core/drop"
	"wire-drop/core/output"
	"wire-drop/internal/config"
	"wire-drop/internal/logging"
)

var (
	voltage     float64
	current     float64
	distance    float64
	maxDrop     float64
	gaugeFilter []int
)

func init() {
	rootCmd.Flags().Float64VarP(&voltage, "voltage", "v", 0, "source voltage in volts")
	rootCmd.Flags().Float64VarP(&current, "current", "c", 0, "load current in amps")
	rootCmd.Flags().Float64VarP(&distance, "distance", "d", 0, "one-way distance in feet")
	rootCmd.Flags().Float64VarP(&maxDrop, "max-drop", "m",
		config.Default().Calculation.DefaultMaxDropPercent,
		"maximum acceptable voltage drop percentage")
	rootCmd.Flags().IntSliceVar(&gaugeFilter, "gauges", nil,
		"wire gauges to show (comma-separated integers, e.g. 10,12,14)")

	_ = rootCmd.MarkFlagRequired("voltage")
	_ = rootCmd.MarkFlagRequired("current")
	_ = rootCmd.MarkFlagRequired("distance")
}

func runReport(cmd *cobra.Command, args []string) error {
	// Flags parsed fine past this point; validation failures should
	// print without the usage dump.
	cmd.SilenceUsage = true

	in := drop.Input{
		Voltage:        decimal.NewFromFloat(voltage),
		Current:        decimal.NewFromFloat(current),
		Distance:       decimal.NewFromFloat(distance),
		MaxDropPercent: decimal.NewFromFloat(maxDrop),
		GaugeFilter:    gaugeFilter,
	}

	logging.Debug("computing voltage drop",
		zap.Float64("voltage", voltage),
		zap.Float64("current", current),
		zap.Float64("distance", distance),
		zap.Float64("max_drop", maxDrop),
		zap.Ints("gauges", gaugeFilter))

	report, err := drop.Calculate(in)
	if err != nil {
		return err
	}

	renderer := output.NewRenderer(cmd.OutOrStdout(), config.Get().Output.NoColor)
	renderer.Render(report)

	logging.Sync()
	return nil
}
