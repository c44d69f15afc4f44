// Package drop computes voltage drop per wire gauge.
// A single linear pass: validate the input, apply Ohm's law to each
// catalog entry, pick the thinnest gauge under the drop limit.
package drop

import (
	"github.com/shopspring/decimal"

	"wire-drop/core/gauge"
	"wire-drop/internal/errors"
)

var (
	two      = decimal.NewFromInt(2)
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
)

// Input holds one invocation's parameters. Built once from the command
// line, consumed once.
type Input struct {
	// Voltage is the source voltage in volts
	Voltage decimal.Decimal

	// Current is the load current in amps
	Current decimal.Decimal

	// Distance is the one-way run length in feet
	Distance decimal.Decimal

	// MaxDropPercent is the maximum acceptable voltage drop
	MaxDropPercent decimal.Decimal

	// GaugeFilter restricts the report to these identifiers. Empty
	// means all gauges. Output order is always catalog order, never
	// filter order.
	GaugeFilter []int
}

// Result is the computed drop for one gauge
type Result struct {
	Gauge           gauge.Spec
	TotalResistance decimal.Decimal
	VoltageDrop     decimal.Decimal
	DropPercent     decimal.Decimal
	Passes          bool
}

// Report is the outcome of one calculation pass
type Report struct {
	// Input echoes the parameters the report was computed from
	Input Input

	// Rows holds one result per considered gauge, in catalog order
	Rows []Result

	// Recommended is the first passing row: the thinnest, cheapest
	// gauge under the drop limit. Nil when nothing passes.
	Recommended *Result
}

// Validate checks the input before any arithmetic runs.
//
// Zero or negative voltage is rejected rather than propagated: the drop
// percentage divides by it. Negative current, distance, or drop limit
// are rejected because the quantities are magnitudes. Zero current or
// distance is allowed (zero drop, every gauge passes).
func (in *Input) Validate() error {
	for _, id := range in.GaugeFilter {
		if _, ok := gauge.Lookup(id); !ok {
			return errors.InvalidGauge(id, gauge.PositiveIdentifiers())
		}
	}
	if in.Voltage.Sign() <= 0 {
		return errors.Inputf("voltage must be greater than zero, got %s V", in.Voltage)
	}
	if in.Current.Sign() < 0 {
		return errors.Inputf("current must not be negative, got %s A", in.Current)
	}
	if in.Distance.Sign() < 0 {
		return errors.Inputf("distance must not be negative, got %s ft", in.Distance)
	}
	if in.MaxDropPercent.Sign() < 0 {
		return errors.Inputf("max drop must not be negative, got %s%%", in.MaxDropPercent)
	}
	return nil
}

// Calculate validates the input and computes the drop for every
// considered gauge. No partial result is produced on a validation
// failure.
func Calculate(in Input) (*Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var requested map[int]bool
	if len(in.GaugeFilter) > 0 {
		requested = make(map[int]bool, len(in.GaugeFilter))
		for _, id := range in.GaugeFilter {
			requested[id] = true
		}
	}

	// Current flows out and back through the same run.
	totalDistance := in.Distance.Mul(two)

	report := &Report{Input: in}
	for _, spec := range gauge.Table() {
		if requested != nil && !requested[spec.Identifier] {
			continue
		}

		totalResistance := spec.OhmsPerKFT.Mul(totalDistance).Div(thousand)
		voltageDrop := in.Current.Mul(totalResistance)
		dropPercent := voltageDrop.Div(in.Voltage).Mul(hundred)

		row := Result{
			Gauge:           spec,
			TotalResistance: totalResistance,
			VoltageDrop:     voltageDrop,
			DropPercent:     dropPercent,
			Passes:          dropPercent.Cmp(in.MaxDropPercent) <= 0,
		}
		report.Rows = append(report.Rows, row)

		if row.Passes && report.Recommended == nil {
			rec := row
			report.Recommended = &rec
		}
	}

	return report, nil
}
