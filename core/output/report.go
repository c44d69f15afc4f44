// Package output renders calculation reports.
// This package is pure presentation: it has no error paths of its own
// and never reorders or filters what the calculator produced.
package output

import (
	"io"
	"strings"

	"wire-drop/core/drop"
	"wire-drop/core/ui"
)

const (
	statusPass = "✓ OK"
	statusFail = "✗ too much drop"
)

// Column widths for the report table
var colWidths = []int{10, 14, 16, 8, 16}

// Renderer writes a human-readable report
type Renderer struct {
	ui *ui.Writer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	return &Renderer{ui: ui.NewWriter(out, noColor)}
}

// Render writes the full report: parameters block, per-gauge table,
// then the recommendation or a warning. Row order is whatever the
// calculator produced (catalog order).
func (r *Renderer) Render(rep *drop.Report) {
	r.ui.Header("Wire Gauge Voltage Drop Calculator")

	in := rep.Input
	r.ui.Println("Input Parameters:")
	r.ui.Println("  Voltage: %s V", in.Voltage)
	r.ui.Println("  Current: %s A", in.Current)
	r.ui.Println("  Distance: %s ft (one way)", in.Distance)
	r.ui.Println("  Max Acceptable Drop: %s%%", in.MaxDropPercent)
	if len(in.GaugeFilter) > 0 {
		r.ui.Println("  Filtered Gauges: %v", in.GaugeFilter)
	}
	r.ui.Println("")

	r.renderTable(rep.Rows)
	r.ui.Println("")

	if rec := rep.Recommended; rec != nil {
		r.ui.Success("Recommended gauge: %s", rec.Gauge.Label)
		r.ui.Println("  Voltage drop: %s V (%s%%)",
			rec.VoltageDrop.StringFixed(3),
			rec.DropPercent.StringFixed(2))
	} else {
		r.ui.Warning("Even the largest gauge exceeds the acceptable voltage drop!")
	}
}

func (r *Renderer) renderTable(rows []drop.Result) {
	r.rule("┌", "┬", "┐")
	r.row(
		padRight("Wire Gauge", colWidths[0]),
		padRight("Resistance (Ω)", colWidths[1]),
		padRight("Voltage Drop (V)", colWidths[2]),
		padRight("Drop (%)", colWidths[3]),
		padRight("Status", colWidths[4]),
	)
	r.rule("├", "┼", "┤")

	for _, row := range rows {
		status := padRight(statusFail, colWidths[4])
		statusColor := ui.Red
		if row.Passes {
			status = padRight(statusPass, colWidths[4])
			statusColor = ui.Green
		}
		r.row(
			padRight(row.Gauge.Label, colWidths[0]),
			padLeft(row.TotalResistance.StringFixed(4), colWidths[1]),
			padLeft(row.VoltageDrop.StringFixed(3), colWidths[2]),
			padLeft(row.DropPercent.StringFixed(2), colWidths[3]),
			r.ui.Color(statusColor, status),
		)
	}

	r.rule("└", "┴", "┘")
}

// row prints one table line; cells must already be padded
func (r *Renderer) row(cells ...string) {
	r.ui.Println("│ %s │", strings.Join(cells, " │ "))
}

// rule prints a horizontal border line
func (r *Renderer) rule(left, mid, right string) {
	parts := make([]string, len(colWidths))
	for i, w := range colWidths {
		parts[i] = strings.Repeat("─", w+2)
	}
	r.ui.Println("%s%s%s", left, strings.Join(parts, mid), right)
}

// padRight pads by rune count so the ✓/✗/Ω cells line up
func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
