// Package output - Report rendering tests
package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"wire-drop/core/drop"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func render(t *testing.T, in drop.Input) string {
	t.Helper()
	rep, err := drop.Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	NewRenderer(&buf, true).Render(rep)
	return buf.String()
}

func householdRun() drop.Input {
	return drop.Input{
		Voltage:        d("120"),
		Current:        d("20"),
		Distance:       d("50"),
		MaxDropPercent: d("3"),
	}
}

func TestRenderParametersBlock(t *testing.T) {
	out := render(t, householdRun())

	for _, want := range []string{
		"Input Parameters:",
		"Voltage: 120 V",
		"Current: 20 A",
		"Distance: 50 ft (one way)",
		"Max Acceptable Drop: 3%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Filtered Gauges") {
		t.Error("filter echoed without a filter")
	}
}

// TestRenderRowOrder proves rows appear in catalog order, thin to
// thick, never sorted by a computed value.
func TestRenderRowOrder(t *testing.T) {
	out := render(t, householdRun())

	// Cell prefixes keep "2 AWG" from matching inside "12 AWG".
	markers := []string{"│ 28 AWG", "│ 14 AWG", "│ 12 AWG", "│ 10 AWG", "│ 0000 AWG"}
	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		if idx < 0 {
			t.Fatalf("output missing row %q", m)
		}
		if idx < last {
			t.Errorf("row %q out of order", m)
		}
		last = idx
	}
}

func TestRenderScenarioFigures(t *testing.T) {
	out := render(t, householdRun())

	for _, want := range []string{
		"0.1588", // 12 AWG total resistance, 4 dp
		"3.176",  // 12 AWG drop, 3 dp
		"2.65",   // 12 AWG drop percent, 2 dp
		"5.020",  // 14 AWG drop
		"✓ OK",
		"✗ too much drop",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if !strings.Contains(out, "Recommended gauge: 12 AWG") {
		t.Error("missing recommendation line")
	}
	if !strings.Contains(out, "3.176 V (2.65%)") {
		t.Error("missing recommendation drop figures")
	}
}

func TestRenderFilterEcho(t *testing.T) {
	in := householdRun()
	in.GaugeFilter = []int{10, 12, 14}
	out := render(t, in)

	if !strings.Contains(out, "Filtered Gauges: [10 12 14]") {
		t.Error("missing filter echo")
	}

	// Three data rows plus the recommendation line mention a gauge.
	if got := strings.Count(out, "AWG"); got != 4 {
		t.Errorf("expected 4 gauge mentions, got %d", got)
	}
	for _, m := range []string{"│ 14 AWG", "│ 12 AWG", "│ 10 AWG"} {
		if !strings.Contains(out, m) {
			t.Errorf("output missing row %q", m)
		}
	}
}

func TestRenderNoPassingGauge(t *testing.T) {
	out := render(t, drop.Input{
		Voltage:        d("12"),
		Current:        d("100"),
		Distance:       d("500"),
		MaxDropPercent: d("3"),
	})

	if !strings.Contains(out, "Even the largest gauge exceeds the acceptable voltage drop!") {
		t.Error("missing warning line")
	}
	if strings.Contains(out, "Recommended gauge") {
		t.Error("recommendation produced although nothing passes")
	}
}
