// Package gauge - Authoritative wire gauge catalog
// Defines the canonical list of supported AWG sizes with their DC
// resistance. This is the source of truth for every calculation.
package gauge

import (
	"github.com/shopspring/decimal"
)

// Spec is a catalog entry for one wire size.
//
// Identifier follows the AWG numbering convention: larger positive
// numbers are thinner wire, and the multi-zero gauges thicker than 0 AWG
// (00, 000, 0000) are encoded as -2, -3 and -4.
type Spec struct {
	Identifier int
	Label      string
	OhmsPerKFT decimal.Decimal
}

// Resistance per 1000 feet of stranded copper at 75°C.
var table = []Spec{
	{28, "28 AWG", decimal.RequireFromString("64.90")},
	{26, "26 AWG", decimal.RequireFromString("40.81")},
	{24, "24 AWG", decimal.RequireFromString("25.67")},
	{22, "22 AWG", decimal.RequireFromString("16.14")},
	{20, "20 AWG", decimal.RequireFromString("10.15")},
	{18, "18 AWG", decimal.RequireFromString("6.385")},
	{16, "16 AWG", decimal.RequireFromString("4.016")},
	{14, "14 AWG", decimal.RequireFromString("2.51")},
	{12, "12 AWG", decimal.RequireFromString("1.588")},
	{10, "10 AWG", decimal.RequireFromString("0.999")},
	{8, "8 AWG", decimal.RequireFromString("0.628")},
	{6, "6 AWG", decimal.RequireFromString("0.395")},
	{4, "4 AWG", decimal.RequireFromString("0.248")},
	{2, "2 AWG", decimal.RequireFromString("0.156")},
	{1, "1 AWG", decimal.RequireFromString("0.123")},
	{0, "0 AWG", decimal.RequireFromString("0.0983")},
	{-2, "00 AWG", decimal.RequireFromString("0.0780")},
	{-3, "000 AWG", decimal.RequireFromString("0.0619")},
	{-4, "0000 AWG", decimal.RequireFromString("0.0491")},
}

// Table returns the catalog in canonical order: thinnest wire (highest
// resistance) first, down to 0000 AWG. Callers must not mutate the
// returned slice.
func Table() []Spec {
	return table
}

// Lookup returns the entry for an identifier
func Lookup(id int) (Spec, bool) {
	for _, s := range table {
		if s.Identifier == id {
			return s, true
		}
	}
	return Spec{}, false
}

// Identifiers returns all identifiers in canonical order
func Identifiers() []int {
	ids := make([]int, 0, len(table))
	for _, s := range table {
		ids = append(ids, s.Identifier)
	}
	return ids
}

// PositiveIdentifiers returns the plain (non-zero, non-multi-zero)
// gauge numbers in canonical order. Used when reporting the valid set
// to a user who supplied an unknown gauge.
func PositiveIdentifiers() []int {
	ids := make([]int, 0, len(table))
	for _, s := range table {
		if s.Identifier > 0 {
			ids = append(ids, s.Identifier)
		}
	}
	return ids
}
