// Package nutrition holds the pure nutrient rules of the ledger: estimate
// validation, goal resolution and daily totals.
package nutrition

import (
	"math"
	"strconv"
	"strings"

	"nutriledger/internal/domain/entity"
)

// SafeFloat parses a stored magnitude. Blank, unparsable, negative or
// non-finite input yields fallback.
func SafeFloat(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !isMagnitude(v) {
		return fallback
	}

	return positiveZero(v)
}

// SafeInt parses a stored counter such as rank points. Non-numeric values
// read as zero, decimal values are truncated and out-of-range values
// saturate at the int bounds.
func SafeInt(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt {
		return math.MaxInt
	}
	if f <= math.MinInt {
		return math.MinInt
	}

	return int(f)
}

// SaturatingAdd returns a+b, pinned to math.MaxInt instead of wrapping.
func SaturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}

// FormatFloat renders a magnitude for row storage without trailing zeros.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(positiveZero(v), 'f', -1, 64)
}

// positiveZero maps -0 to 0 so it never reaches storage as "-0".
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}

func isMagnitude(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Sanitize zeroes every negative or non-finite field of v.
func Sanitize(v entity.NutrientValues) entity.NutrientValues {
	for _, n := range entity.AllNutrients {
		if !isMagnitude(v.Get(n)) {
			v.Set(n, 0)
		}
	}

	return v
}
