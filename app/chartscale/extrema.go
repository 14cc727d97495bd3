package chartscale

// Package chartscale holds the presentation math the chart frontend
// needs: padded axis extrema so plotted series never touch the chart
// edges, and deterministic per-column colors.

import (
	"fmt"
	"math"
)

// paddingFraction is the share of the raw range added to each end of a
// non-constant series.
const paddingFraction = 0.05

// Extrema returns the padded (min, max) window for a numeric series.
// A constant series (including all-zero) gets a fixed ±1.0 window so the
// axis never collapses to zero height; otherwise both ends are padded by
// 5% of the raw range and rounded to three decimals.
func Extrema(values []float64) (float64, float64, error) {
	if len(values) == 0 {
		return 0, 0, fmt.Errorf("no values to compute extrema from")
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return min - 1.0, max + 1.0, nil
	}

	buffer := math.Abs(paddingFraction * (max - min))
	return round3(min - buffer), round3(max + buffer), nil
}

// round3 rounds half-to-even, matching the recorder's reference reader.
func round3(v float64) float64 {
	return math.RoundToEven(v*1000) / 1000
}
