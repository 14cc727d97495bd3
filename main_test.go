package main

import "testing"

func TestElapsedSummary(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   string
	}{
		{"no data rows", nil, "0 samples"},
		{"single sample", []float64{0.0}, "1 samples, 0.000s total"},
		{"multiple samples", []float64{0.0, 1.877, 60.777}, "3 samples, 60.777s total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := elapsedSummary(tt.series); got != tt.want {
				t.Errorf("elapsedSummary(%v) = %q, want %q", tt.series, got, tt.want)
			}
		})
	}
}
