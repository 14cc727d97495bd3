package chartscale

import (
	"regexp"
	"testing"
)

func TestExtremaPadsRange(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantMin float64
		wantMax float64
	}{
		{
			name:    "simple range",
			values:  []float64{0, 10},
			wantMin: -0.5,
			wantMax: 10.5,
		},
		{
			name:    "negative range",
			values:  []float64{-20, -10},
			wantMin: -20.5,
			wantMax: -9.5,
		},
		{
			name:    "constant series",
			values:  []float64{3.5, 3.5, 3.5},
			wantMin: 2.5,
			wantMax: 4.5,
		},
		{
			name:    "all zero series",
			values:  []float64{0, 0, 0},
			wantMin: -1.0,
			wantMax: 1.0,
		},
		{
			name:    "single value",
			values:  []float64{7},
			wantMin: 6.0,
			wantMax: 8.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, err := Extrema(tt.values)
			if err != nil {
				t.Fatalf("Extrema failed: %v", err)
			}
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("Extrema = (%v, %v), want (%v, %v)", min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestExtremaStrictlyWidens(t *testing.T) {
	values := []float64{1.25, 9.5, 4.0}

	min, max, err := Extrema(values)
	if err != nil {
		t.Fatalf("Extrema failed: %v", err)
	}
	if min >= 1.25 {
		t.Errorf("Padded min %v not below raw min 1.25", min)
	}
	if max <= 9.5 {
		t.Errorf("Padded max %v not above raw max 9.5", max)
	}
	// 5% of the raw range on each side
	if min != 0.837 || max != 9.912 {
		t.Errorf("Extrema = (%v, %v), want (0.837, 9.912)", min, max)
	}
}

func TestExtremaEmpty(t *testing.T) {
	if _, _, err := Extrema(nil); err == nil {
		t.Error("Expected an error for an empty series")
	}
}

// Expected codes come from the reference HLS conversion with
// lightness 0.6 and saturation 0.9.
func TestColorCodeFixtures(t *testing.T) {
	tests := []struct {
		index int
		total int
		want  string
	}{
		{index: 0, total: 1, want: "#f43d3d"},
		{index: 0, total: 2, want: "#f43d3d"},
		{index: 1, total: 2, want: "#983df4"},
		{index: 1, total: 4, want: "#f43d82"},
		{index: 3, total: 4, want: "#dd3df4"},
		{index: 2, total: 10, want: "#61f43d"},
		{index: 5, total: 10, want: "#983df4"},
		{index: 3, total: 44, want: "#993df4"},
		{index: 43, total: 44, want: "#3df4a1"},
	}

	for _, tt := range tests {
		got, err := ColorCode(tt.index, tt.total)
		if err != nil {
			t.Fatalf("ColorCode(%d, %d) failed: %v", tt.index, tt.total, err)
		}
		if got != tt.want {
			t.Errorf("ColorCode(%d, %d) = %s, want %s", tt.index, tt.total, got, tt.want)
		}
	}
}

func TestColorCodeDeterministicAndValid(t *testing.T) {
	hexColor := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	const total = 44
	for i := 0; i < total; i++ {
		first, err := ColorCode(i, total)
		if err != nil {
			t.Fatalf("ColorCode(%d, %d) failed: %v", i, total, err)
		}
		if !hexColor.MatchString(first) {
			t.Errorf("ColorCode(%d, %d) = %q, not a 6-hex-digit color", i, total, first)
		}
		second, _ := ColorCode(i, total)
		if first != second {
			t.Errorf("ColorCode(%d, %d) not deterministic: %s vs %s", i, total, first, second)
		}
	}
}

func TestColorCodeBounds(t *testing.T) {
	if _, err := ColorCode(0, 0); err == nil {
		t.Error("Expected an error for zero columns")
	}
	if _, err := ColorCode(5, 5); err == nil {
		t.Error("Expected an error for index == total")
	}
	if _, err := ColorCode(-1, 5); err == nil {
		t.Error("Expected an error for a negative index")
	}
}
