package chartscale

import (
	"fmt"
	"math"
)

// Fixed saturation and lightness for column colors; only the hue varies
// with the column index.
const (
	colorSaturation = 0.9
	colorLightness  = 0.6
)

// ColorCode returns the deterministic chart color for the column at
// index out of total columns, as a "#rrggbb" hex string. Hues are spaced
// over the full wheel so consecutive columns stay visually distinct for
// any column count.
func ColorCode(index, total int) (string, error) {
	if total <= 0 {
		return "", fmt.Errorf("column count must be positive, got %d", total)
	}
	if index < 0 || index >= total {
		return "", fmt.Errorf("index '%d' out of range [0, %d)", index, total)
	}

	colorFactor := float64(0xFFFFFF) / float64(total)
	hue := math.Mod(float64(index)*colorFactor, float64(total)) / float64(total)

	r, g, b := hlsToRGB(hue, colorLightness, colorSaturation)
	return fmt.Sprintf("#%02x%02x%02x", int(r*255), int(g*255), int(b*255)), nil
}

// hlsToRGB converts hue/lightness/saturation (all in [0,1]) to RGB,
// using the standard HLS formulation.
func hlsToRGB(h, l, s float64) (float64, float64, float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hlsValue(m1, m2, h+1.0/3.0), hlsValue(m1, m2, h), hlsValue(m1, m2, h-1.0/3.0)
}

func hlsValue(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1.0)
	if hue < 0 {
		hue += 1.0
	}
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6
	default:
		return m1
	}
}
