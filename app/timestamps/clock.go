package timestamps

// Package timestamps converts the telemetry log's time column into an
// elapsed-seconds series. The recorder emits two incompatible encodings
// in the wild: a Unix epoch value in milliseconds written as a decimal
// with three fractional digits, and an already formatted wall-clock
// string with an embedded H:M:S component. Both normalize to the same
// hours/minutes/seconds triple here.

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock reading with fractional seconds preserved.
type Clock struct {
	Hours   float64
	Minutes float64
	Seconds float64
}

// ParseClock extracts the wall-clock component of one raw time cell.
//
// A numeric cell is formatted with exactly three decimals, the decimal
// point is stripped, and the resulting integer is interpreted as epoch
// milliseconds in UTC. The epoch interpretation is only trusted while it
// lands in years 1 through 9999; outside that window, and for cells that
// are not numeric at all, the cell is treated as text with an embedded
// "date time" pair and the H:M:S is read from the second token.
func ParseClock(raw string) (Clock, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Clock{}, fmt.Errorf("empty time value")
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		formatted := strconv.FormatFloat(f, 'f', 3, 64)
		digits := strings.Replace(formatted, ".", "", 1)
		if ms, err := strconv.ParseInt(digits, 10, 64); err == nil {
			if c, ok := clockFromEpochMillis(ms); ok {
				return c, nil
			}
		}
		// Out-of-range epoch falls through to the text form of the
		// formatted value, matching the recorder's reference reader
		trimmed = formatted
	}

	return clockFromText(trimmed)
}

// clockFromEpochMillis converts epoch milliseconds to a UTC wall clock.
// The ok result is false when the value leaves the representable year
// range 1..9999.
func clockFromEpochMillis(ms int64) (Clock, bool) {
	t := time.UnixMilli(ms).UTC()
	if t.Year() < 1 || t.Year() > 9999 {
		return Clock{}, false
	}
	return Clock{
		Hours:   float64(t.Hour()),
		Minutes: float64(t.Minute()),
		Seconds: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}, true
}

// clockFromText reads the H:M:S component embedded in a "date time"
// string: the second whitespace-separated token, split on colons.
func clockFromText(s string) (Clock, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Clock{}, fmt.Errorf("no embedded wall-clock component in '%s'", s)
	}
	parts := strings.Split(fields[1], ":")
	if len(parts) != 3 {
		return Clock{}, fmt.Errorf("malformed wall-clock component '%s'", fields[1])
	}

	var vals [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Clock{}, fmt.Errorf("malformed wall-clock component '%s': %v", fields[1], err)
		}
		vals[i] = v
	}
	return Clock{Hours: vals[0], Minutes: vals[1], Seconds: vals[2]}, nil
}

// SecondsSince returns the elapsed seconds between c and the offset
// clock, rounded to three decimals.
func (c Clock) SecondsSince(offset Clock) float64 {
	return round3((c.Hours-offset.Hours)*3600 + (c.Minutes-offset.Minutes)*60 + (c.Seconds - offset.Seconds))
}

// ElapsedSeconds converts a time column into elapsed seconds anchored on
// its own first row: the first element is always 0.0 and the result has
// one element per input cell. An empty column yields an empty series.
func ElapsedSeconds(cells []string) ([]float64, error) {
	if len(cells) == 0 {
		return []float64{}, nil
	}

	offset, err := ParseClock(cells[0])
	if err != nil {
		return nil, fmt.Errorf("time offset row: %w", err)
	}

	series := make([]float64, 0, len(cells))
	series = append(series, 0.0)
	for i, cell := range cells[1:] {
		c, err := ParseClock(cell)
		if err != nil {
			return nil, fmt.Errorf("time row %d: %w", i+1, err)
		}
		series = append(series, c.SecondsSince(offset))
	}
	return series, nil
}

// round3 rounds half-to-even, matching the recorder's reference reader.
func round3(v float64) float64 {
	return math.RoundToEven(v*1000) / 1000
}
