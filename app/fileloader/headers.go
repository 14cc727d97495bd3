package fileloader

import (
	"strconv"
	"strings"
)

// NormalizeHeaders replaces empty or whitespace-only header cells with
// synthetic names based on column position: "Unnamed: 0", "Unnamed: 1", ...
// matching what the telemetry logs produced by older recorder builds look
// like after a round trip through spreadsheet tooling. Non-empty headers
// are preserved as-is, including duplicates (header uniqueness is
// source-defined and never enforced here).
func NormalizeHeaders(header []string) []string {
	normalized := make([]string, len(header))
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			normalized[i] = "Unnamed: " + strconv.Itoa(i)
		} else {
			normalized[i] = h
		}
	}
	return normalized
}
