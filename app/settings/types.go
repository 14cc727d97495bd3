package settings

// Profile holds the ingest options for one family of telemetry logs.
// Every field can be overridden from a YAML profile file; unset fields
// keep their defaults.
type Profile struct {
	// Delimiter separates fields within a record.
	Delimiter string `yaml:"delimiter" json:"delimiter"`
	// Quote encloses fields containing the delimiter or newlines.
	Quote string `yaml:"quote" json:"quote"`
	// GroupPrefix is stripped from headers before group splitting.
	GroupPrefix string `yaml:"group_prefix" json:"group_prefix"`
	// TimeColumn is the header of the column holding raw timestamps.
	TimeColumn string `yaml:"time_column" json:"time_column"`
	// LogPattern is the glob used when discovering logs in a directory.
	LogPattern string `yaml:"log_pattern" json:"log_pattern"`
}

// defaultProfile matches the telemetry UI recorder's output.
var defaultProfile = Profile{
	Delimiter:   ";",
	Quote:       "|",
	GroupPrefix: "Truma_n_",
	TimeColumn:  "time index",
	LogPattern:  "*.csv",
}

// DefaultProfile returns the built-in ingest profile.
func DefaultProfile() Profile {
	return defaultProfile
}

// DelimiterRune returns the profile's delimiter as a rune, falling back
// to the default when the configured value is empty.
func (p Profile) DelimiterRune() rune {
	return firstRune(p.Delimiter, ';')
}

// QuoteRune returns the profile's quote as a rune, falling back to the
// default when the configured value is empty.
func (p Profile) QuoteRune() rune {
	return firstRune(p.Quote, '|')
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
