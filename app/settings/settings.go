package settings

import (
	"os"

	"gopkg.in/yaml.v3"
)

// overlay mirrors Profile with pointer fields so that a key absent from
// the YAML file can be told apart from one set to the empty string.
type overlay struct {
	Delimiter   *string `yaml:"delimiter"`
	Quote       *string `yaml:"quote"`
	GroupPrefix *string `yaml:"group_prefix"`
	TimeColumn  *string `yaml:"time_column"`
	LogPattern  *string `yaml:"log_pattern"`
}

// EffectiveProfile returns the ingest profile at path overlaid on the
// defaults. If anything goes wrong (missing file, unreadable, bad YAML),
// it returns the defaults; a profile file is always optional.
func EffectiveProfile(path string) Profile {
	profile := defaultProfile
	if path == "" {
		return profile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return profile
	}
	var o overlay
	if err := yaml.Unmarshal(b, &o); err != nil {
		return profile
	}
	if o.Delimiter != nil && *o.Delimiter != "" {
		profile.Delimiter = *o.Delimiter
	}
	if o.Quote != nil && *o.Quote != "" {
		profile.Quote = *o.Quote
	}
	// An explicit empty prefix disables group stripping, so presence
	// alone is enough here.
	if o.GroupPrefix != nil {
		profile.GroupPrefix = *o.GroupPrefix
	}
	if o.TimeColumn != nil && *o.TimeColumn != "" {
		profile.TimeColumn = *o.TimeColumn
	}
	if o.LogPattern != nil && *o.LogPattern != "" {
		profile.LogPattern = *o.LogPattern
	}
	return profile
}
