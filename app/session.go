package app

import (
	"fmt"

	"telemview/app/chartscale"
	"telemview/app/csvdata"
	"telemview/app/settings"
	"telemview/app/timestamps"
)

// Session is one opened telemetry log. All fields are fixed at open
// time; every method is a pure read.
type Session struct {
	id          string
	path        string
	fingerprint string
	profile     settings.Profile
	table       *csvdata.Table
}

// Info returns the session's metadata.
func (s *Session) Info() SessionInfo {
	return SessionInfo{
		ID:          s.id,
		Path:        s.path,
		Fingerprint: s.fingerprint,
		Rows:        s.table.RowCount(),
		Columns:     s.table.ColumnCount(),
	}
}

// Table exposes the underlying column table for callers that want the
// typed selector API directly.
func (s *Session) Table() *csvdata.Table {
	return s.table
}

// HeaderList returns the column headers in file order.
func (s *Session) HeaderList() []string {
	return s.table.HeaderList()
}

// IndexList returns the column indices in order.
func (s *Session) IndexList() []int {
	return s.table.IndexList()
}

// HeadersMapping returns the header group structure derived with the
// session profile's group prefix.
func (s *Session) HeadersMapping() csvdata.GroupMapping {
	return s.table.HeaderGroups(s.profile.GroupPrefix)
}

// ConstDataIndexList returns the indices of columns whose value never
// changes.
func (s *Session) ConstDataIndexList() []int {
	return s.table.ConstantColumns()
}

// ConstZeroDataIndexList returns the indices of columns that are zero in
// every row.
func (s *Session) ConstZeroDataIndexList() []int {
	return s.table.ConstantZeroColumns()
}

// VaryingDataIndexList returns the indices of columns whose value
// changes over the recording.
func (s *Session) VaryingDataIndexList() []int {
	return s.table.VaryingColumns()
}

// TimeDataList converts the profile's time column into elapsed seconds
// anchored on the first sample.
func (s *Session) TimeDataList() ([]float64, error) {
	cells, err := s.table.Column(csvdata.ByHeader(s.profile.TimeColumn))
	if err != nil {
		return nil, fmt.Errorf("time column '%s': %w", s.profile.TimeColumn, err)
	}
	series, err := timestamps.ElapsedSeconds(cells)
	if err != nil {
		return nil, fmt.Errorf("time column '%s': %w", s.profile.TimeColumn, err)
	}
	return series, nil
}

// GetHeader returns the header at the given column index.
func (s *Session) GetHeader(index int) (string, error) {
	return s.table.HeaderAt(index)
}

// GetIndex returns the first column index of the given header.
func (s *Session) GetIndex(header string) (int, error) {
	return s.table.IndexOf(header)
}

// GetData resolves exactly one of index/header and returns that column
// coerced to floats. The slots are loosely typed because the frontend
// binding delivers them that way; csvdata.ValidateLoose enforces the
// exactly-one-of contract.
func (s *Session) GetData(index, header any) ([]float64, error) {
	sel, err := csvdata.ValidateLoose(index, header)
	if err != nil {
		return nil, err
	}
	return s.table.Values(sel)
}

// ExtremaPair is a padded axis window for one column.
type ExtremaPair struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// GetDataExtrema resolves exactly one of index/header and returns the
// padded chart window for that column.
func (s *Session) GetDataExtrema(index, header any) (ExtremaPair, error) {
	values, err := s.GetData(index, header)
	if err != nil {
		return ExtremaPair{}, err
	}
	min, max, err := chartscale.Extrema(values)
	if err != nil {
		return ExtremaPair{}, err
	}
	return ExtremaPair{Min: min, Max: max}, nil
}

// GetUniqueColorCode returns the deterministic chart color for the
// column at the given index.
func (s *Session) GetUniqueColorCode(index int) (string, error) {
	if err := s.table.ValidateIndex(index); err != nil {
		return "", err
	}
	return chartscale.ColorCode(index, s.table.ColumnCount())
}
