package fileloader

// Package fileloader reads a whole telemetry log into memory in one shot.
// It owns file type detection, decompression, record scanning and header
// normalization. Everything downstream (table access, classification,
// transforms) operates on the Dataset produced here and never reopens the
// file.

// Options controls how a telemetry log is scanned.
type Options struct {
	// Delimiter separates fields within a record.
	Delimiter rune
	// Quote encloses fields that contain the delimiter or newlines.
	// A doubled quote rune inside a quoted field produces a literal quote.
	Quote rune
}

// DefaultOptions returns the scanning options used by the telemetry UI
// logger: semicolon-delimited fields, pipe-quoted.
func DefaultOptions() Options {
	return Options{
		Delimiter: ';',
		Quote:     '|',
	}
}

// Dataset is the immutable in-memory form of one loaded telemetry log.
// Headers and Rows are fixed at load time; Rows is row-major and
// rectangular (every row has exactly len(Headers) cells).
type Dataset struct {
	// Path is the file the dataset was loaded from.
	Path string
	// Headers holds the first record of the file, normalized so that
	// empty cells get synthetic names.
	Headers []string
	// Rows holds the data records in file order.
	Rows [][]string
	// Fingerprint is a hex-encoded HighwayHash-64 of the raw file bytes,
	// stable across loads of the same file.
	Fingerprint string
	// Compression records how the file was compressed on disk.
	Compression CompressionType
}

// ColumnCount returns the number of columns in the dataset.
func (d *Dataset) ColumnCount() int {
	return len(d.Headers)
}

// RowCount returns the number of data rows in the dataset.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// Column returns the cells of column i in row order. The index must be
// valid; callers route bounds checking through the accessor layer.
func (d *Dataset) Column(i int) []string {
	col := make([]string, len(d.Rows))
	for r, row := range d.Rows {
		col[r] = row[i]
	}
	return col
}
