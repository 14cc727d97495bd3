package fileloader

import "errors"

// Load failure kinds. Every error returned by Load wraps exactly one of
// these sentinels so callers can match with errors.Is while the message
// still names the offending file.
var (
	// ErrNotFound is returned when the path does not exist on disk.
	ErrNotFound = errors.New("file not found")

	// ErrEmptyData is returned when the file exists but contains no
	// parseable columns (for example a zero-byte file).
	ErrEmptyData = errors.New("no columns to parse")

	// ErrInvalidEncoding is returned when the file bytes cannot be
	// decoded as text, such as a spreadsheet or other binary format.
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrInvalidPathType is returned when the path exists but does not
	// name a regular file (a directory, socket, device node).
	ErrInvalidPathType = errors.New("invalid path type")

	// ErrMissingArgument is returned when no path was supplied at all.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrUnexpected wraps any other failure encountered during load.
	ErrUnexpected = errors.New("unexpected load error")
)
