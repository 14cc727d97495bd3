package fileloader

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minio/highwayhash"
)

// fileHashKey is the fixed key used for dataset fingerprints so that the
// same file always produces the same fingerprint.
var fileHashKey = []byte("telemview file hash key\x00\x00\x00\x00\x00\x00\x00\x00\x00")

// Load reads the telemetry log at path into a Dataset using the default
// semicolon/pipe options.
func Load(path string) (*Dataset, error) {
	return LoadWithOptions(path, DefaultOptions())
}

// LoadWithOptions reads the telemetry log at path into a Dataset. The
// whole file is consumed in one blocking read; no partial state survives
// a failure. Compressed logs (gzip, bzip2, xz) are expanded transparently.
//
// Failures are reported as one of the package's sentinel kinds:
// ErrMissingArgument, ErrNotFound, ErrInvalidPathType, ErrInvalidEncoding,
// ErrEmptyData, or ErrUnexpected for anything else.
func LoadWithOptions(path string, opts Options) (*Dataset, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no file path was supplied", ErrMissingArgument)
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: the file %s was not found", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrUnexpected, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrInvalidPathType, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnexpected, path, err)
	}

	ct := DetectCompression(path, raw)
	data, err := Decompress(raw, ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnexpected, path, err)
	}

	if IsBinaryContent(data) {
		return nil, fmt.Errorf("%w: invalid file type: %s", ErrInvalidEncoding, extensionOf(path))
	}

	records := scanRecords(data, opts)
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("%w: no columns to parse from file: %s", ErrEmptyData, path)
	}

	headers := NormalizeHeaders(records[0])
	rows := rectangularize(records[1:], len(headers))

	return &Dataset{
		Path:        path,
		Headers:     headers,
		Rows:        rows,
		Fingerprint: fingerprint(raw),
		Compression: ct,
	}, nil
}

// rectangularize forces every data row to the header width: short rows
// are padded with empty cells, long rows truncated.
func rectangularize(records [][]string, width int) [][]string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		switch {
		case len(rec) == width:
			rows[i] = rec
		case len(rec) > width:
			rows[i] = rec[:width]
		default:
			padded := make([]string, width)
			copy(padded, rec)
			rows[i] = padded
		}
	}
	return rows
}

// fingerprint computes the hex-encoded HighwayHash-64 of the raw bytes.
func fingerprint(raw []byte) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], highwayhash.Sum64(raw, fileHashKey))
	return hex.EncodeToString(buf[:])
}

// extensionOf returns the file extension including the dot, or the
// literal "(none)" for extension-less paths, for use in error messages.
func extensionOf(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return "(none)"
	}
	return ext
}
