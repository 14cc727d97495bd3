package fileloader

import (
	"bytes"
	"unicode/utf8"
)

// Known binary container signatures. XLSX files are ZIP archives and the
// legacy XLS format is an OLE compound file, so both are caught by magic
// bytes rather than extension alone.
var (
	// ZIP local file header: "PK\x03\x04" (also covers xlsx/docx/odt)
	zipMagic = []byte{0x50, 0x4b, 0x03, 0x04}
	// OLE2 compound file (xls, doc): d0 cf 11 e0 a1 b1 1a e1
	oleMagic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}
)

// IsBinaryContent reports whether data cannot be treated as a delimited
// text log: a known binary container, embedded NUL bytes, or bytes that
// are not valid UTF-8.
func IsBinaryContent(data []byte) bool {
	if bytes.HasPrefix(data, zipMagic) || bytes.HasPrefix(data, oleMagic) {
		return true
	}
	// NUL bytes never occur in the telemetry text format
	if bytes.IndexByte(data, 0x00) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}
