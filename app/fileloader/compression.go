package fileloader

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/ulikunitz/xz"
)

// CompressionType represents the on-disk compression format of a log file.
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
)

// String returns the string representation of CompressionType.
func (ct CompressionType) String() string {
	switch ct {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	default:
		return "none"
	}
}

// Magic byte signatures for compression detection
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{0x42, 0x5a, 0x68} // "BZh"
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// compressionExtensions maps file extensions to their CompressionType.
var compressionExtensions = map[string]CompressionType{
	".gz":  CompressionGzip,
	".bz2": CompressionBzip2,
	".xz":  CompressionXZ,
}

// DetectCompression determines the compression format of raw file bytes.
// The file extension is checked first; magic bytes act as a fallback so
// that a compressed log without a compression extension is still handled.
func DetectCompression(path string, data []byte) CompressionType {
	lower := strings.ToLower(path)
	for ext, ct := range compressionExtensions {
		if strings.HasSuffix(lower, ext) {
			return ct
		}
	}
	if bytes.HasPrefix(data, gzipMagic) {
		return CompressionGzip
	}
	if bytes.HasPrefix(data, bzip2Magic) {
		return CompressionBzip2
	}
	if bytes.HasPrefix(data, xzMagic) {
		return CompressionXZ
	}
	return CompressionNone
}

// Decompress expands raw file bytes according to the detected compression
// type. CompressionNone returns the input unchanged.
func Decompress(data []byte, ct CompressionType) ([]byte, error) {
	var reader io.Reader

	switch ct {
	case CompressionNone:
		return data, nil

	case CompressionGzip:
		gzReader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		reader = gzReader

	case CompressionBzip2:
		reader = bzip2.NewReader(bytes.NewReader(data))

	case CompressionXZ:
		xzReader, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		reader = xzReader

	default:
		return nil, fmt.Errorf("unsupported compression type: %v", ct)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	return buf.Bytes(), nil
}
