package csvdata

import "fmt"

type selectorKind int

const (
	selectorNone selectorKind = iota
	selectorIndex
	selectorHeader
)

// Selector names exactly one column, either by position or by header.
// The zero value selects nothing and fails every query with
// ErrMissingSelector; values built through ByIndex or ByHeader cannot be
// ambiguous.
type Selector struct {
	kind   selectorKind
	index  int
	header string
}

// ByIndex selects the column at position i.
func ByIndex(i int) Selector {
	return Selector{kind: selectorIndex, index: i}
}

// ByHeader selects the column with the given header string.
func ByHeader(h string) Selector {
	return Selector{kind: selectorHeader, header: h}
}

// String describes the selector for error messages.
func (s Selector) String() string {
	switch s.kind {
	case selectorIndex:
		return fmt.Sprintf("index %d", s.index)
	case selectorHeader:
		return fmt.Sprintf("header '%s'", s.header)
	default:
		return "no selector"
	}
}

// ValidateLoose builds a Selector from the two loosely typed slots the
// visualization client supplies. Exactly one slot must be populated:
// both populated fails with ErrAmbiguousSelector, neither with
// ErrMissingSelector, and a populated slot of the wrong dynamic type
// with ErrTypeMismatch. Integral float64 values are accepted in the
// index slot because frontend bindings deliver all numbers that way.
func ValidateLoose(index, header any) (Selector, error) {
	if index != nil && header != nil {
		return Selector{}, fmt.Errorf("%w: only one of index or header should be provided", ErrAmbiguousSelector)
	}
	if index == nil && header == nil {
		return Selector{}, fmt.Errorf("%w: an index or header name must be provided", ErrMissingSelector)
	}

	if index != nil {
		switch v := index.(type) {
		case int:
			return ByIndex(v), nil
		case int64:
			return ByIndex(int(v)), nil
		case float64:
			if v == float64(int(v)) {
				return ByIndex(int(v)), nil
			}
			return Selector{}, fmt.Errorf("%w: index %v is not an integer", ErrTypeMismatch, v)
		default:
			return Selector{}, fmt.Errorf("%w: index must be an integer, got %T", ErrTypeMismatch, index)
		}
	}

	if h, ok := header.(string); ok {
		return ByHeader(h), nil
	}
	return Selector{}, fmt.Errorf("%w: header must be a string, got %T", ErrTypeMismatch, header)
}
