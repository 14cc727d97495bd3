package csvdata

import (
	"fmt"
	"strconv"
)

// ValidateIndex fails with ErrIndexOutOfRange iff i falls outside
// [0, ColumnCount).
func (t *Table) ValidateIndex(i int) error {
	if i < 0 || i >= len(t.headers) {
		return fmt.Errorf("%w: index '%d' out of range [0, %d)", ErrIndexOutOfRange, i, len(t.headers))
	}
	return nil
}

// ValidateHeader fails with ErrHeaderNotFound iff h is not among the
// table's headers.
func (t *Table) ValidateHeader(h string) error {
	for _, header := range t.headers {
		if header == h {
			return nil
		}
	}
	return fmt.Errorf("%w: header '%s' not found", ErrHeaderNotFound, h)
}

// HeaderAt returns the header string at position i.
func (t *Table) HeaderAt(i int) (string, error) {
	if err := t.ValidateIndex(i); err != nil {
		return "", err
	}
	return t.headers[i], nil
}

// IndexOf returns the first position of header h.
func (t *Table) IndexOf(h string) (int, error) {
	for i, header := range t.headers {
		if header == h {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: header '%s' not found", ErrHeaderNotFound, h)
}

// resolve maps a selector to a column index, validating it.
func (t *Table) resolve(sel Selector) (int, error) {
	switch sel.kind {
	case selectorIndex:
		if err := t.ValidateIndex(sel.index); err != nil {
			return 0, err
		}
		return sel.index, nil
	case selectorHeader:
		return t.IndexOf(sel.header)
	default:
		return 0, fmt.Errorf("%w: an index or header name must be provided", ErrMissingSelector)
	}
}

// Column returns the selected column's raw cells in row order.
func (t *Table) Column(sel Selector) ([]string, error) {
	i, err := t.resolve(sel)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), t.columns[i]...), nil
}

// Values returns the selected column coerced to floats. Any cell that
// does not parse fails the whole query with ErrNonNumericValue.
func (t *Table) Values(sel Selector) ([]float64, error) {
	i, err := t.resolve(sel)
	if err != nil {
		return nil, err
	}
	if t.numeric[i] != nil {
		return append([]float64(nil), t.numeric[i]...), nil
	}
	values := make([]float64, len(t.columns[i]))
	for r, cell := range t.columns[i] {
		v, perr := strconv.ParseFloat(cell, 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: cell '%s' at row %d of %s", ErrNonNumericValue, cell, r, sel)
		}
		values[r] = v
	}
	return values, nil
}
