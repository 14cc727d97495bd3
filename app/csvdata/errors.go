package csvdata

import "errors"

// Query failure kinds. A failed query never corrupts the table; the
// caller gets exactly one of these sentinels wrapped with selector
// context and the table remains usable.
var (
	// ErrIndexOutOfRange is returned when a column index falls outside
	// [0, ColumnCount).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrHeaderNotFound is returned when a header string is not present
	// in the table.
	ErrHeaderNotFound = errors.New("header not found")

	// ErrAmbiguousSelector is returned when both an index and a header
	// were supplied for one query.
	ErrAmbiguousSelector = errors.New("ambiguous selector")

	// ErrMissingSelector is returned when neither an index nor a header
	// was supplied.
	ErrMissingSelector = errors.New("missing selector")

	// ErrTypeMismatch is returned when a selector slot holds a value of
	// the wrong dynamic type.
	ErrTypeMismatch = errors.New("selector type mismatch")

	// ErrNonNumericValue is returned when a cell cannot be coerced to a
	// floating-point number.
	ErrNonNumericValue = errors.New("non-numeric value")
)
