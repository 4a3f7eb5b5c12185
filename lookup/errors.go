package lookup

import "errors"

var (
	// ErrOutOfDomain is returned when a whole query batch lies below or above
	// the valid range. Callers are expected to clamp or skip.
	ErrOutOfDomain = errors.New("lookup: query outside table domain")

	// ErrNotMonotonic indicates a table that cannot be fitted because one of
	// its columns is not strictly increasing.
	ErrNotMonotonic = errors.New("lookup: table is not strictly increasing")

	// ErrNilTable is returned by New for a nil table.
	ErrNilTable = errors.New("lookup: nil table")
)
