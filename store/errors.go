package store

import "errors"

var (
	// ErrNotFound is returned when no stored table matches an id or parameters.
	ErrNotFound = errors.New("store: table not found")

	// ErrCorrupt indicates a stored row whose blobs do not decode to its row count.
	ErrCorrupt = errors.New("store: corrupt table record")
)
