package table

import "errors"

var (
	// ErrEvaluator wraps any failure of the cosmology evaluator during Build.
	// The evaluator's own error stays in the chain for errors.Is.
	ErrEvaluator = errors.New("table: comoving-distance evaluation failed")

	// ErrShape indicates mismatched column lengths or fewer than MinRows rows.
	ErrShape = errors.New("table: columns must have equal length >= 3")

	// ErrNotMonotonic indicates a column that is not strictly increasing.
	ErrNotMonotonic = errors.New("table: column is not strictly increasing")

	// ErrRowOutOfRange is returned by At for an index outside [0, Len).
	ErrRowOutOfRange = errors.New("table: row index out of range")
)
