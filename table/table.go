package table

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cosmodist/cosmology"
)

// Fixed redshift domain of every table.
const (
	ZMin = 0.0
	ZMax = 3.0
	Step = 0.00005
)

// MinRows is the smallest table the monotone cubic fit accepts.
const MinRows = 3

// Rows returns the number of grid points, ceil((ZMax-ZMin)/Step).
func Rows() int {
	return int(math.Ceil((ZMax - ZMin) / Step))
}

// Row is one (z, r) pair.
type Row struct {
	Z float64
	R float64
}

// Table is an ordered, immutable sequence of (z, r) rows, strictly increasing
// in both columns.
type Table struct {
	z []float64
	r []float64
}

// Build samples the fixed redshift grid and evaluates comoving distances for p.
//
// Implementation:
//   - Stage 1: n = Rows(); z = linspace(ZMin, ZMax, n) via floats.Span.
//   - Stage 2: r = ev.ComovingDistance(p, z).
//   - Stage 3: pair index-wise. No sorting, no deduplication.
//
// Errors:
//   - ErrEvaluator wrapping the evaluator's error, or a length mismatch.
//
// Complexity: O(n) plus the evaluator's cost.
func Build(p cosmology.Params, ev cosmology.Evaluator) (*Table, error) {
	z := floats.Span(make([]float64, Rows()), ZMin, ZMax)
	z[len(z)-1] = ZMax // pin the endpoint against accumulated rounding

	r, err := ev.ComovingDistance(p, z)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEvaluator, err)
	}
	if len(r) != len(z) {
		return nil, fmt.Errorf("%w: evaluator returned %d distances for %d redshifts", ErrEvaluator, len(r), len(z))
	}

	return &Table{z: z, r: r}, nil
}

// FromColumns restores a table from stored columns. Unlike Build it checks
// the shape and strict monotonicity of both columns, since the data did not
// come from a trusted evaluator. The inputs are copied.
func FromColumns(z, r []float64) (*Table, error) {
	if len(z) != len(r) || len(z) < MinRows {
		return nil, fmt.Errorf("%w: len(z)=%d len(r)=%d", ErrShape, len(z), len(r))
	}
	if i := firstNonIncreasing(z); i >= 0 {
		return nil, fmt.Errorf("%w: z at row %d", ErrNotMonotonic, i)
	}
	if i := firstNonIncreasing(r); i >= 0 {
		return nil, fmt.Errorf("%w: r at row %d", ErrNotMonotonic, i)
	}

	return &Table{z: clone(z), r: clone(r)}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.z) }

// Z returns a copy of the redshift column.
func (t *Table) Z() []float64 { return clone(t.z) }

// R returns a copy of the comoving-distance column.
func (t *Table) R() []float64 { return clone(t.r) }

// At returns row i.
func (t *Table) At(i int) (Row, error) {
	if i < 0 || i >= len(t.z) {
		return Row{}, fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, i, len(t.z))
	}

	return Row{Z: t.z[i], R: t.r[i]}, nil
}

// ZMin and ZMax return the first and last redshift of the table.
func (t *Table) ZMin() float64 { return t.z[0] }
func (t *Table) ZMax() float64 { return t.z[len(t.z)-1] }

// RMin and RMax return the observed distance bounds (first and last row).
func (t *Table) RMin() float64 { return t.r[0] }
func (t *Table) RMax() float64 { return t.r[len(t.r)-1] }

// IsMonotonic reports whether both columns are strictly increasing.
func (t *Table) IsMonotonic() bool {
	return firstNonIncreasing(t.z) < 0 && firstNonIncreasing(t.r) < 0
}

// firstNonIncreasing returns the first i with xs[i] <= xs[i-1] (or a NaN), -1 if none.
func firstNonIncreasing(xs []float64) int {
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return i
		}
	}

	return -1
}

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}
