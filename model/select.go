package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cosmodist/cosmology"
)

// Extremum selects the direction of an extremal search.
type Extremum int

const (
	// Min selects the smallest OmegaM0.
	Min Extremum = iota
	// Max selects the largest OmegaM0.
	Max
)

func (e Extremum) String() string {
	switch e {
	case Min:
		return "min"
	case Max:
		return "max"
	}

	return fmt.Sprintf("Extremum(%d)", int(e))
}

// Parameterized is anything carrying a parameter set: *Model, or a bare
// cosmology.Params.
type Parameterized interface {
	Params() cosmology.Params
}

var (
	_ Parameterized = (*Model)(nil)
	_ Parameterized = cosmology.Params{}
)

// Select returns the element of ms with extremal OmegaM0 and its index.
//
// The scan runs left to right with a non-strict comparison (<= for Min,
// >= for Max), so on ties the LAST occurrence wins. Elements whose OmegaM0
// is NaN never compare true and are skipped.
//
// Errors:
//   - ErrEmptySelection if no element qualifies; the index is then -1.
//   - ErrUnknownExtremum for a mode other than Min or Max.
func Select[M Parameterized](ms []M, mode Extremum) (M, int, error) {
	var (
		zero   M
		better func(v, best float64) bool
		best   float64
	)
	switch mode {
	case Min:
		better = func(v, best float64) bool { return v <= best }
		best = math.Inf(1)
	case Max:
		better = func(v, best float64) bool { return v >= best }
		best = math.Inf(-1)
	default:
		return zero, -1, fmt.Errorf("%w: %v", ErrUnknownExtremum, mode)
	}

	idx := -1
	for i, m := range ms {
		if v := m.Params().OmegaM0; better(v, best) {
			best, idx = v, i
		}
	}
	if idx < 0 {
		return zero, -1, ErrEmptySelection
	}

	return ms[idx], idx, nil
}

// MinOmegaM returns the model with the smallest OmegaM0 (last one on ties).
func MinOmegaM[M Parameterized](ms []M) (M, int, error) {
	return Select(ms, Min)
}

// MaxOmegaM returns the model with the largest OmegaM0 (last one on ties).
func MaxOmegaM[M Parameterized](ms []M) (M, int, error) {
	return Select(ms, Max)
}
