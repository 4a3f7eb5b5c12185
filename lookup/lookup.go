package lookup

import (
	"fmt"

	"github.com/katalvlaran/cosmodist/table"
)

// Interpolator wraps one table with its forward and inverse interpolants.
type Interpolator struct {
	forward curve // z -> r
	inverse curve // r -> z

	zLo, zHi float64
	rLo, rHi float64
}

// New fits both interpolants over t.
//
// Implementation:
//   - Stage 1: reject nil, short or non-monotonic tables (the fitter would panic).
//   - Stage 2: forward fit on (z, r); inverse fit on the column-swapped (r, z).
//     r is increasing, so no row reordering is needed.
//   - Stage 3: record query bounds: fixed [0, 3.0] for z, observed [r₀, rₙ] for r.
//
// Complexity: O(n) time and memory.
func New(t *table.Table) (*Interpolator, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if t.Len() < table.MinRows {
		return nil, fmt.Errorf("%w: %d rows", table.ErrShape, t.Len())
	}
	if !t.IsMonotonic() {
		return nil, ErrNotMonotonic
	}

	z, r := t.Z(), t.R()
	ip := &Interpolator{
		zLo: table.ZMin,
		zHi: table.ZMax,
		rLo: t.RMin(),
		rHi: t.RMax(),
	}
	if err := ip.forward.fit(z, r); err != nil {
		return nil, fmt.Errorf("lookup: forward fit: %w", err)
	}
	if err := ip.inverse.fit(r, z); err != nil {
		return nil, fmt.Errorf("lookup: inverse fit: %w", err)
	}

	return ip, nil
}

// ZBounds returns the redshift query domain.
func (ip *Interpolator) ZBounds() (lo, hi float64) { return ip.zLo, ip.zHi }

// RBounds returns the comoving-distance query domain.
func (ip *Interpolator) RBounds() (lo, hi float64) { return ip.rLo, ip.rHi }

// ZToRBatch converts redshifts to comoving distances.
//
// Errors:
//   - ErrOutOfDomain if all zs < 0 or all zs > 3.0 (including an empty batch).
func (ip *Interpolator) ZToRBatch(zs []float64) ([]float64, error) {
	if outside(zs, ip.zLo, ip.zHi) {
		return nil, fmt.Errorf("%w: redshift must be between %g and %g", ErrOutOfDomain, ip.zLo, ip.zHi)
	}
	out := make([]float64, len(zs))
	ip.forward.eval(out, zs)

	return out, nil
}

// RToZBatch converts comoving distances to redshifts.
//
// Errors:
//   - ErrOutOfDomain if all rs are below the first or above the last table distance.
func (ip *Interpolator) RToZBatch(rs []float64) ([]float64, error) {
	if outside(rs, ip.rLo, ip.rHi) {
		return nil, fmt.Errorf("%w: comoving distance must be between %g and %g", ErrOutOfDomain, ip.rLo, ip.rHi)
	}
	out := make([]float64, len(rs))
	ip.inverse.eval(out, rs)

	return out, nil
}

// ZToR is the scalar form of ZToRBatch.
func (ip *Interpolator) ZToR(z float64) (float64, error) {
	return scalar(ip.ZToRBatch, z)
}

// RToZ is the scalar form of RToZBatch.
func (ip *Interpolator) RToZ(r float64) (float64, error) {
	return scalar(ip.RToZBatch, r)
}

// scalar wraps x into a one-element batch and unwraps the result.
func scalar(batch func([]float64) ([]float64, error), x float64) (float64, error) {
	out, err := batch([]float64{x})
	if err != nil {
		return 0, err
	}

	return out[0], nil
}

// outside reports whether the batch is entirely below lo or entirely above hi.
// Both reductions are evaluated over the whole batch; an element that is NaN
// or inside [lo, hi] clears both.
func outside(xs []float64, lo, hi float64) bool {
	allBelow, allAbove := true, true
	for _, x := range xs {
		if !(x < lo) {
			allBelow = false
		}
		if !(x > hi) {
			allAbove = false
		}
	}

	return allBelow || allAbove
}
