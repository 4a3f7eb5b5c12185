// Package lookup serves bounds-checked redshift ↔ comoving-distance queries
// over a distance table.
//
// Two monotone piecewise-cubic (Fritsch–Butland) interpolants are fitted per
// table: forward on (z, r) and inverse on (r, z). Both preserve the ordering
// of the table and do not overshoot between knots.
//
// Batches and scalars:
//
//	The batch form (ZToRBatch, RToZBatch) is the primitive: []float64 in,
//	[]float64 out, same length and order. The scalar form (ZToR, RToZ) wraps
//	the value into a one-element batch and unwraps the result, so scalars and
//	batches share one code path and one bound policy.
//
// Bound policy (batch level, not per element):
//
//	A batch is rejected with ErrOutOfDomain only when EVERY element is below
//	the lower bound, or EVERY element is above the upper bound. A batch that
//	mixes in-range and out-of-range values is accepted; its out-of-range
//	elements are extrapolated linearly from the end knot with the end slope.
//	An empty batch is rejected (the "all below" reduction is vacuously true).
//	NaN elements evaluate to NaN.
//
//	Redshift bounds are the fixed [table.ZMin, table.ZMax] = [0, 3.0].
//	Distance bounds are the table's first and last r.
//
// An Interpolator is read-only after New and safe for concurrent use.
package lookup
