// Package table builds the dense (redshift, comoving distance) table every
// cosmology model interpolates over.
//
// Grid:
//
//	z ∈ [ZMin, ZMax] = [0, 3.0], nominal step 5e-5,
//	n = ceil((ZMax-ZMin)/Step) points spaced linearly (both endpoints included).
//
// The distances come from a cosmology.Evaluator. The builder neither sorts nor
// deduplicates: z is increasing by construction and r is increasing for any
// expanding model. Tables restored from storage go through FromColumns, which
// does check both columns.
//
// A Table is immutable; accessors return copies.
package table
