// Package model is the public façade of cosmodist: a Model owns one
// parameter set, its distance table and the two interpolants built over it.
//
// 🚀 What is a Model?
//
//	params ──► table.Build ──► lookup.New ──► ZToR / RToZ / DeltaSToDeltaZ
//
//	A Model is created by New (or FromTable for a persisted table) and can be
//	re-parameterized with SetModel, which always performs a full rebuild.
//
// ✨ Key features:
//   - scalar and batch conversions sharing one bound policy (see package lookup)
//   - DeltaSToDeltaZ: Δz spanned by a comoving separation Δs above z_min
//   - Select / MinOmegaM / MaxOmegaM over a sweep of models
//   - safe for concurrent readers; SetModel swaps the rebuilt state atomically
//
// ⚙️ Usage:
//
//	m, err := model.New(cosmology.DefaultParams())
//	r, err := m.ZToR(0.5)
//	dz, err := m.DeltaSToDeltaZ(10, 0.43)
package model
