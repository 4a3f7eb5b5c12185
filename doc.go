// Package cosmodist converts between cosmological redshift and line-of-sight
// comoving distance, in Mpc/h for hubble0 = 100.
//
// 🚀 What is cosmodist?
//
//	A small, pure-Go toolkit for survey pipelines that need fast, repeatable
//	z ↔ r conversion for one or many Lambda-CDM cosmologies:
//		• Comoving-distance integrals via Gauss–Legendre quadrature
//		• A fixed 60 000-row distance table over z ∈ [0, 3]
//		• Monotone cubic (Fritsch–Butland) interpolation both ways
//		• Separation → redshift-interval conversion (Δs → Δz)
//		• Extremal selection over a cosmology sweep
//		• TOML/YAML sweep configs and a SQLite table archive
//
// ✨ Why choose cosmodist?
//
//   - Deterministic: the same parameters always produce the same table
//   - Concurrency-safe: readers never observe a half-built model
//   - Pure Go: no cgo, SQLite included
//
// Packages:
//
//	cosmology/: parameters, E(z) and the comoving-distance evaluator
//	table/: the fixed redshift grid and its distance column
//	lookup/: bounds-checked forward/inverse interpolation
//	model/: a re-parameterizable Model plus extremal selection
//	config/: sweep configuration (TOML, YAML, environment)
//	store/: SQLite archive of built tables
//	cmd/: the cosmodist command-line tool
//
// Quick start:
//
//	m, _ := model.NewDefault()       // Planck-like 100 / 0.307 / 0.693
//	r, _ := m.ZToR(0.5)              // ≈ 1318.85 Mpc/h
//	dz, _ := m.DeltaSToDeltaZ(200, 0.43)
//
//	go install github.com/katalvlaran/cosmodist/cmd/cosmodist@latest
package cosmodist
