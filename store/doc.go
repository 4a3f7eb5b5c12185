// Package store persists built distance tables in SQLite so later pipeline
// stages can restore a Model without re-integrating.
//
// Each saved table gets a UUID. Columns are stored as little-endian float64
// BLOBs next to the parameter triple; Find looks tables up by exact
// parameters. The driver is modernc.org/sqlite (pure Go, no cgo).
package store
