package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/cosmodist/cosmology"
	"github.com/katalvlaran/cosmodist/model"
	"github.com/katalvlaran/cosmodist/table"
)

const schema = `
CREATE TABLE IF NOT EXISTS distance_tables (
	table_id   TEXT PRIMARY KEY,
	hubble0    REAL NOT NULL,
	omega_m0   REAL NOT NULL,
	omega_de0  REAL NOT NULL,
	n_rows     INTEGER NOT NULL,
	z_blob     BLOB NOT NULL,
	r_blob     BLOB NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_distance_tables_params
	ON distance_tables (hubble0, omega_m0, omega_de0);
`

// timeLayout is fixed-width so created_at sorts lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record describes one stored table without its columns.
type Record struct {
	ID        string
	Params    cosmology.Params
	Rows      int
	CreatedAt time.Time
}

// Store is a SQLite-backed table archive.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	// One connection: SQLite has a single writer and ":memory:" is per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores m's current parameters and table under a new id.
func (s *Store) Save(ctx context.Context, m *model.Model) (Record, error) {
	p, t := m.Params(), m.Table()
	rec := Record{
		ID:        uuid.New().String(),
		Params:    p,
		Rows:      t.Len(),
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO distance_tables (table_id, hubble0, omega_m0, omega_de0, n_rows, z_blob, r_blob, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, p.Hubble0, p.OmegaM0, p.OmegaDE0, rec.Rows,
		encodeColumn(t.Z()), encodeColumn(t.R()),
		rec.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Record{}, fmt.Errorf("store: insert table: %w", err)
	}

	return rec, nil
}

// Load restores the table with the given id as a Model. opts are passed to
// model.FromTable and only matter for later SetModel calls.
func (s *Store) Load(ctx context.Context, id string, opts ...model.Option) (*model.Model, error) {
	var (
		rec          Record
		zBlob, rBlob []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT table_id, hubble0, omega_m0, omega_de0, n_rows, z_blob, r_blob
		 FROM distance_tables WHERE table_id = ?`, id,
	).Scan(&rec.ID, &rec.Params.Hubble0, &rec.Params.OmegaM0, &rec.Params.OmegaDE0,
		&rec.Rows, &zBlob, &rBlob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: query table: %w", err)
	}

	z, okZ := decodeColumn(zBlob, rec.Rows)
	r, okR := decodeColumn(rBlob, rec.Rows)
	if !okZ || !okR {
		return nil, fmt.Errorf("%w: id %s", ErrCorrupt, id)
	}
	t, err := table.FromColumns(z, r)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s: %w", ErrCorrupt, id, err)
	}

	return model.FromTable(rec.Params, t, opts...)
}

// Find returns the most recent table saved for exactly p.
func (s *Store) Find(ctx context.Context, p cosmology.Params) (Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT table_id, hubble0, omega_m0, omega_de0, n_rows, created_at
		 FROM distance_tables
		 WHERE hubble0 = ? AND omega_m0 = ? AND omega_de0 = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		p.Hubble0, p.OmegaM0, p.OmegaDE0)
	if err != nil {
		return Record{}, fmt.Errorf("store: query params: %w", err)
	}
	recs, err := scanRecords(rows)
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, fmt.Errorf("%w: %v", ErrNotFound, p)
	}

	return recs[0], nil
}

// List returns every stored table, oldest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT table_id, hubble0, omega_m0, omega_de0, n_rows, created_at
		 FROM distance_tables ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("store: list tables: %w", err)
	}

	return scanRecords(rows)
}

// Delete removes the table with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM distance_tables WHERE table_id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete table: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete table: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}

	return nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec     Record
			created string
		)
		if err := rows.Scan(&rec.ID, &rec.Params.Hubble0, &rec.Params.OmegaM0, &rec.Params.OmegaDE0,
			&rec.Rows, &created); err != nil {
			return nil, fmt.Errorf("store: scan record: %w", err)
		}
		ts, err := time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("%w: created_at %q", ErrCorrupt, created)
		}
		rec.CreatedAt = ts
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate records: %w", err)
	}

	return out, nil
}
