package store

import "database/sql"

// DB exposes the handle so tests can tamper with stored rows.
func (s *Store) DB() *sql.DB { return s.db }
