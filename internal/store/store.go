package store

import (
	"database/sql"
	"strings"
)

// Store provides access to all storage repositories.
type Store struct {
	db            *sql.DB
	users         *UserStore
	collaborators *CollaboratorStore
}

func NewStore(db *sql.DB) *Store {
	qi := newQueryInterceptor(db)
	return &Store{
		db:            db,
		users:         NewUserStore(qi),
		collaborators: NewCollaboratorStore(qi),
	}
}

func (s *Store) Users() *UserStore {
	return s.users
}

func (s *Store) Collaborators() *CollaboratorStore {
	return s.collaborators
}

func (s *Store) Close() error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a DuckDB unique-constraint
// failure. The driver exposes no typed constraint errors, so this matches
// the engine's constraint error text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint")
}
