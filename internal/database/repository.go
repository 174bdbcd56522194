package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*LabelRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		LabelRepo: &LabelRepo{db: db},
		db:        db,
	}
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}
