package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tutorbuddy/internal/database"
)

// StateRepository persists named state records. Each record is a versioned
// JSON document written in a single upsert statement, so a crash can lose
// the most recent write but never leave a torn record.
type StateRepository struct {
	db   *database.DB
	name string
}

// NewStateRepository creates a repository bound to one record name
func NewStateRepository(db *database.DB, name string) *StateRepository {
	return &StateRepository{db: db, name: name}
}

// SaveState inserts or replaces the record
func (r *StateRepository) SaveState(version int, payload []byte) error {
	query := r.db.Dialect.UpsertStateRecord()
	if _, err := r.db.Exec(query, r.name, version, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save state record %q: %w", r.name, err)
	}
	return nil
}

// LoadState reads the record. A missing record is not an error; it returns
// a nil payload and version zero.
func (r *StateRepository) LoadState() ([]byte, int, error) {
	var payload string
	var version int

	query := `SELECT payload, schema_version FROM state_records WHERE name = ?`
	err := r.db.QueryRow(query, r.name).Scan(&payload, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load state record %q: %w", r.name, err)
	}

	return []byte(payload), version, nil
}
