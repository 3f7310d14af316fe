// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sqlite "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mliu/ledgerbook/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and ensures the schema exists.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The pragma below is per-connection; a single connection keeps it
	// in force for every statement and serializes operations, which is
	// all this store's single-writer usage needs.
	db.SetMaxOpenConns(1)

	// Enable foreign keys so the products cascade actually fires.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// isForeignKeyViolation reports whether err is a SQLite FOREIGN KEY
// constraint failure, i.e. an insert that names a missing parent row.
func isForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

// isConstraintViolation reports whether err is any SQLITE_CONSTRAINT_*
// failure. Extended constraint codes carry the base code in the low byte.
func isConstraintViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// engineErr wraps a driver-level failure so callers can branch on
// storage.ErrStorageUnavailable instead of inspecting message text.
// Constraint violations are domain outcomes, not engine faults, so they
// are excluded here; call sites translate the ones they expect.
// Non-driver errors (context cancellation, scan bugs) pass through wrapped
// as-is.
func engineErr(op string, err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && !isConstraintViolation(err) {
		return fmt.Errorf("%s: %v: %w", op, err, storage.ErrStorageUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
