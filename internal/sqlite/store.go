// Package sqlite implements the SQLite store for slotrack: the syllabus
// master, teacher identities and assignments, the teaching diary with its
// coverage log, planned objectives, and the classification lookup tables.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ayurlms/slotrack/pkg/types"
)

// DBFileName is the SQLite database file created inside the data directory.
const DBFileName = "slotrack.db"

// Date layout for coverage, plan, and assignment dates. Plain dates keep
// the strftime-based monthly filter simple.
const dateLayout = "2006-01-02"

// Store owns the process-wide SQLite handle. It is created once at process
// start and held for the process lifetime; individual operations are short
// statements against the shared handle.
type Store struct {
	mu           sync.RWMutex
	open         bool
	db           *sql.DB
	academicYear string
}

// New returns an unopened Store. Call Open with a Config before use.
func New() *Store {
	return &Store{}
}

// Open creates the data directory if needed, opens the database, applies
// the schema, and seeds the lookup tables. Open is idempotent in effect:
// schema creation and seeding are no-ops on an already-initialized store.
// Returns ErrStoreOpen if the store is already open.
func (s *Store) Open(cfg types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrStoreOpen
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(cfg.DataDir, DBFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	if err := seedLookupTables(db); err != nil {
		db.Close()
		return fmt.Errorf("seeding lookup tables: %w", err)
	}

	s.db = db
	s.academicYear = cfg.AcademicYear
	if s.academicYear == "" {
		s.academicYear = types.DefaultAcademicYear
	}
	s.open = true
	return nil
}

// Close releases the database handle. Idempotent; after Close all
// operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.open = false
	return nil
}

// AcademicYear returns the academic year the store was opened with.
func (s *Store) AcademicYear() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.academicYear
}

// Ready reports whether the syllabus master holds at least one objective.
// An empty store means no import has succeeded yet; callers surface this
// as a "not ready" signal rather than an error.
func (s *Store) Ready() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return false, types.ErrStoreClosed
	}
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM syllabus_master").Scan(&count); err != nil {
		return false, fmt.Errorf("counting objectives: %w", err)
	}
	return count > 0, nil
}

// checkOpen returns ErrStoreClosed when the store has not been opened.
// The caller must hold mu (read or write lock).
func (s *Store) checkOpen() error {
	if !s.open {
		return types.ErrStoreClosed
	}
	return nil
}

// generateID returns a new UUID v7 string. v7 IDs are time-ordered, so
// ordering by ID preserves insertion order within a table.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// nowUTC returns the current time truncated to seconds, in UTC. Second
// precision round-trips cleanly through RFC 3339 columns.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// formatDate and parseDate convert between time.Time and date columns.
func formatDate(t time.Time) string { return t.Format(dateLayout) }

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// parseTimestamp converts an RFC 3339 column back to time.Time.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
