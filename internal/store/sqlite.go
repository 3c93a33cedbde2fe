package store

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ptran/tracker/internal/model"
	"github.com/ptran/tracker/internal/notify"
)

// SQLiteStore implements the Store interface using a local SQLite
// database. Activity log rows are written by schema triggers, so every
// INSERT/UPDATE/DELETE on a tracked table audits itself regardless of
// which code path performed it.
type SQLiteStore struct {
	db  *sqlx.DB
	hub *notify.Hub
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, runs any pending schema migrations, and records
// actor as the session identity for activity entries. hub may be nil;
// when set, the store publishes a change signal after each successful
// mutation.
func NewSQLiteStore(dbPath string, actor string, hub *notify.Hub) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db, hub: hub}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	if err := s.setSessionActor(actor); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// setSessionActor records the identity the activity triggers attribute
// changes to. session_info has at most one row.
func (s *SQLiteStore) setSessionActor(actor string) error {
	if _, err := s.db.Exec("DELETE FROM session_info"); err != nil {
		return fmt.Errorf("clearing session info: %w", err)
	}
	if _, err := s.db.Exec("INSERT INTO session_info (actor) VALUES (?)", actor); err != nil {
		return fmt.Errorf("recording session actor: %w", err)
	}
	return nil
}

// publish emits change signals after a successful mutation. The
// triggers also appended activity rows, so the activity feed is
// signaled alongside the mutated collection.
func (s *SQLiteStore) publish(t model.EntityType) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(t)
	s.hub.Publish(model.EntityActivity)
}

// setClause assembles "col = ?" fragments into a SET clause.
type setClause struct {
	assignments []string
	args        []interface{}
}

func (c *setClause) add(column string, arg interface{}) {
	c.assignments = append(c.assignments, column+" = ?")
	c.args = append(c.args, arg)
}

// addExpr appends a raw assignment expression with its arguments.
func (c *setClause) addExpr(expr string, args ...interface{}) {
	c.assignments = append(c.assignments, expr)
	c.args = append(c.args, args...)
}

func (c *setClause) empty() bool {
	return len(c.assignments) == 0
}

func (c *setClause) sql() string {
	return strings.Join(c.assignments, ", ")
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
