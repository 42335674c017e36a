// Package sqlitestore keeps the task list snapshot in a SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/idilsaglam/daylist/internal/model"

	_ "modernc.org/sqlite"
)

const DefaultFileName = "daylist.db"

const counterKey = "counter"

// Store implements the snapshot store on SQLite in WAL mode.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the database file and schema when missing.
func Open(dbPath string) (*Store, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	s := &Store{db: db, path: dbPath}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id       INTEGER PRIMARY KEY,
		label    TEXT NOT NULL DEFAULT '',
		done     INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_position ON entries(position);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Path() string { return s.path }

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context) (model.Snapshot, error) {
	snap := model.Snapshot{Entries: []model.Entry{}}

	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key=?", counterKey).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return model.Snapshot{}, fmt.Errorf("load counter: %w", err)
	default:
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return model.Snapshot{}, fmt.Errorf("parse counter %q: %w", raw, convErr)
		}
		snap.Counter = n
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, label, done FROM entries ORDER BY position")
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e model.Entry
		var done int
		if err := rows.Scan(&e.ID, &e.Label, &done); err != nil {
			return model.Snapshot{}, fmt.Errorf("scan entry: %w", err)
		}
		e.Done = done != 0
		snap.Entries = append(snap.Entries, e)
	}
	return snap, rows.Err()
}

// Save replaces the stored snapshot in one transaction.
func (s *Store) Save(ctx context.Context, snap model.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return fmt.Errorf("delete old entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO entries (id, label, done, position) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range snap.Entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Label, boolToInt(e.Done), i); err != nil {
			return fmt.Errorf("insert entry %d: %w", e.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		counterKey, strconv.Itoa(snap.Counter)); err != nil {
		return fmt.Errorf("save counter: %w", err)
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
