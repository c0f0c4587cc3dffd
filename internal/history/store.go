// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records pipeline runs and per-file outcomes in a local
// SQLite database, so batch results can be inspected after the fact.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "history.db"

// File statuses recorded per processed file.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS files (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			path TEXT NOT NULL,
			violations INTEGER NOT NULL,
			fixes INTEGER NOT NULL,
			status TEXT NOT NULL,
			processed_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_files_run_id ON files(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_files_path ON files(path)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BeginRun opens a new pipeline run and returns its ID.
func (s *Store) BeginRun(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at) VALUES (?)`,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return res.LastInsertId()
}

// RecordFile stores the outcome of one processed file.
func (s *Store) RecordFile(ctx context.Context, runID int64, path string, violations, fixes int, status string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO files (run_id, path, violations, fixes, status, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, path, violations, fixes, status,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording file %s: %w", path, err)
	}
	return nil
}

// RunSummary aggregates one pipeline run.
type RunSummary struct {
	ID         int64
	StartedAt  string
	Files      int
	Violations int
	Fixes      int
	Failed     int
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.started_at,
			COUNT(f.path),
			COALESCE(SUM(f.violations), 0),
			COALESCE(SUM(f.fixes), 0),
			COALESCE(SUM(CASE WHEN f.status = ? THEN 1 ELSE 0 END), 0)
		 FROM runs r LEFT JOIN files f ON f.run_id = r.id
		 GROUP BY r.id ORDER BY r.id DESC LIMIT ?`,
		StatusFailed, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.Files, &r.Violations, &r.Fixes, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FileRecord is one processed-file entry of a run.
type FileRecord struct {
	Path        string
	Violations  int
	Fixes       int
	Status      string
	ProcessedAt string
}

// RunFiles returns the files of one run in processing order.
func (s *Store) RunFiles(ctx context.Context, runID int64) ([]FileRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, violations, fixes, status, processed_at
		 FROM files WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run files: %w", err)
	}
	defer rows.Close()

	var out []FileRecord
	for rows.Next() {
		var f FileRecord
		if err := rows.Scan(&f.Path, &f.Violations, &f.Fixes, &f.Status, &f.ProcessedAt); err != nil {
			return nil, fmt.Errorf("scanning file record: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
