// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists completed verification runs for the reporting
// side. The engine never reads it: there is no resume of a partially
// computed sweep, only finished records saved for later listing and
// export.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/apd-engine/pkg/types"
)

const dbFile = "apd.db"

// Store manages the verification results SQLite database.
type Store struct {
	db         *sql.DB
	resultsDir string
	maxResults int
}

// Open opens or creates the results database at resultsDir/apd.db,
// creating the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	resultsDir := cfg.ResultsDir
	if resultsDir == "" {
		resultsDir = "results"
	}
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	dbPath := filepath.Join(resultsDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, resultsDir: resultsDir, maxResults: maxResults}
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
			family TEXT NOT NULL,
			n_max INTEGER NOT NULL,
			started_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			n INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			m1 INTEGER NOT NULL,
			apd TEXT,
			vanishing TEXT NOT NULL,
			expected_m1 INTEGER,
			expected TEXT,
			verified INTEGER NOT NULL,
			PRIMARY KEY (run_id, n)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_family ON runs(family)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveRun inserts a completed run and its records in one transaction and
// returns the assigned run ID.
func (s *Store) SaveRun(ctx context.Context, run types.RunRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (family, n_max, started_at) VALUES (?, ?, ?)`,
		run.Family, run.NMax, run.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (run_id, n, outcome, m1, apd, vanishing, expected_m1, expected, verified)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range run.Records {
		_, err := stmt.ExecContext(ctx,
			runID, row.N, string(row.Outcome), row.M1, row.APD,
			row.VanishingInterval, row.ExpectedM1, row.Expected, boolToInt(row.Verified),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting record n=%d: %w", row.N, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// QueryOptions filters run listings.
type QueryOptions struct {
	// Family restricts results to one family identifier when nonempty.
	Family string

	// MaxResults caps the listing; 0 uses the store default.
	MaxResults int
}

// ListRuns returns stored runs, newest first, without their per-n records.
func (s *Store) ListRuns(ctx context.Context, opts QueryOptions) ([]types.RunRecord, error) {
	limit := opts.MaxResults
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT id, family, n_max, started_at FROM runs`
	var args []any
	if opts.Family != "" {
		query += ` WHERE family = ?`
		args = append(args, opts.Family)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var run types.RunRecord
		var started string
		if err := rows.Scan(&run.ID, &run.Family, &run.NMax, &started); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one run with its records in ascending n.
func (s *Store) GetRun(ctx context.Context, id int64) (types.RunRecord, error) {
	var run types.RunRecord
	var started string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, family, n_max, started_at FROM runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.Family, &run.NMax, &started)
	if err == sql.ErrNoRows {
		return run, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return run, fmt.Errorf("querying run: %w", err)
	}
	run.StartedAt, _ = time.Parse(time.RFC3339Nano, started)

	rows, err := s.db.QueryContext(ctx,
		`SELECT n, outcome, m1, apd, vanishing, expected_m1, expected, verified
		 FROM records WHERE run_id = ? ORDER BY n`, id)
	if err != nil {
		return run, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row types.RecordRow
		var outcome string
		var verified int
		if err := rows.Scan(&row.N, &outcome, &row.M1, &row.APD,
			&row.VanishingInterval, &row.ExpectedM1, &row.Expected, &verified); err != nil {
			return run, fmt.Errorf("scanning record: %w", err)
		}
		row.Outcome = types.RunOutcome(outcome)
		row.Verified = verified != 0
		run.Records = append(run.Records, row)
	}
	return run, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
