// Package storage provides the session run ledger: every finished run is
// recorded in an in-memory SQLite database that lives as long as the process.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN names a private in-memory database. Every connection to
// ":memory:" sees its own database, so the pool is pinned to one connection.
const memoryDSN = ":memory:"

// Store manages the ledger database connection.
type Store struct {
	db *sql.DB
}

// Run represents a single finished run.
type Run struct {
	ID         string // UUID assigned on insert
	Edition    string
	FinalScore int
	Multiplier int
	Cause      string // "floor" or "collision"
	Frames     int    // Run length in ticks
	CreatedAt  time.Time
}

// Stats contains aggregated statistics for one edition.
type Stats struct {
	Edition     string
	Runs        int
	Best        int
	AvgScore    float64
	TotalFrames int64
	LastPlayed  time.Time
}

// Open creates an empty in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			edition TEXT NOT NULL,
			final_score INTEGER NOT NULL,
			multiplier INTEGER NOT NULL DEFAULT 1,
			cause TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_edition ON runs(edition);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(edition, final_score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The ledger is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun inserts a finished run. ID and CreatedAt are filled in when
// empty. Returns the stored record.
func (s *Store) RecordRun(r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.Multiplier == 0 {
		r.Multiplier = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, edition, final_score, multiplier, cause, frames, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Edition, r.FinalScore, r.Multiplier, r.Cause, r.Frames, r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot record run: %w", err)
	}

	return r, nil
}

// TopRuns retrieves the best N runs of an edition, or of all editions when
// edition is empty. Ties go to the earlier run.
func (s *Store) TopRuns(edition string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, edition, final_score, multiplier, cause, frames, created_at
		 FROM runs
		 WHERE ? = '' OR edition = ?
		 ORDER BY final_score DESC, created_at ASC
		 LIMIT ?`,
		edition, edition, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Edition, &r.FinalScore, &r.Multiplier, &r.Cause, &r.Frames, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.UnixMilli(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Best returns the highest final score for the given edition.
// Returns 0 if no runs exist.
func (s *Store) Best(edition string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(final_score) FROM runs WHERE edition = ?",
		edition,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for one edition.
func (s *Store) Stats(edition string) (Stats, error) {
	stats := Stats{Edition: edition}

	var lastPlayed sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(final_score), 0), COALESCE(AVG(final_score), 0),
		        COALESCE(SUM(frames), 0), MAX(created_at)
		 FROM runs WHERE edition = ?`,
		edition,
	).Scan(&stats.Runs, &stats.Best, &stats.AvgScore, &stats.TotalFrames, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get edition stats: %w", err)
	}
	if lastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}

	return stats, nil
}

// AllStats retrieves statistics for every edition that has been played.
func (s *Store) AllStats() (map[string]Stats, error) {
	rows, err := s.db.Query(
		`SELECT edition, COUNT(*), MAX(final_score), AVG(final_score), SUM(frames), MAX(created_at)
		 FROM runs
		 GROUP BY edition`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all edition stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed int64
		if err := rows.Scan(&st.Edition, &st.Runs, &st.Best, &st.AvgScore, &st.TotalFrames, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = time.UnixMilli(lastPlayed)
		all[st.Edition] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// Clear deletes every recorded run.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
