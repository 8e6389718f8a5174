// Package storage keeps the leaderboard of finished runs in an in-memory
// SQLite database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk: the board lives as long as the
// process that opened it.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a private in-memory database. A single connection keeps
// every query on the same database.
const memoryDSN = "file::memory:"

// DefaultLimit is used by TopRuns when the caller passes a non-positive limit.
const DefaultLimit = 10

// Store manages the SQLite connection holding the leaderboard.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is a single finished round.
type Run struct {
	ID         string
	Player     string
	Score      int
	Ticks      int
	FinishedAt time.Time
}

// Stats summarises every run recorded so far.
type Stats struct {
	Runs       int
	Players    int
	Best       int
	Average    float64
	TotalTicks int
}

// Open creates a fresh in-memory leaderboard and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

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
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, finished_at);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The leaderboard is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished round and returns its generated ID.
func (s *Store) SaveRun(player string, score, ticks int) (string, error) {
	if player == "" {
		player = "anonymous"
	}
	if score < 0 || ticks < 0 {
		return "", fmt.Errorf("storage: invalid run: score=%d ticks=%d", score, ticks)
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO runs (id, player, score, ticks, finished_at) VALUES (?, ?, ?, ?, ?)",
		id, player, score, ticks, s.now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best runs, highest score first. Ties go to the
// earlier run.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, ticks, finished_at
		 FROM runs
		 ORDER BY score DESC, finished_at ASC, rowid ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished int64
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Ticks, &finished); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.FinishedAt = time.Unix(0, finished)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestFor returns the highest score recorded for player.
// Returns 0 if the player has no runs.
func (s *Store) BestFor(player string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE player = ?",
		player,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats aggregates every recorded run.
func (s *Store) Stats() (Stats, error) {
	var (
		st    Stats
		best  sql.NullInt64
		avg   sql.NullFloat64
		ticks sql.NullInt64
	)

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), MAX(score), AVG(score), SUM(ticks)
		 FROM runs`,
	).Scan(&st.Runs, &st.Players, &best, &avg, &ticks)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.Best = int(best.Int64)
	st.Average = avg.Float64
	st.TotalTicks = int(ticks.Int64)
	return st, nil
}
