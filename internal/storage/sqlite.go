// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dodgey/internal/core"
)

// Store manages the SQLite database connection for run persistence.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Run is one finished session.
type Run struct {
	ID        int64
	Score     int
	Ticks     int    // Ticks simulated after leaving the menu
	Destroyed int    // Obstacles destroyed by projectiles
	Shots     int    // Projectiles fired
	Seed      int64  // RNG seed, replays the obstacle field
	Host      string // "play", "window", "sim" or "ssh"
	Player    string // SSH user or local login name
	CreatedAt time.Time
}

// NewRun builds a run record from a finished session summary.
func NewRun(st core.GameState, seed int64, host, player string) Run {
	return Run{
		Score:     st.Score,
		Ticks:     st.Tick,
		Destroyed: st.Destroyed,
		Shots:     st.Shots,
		Seed:      seed,
		Host:      host,
		Player:    player,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SSH sessions save concurrently; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			destroyed INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			host TEXT NOT NULL DEFAULT '',
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (score, ticks, destroyed, shots, seed, host, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Score, r.Ticks, r.Destroyed, r.Shots, r.Seed, r.Host, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, score, ticks, destroyed, shots, seed, host, player, created_at`

// TopRuns retrieves the best N runs, highest score first.
// Ties go to the run that survived fewer ticks.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY score DESC, ticks ASC, id ASC LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the last N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// PlayerRuns retrieves the best N runs of one player.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE player = ? ORDER BY score DESC, id ASC LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Ticks, &r.Destroyed, &r.Shots, &r.Seed, &r.Host, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score recorded.
// Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs           int
	HighScore      int
	AvgScore       float64
	TotalDestroyed int64
	TotalShots     int64
	LongestTicks   int
	LastPlayed     time.Time
}

// Accuracy returns destroyed obstacles per shot fired, 0 without shots.
func (st Stats) Accuracy() float64 {
	if st.TotalShots == 0 {
		return 0
	}
	return float64(st.TotalDestroyed) / float64(st.TotalShots)
}

// Stats retrieves aggregated statistics.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(destroyed), 0), COALESCE(SUM(shots), 0), COALESCE(MAX(ticks), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalDestroyed, &stats.TotalShots, &stats.LongestTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
