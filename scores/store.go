// Package scores keeps the high score table in SQLite.
package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"sharpshots/game"
)

// ErrNotFound is returned when a run id is unknown
var ErrNotFound = errors.New("run not found")

// Store wraps the SQLite connection
type Store struct {
	conn *sql.DB
}

// Row is one finished run
type Row struct {
	ID        string
	Name      string
	Seed      int64
	Score     float64
	Frames    int
	Duration  float64 // ms
	CreatedAt time.Time
}

// Open opens (or creates) the score database at path
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		seed INTEGER NOT NULL DEFAULT 0,
		score REAL NOT NULL DEFAULT 0,
		frames INTEGER NOT NULL DEFAULT 0,
		duration REAL NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`
	if _, err := s.conn.Exec(schema); err != nil {
		log.Printf("scores: migration error: %v", err)
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Save records a finished run and returns its id
func (s *Store) Save(ctx context.Context, r game.Result) (string, error) {
	id := uuid.NewString()
	_, err := s.conn.ExecContext(ctx,
		"INSERT INTO runs (id, name, seed, score, frames, duration, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, r.Name, r.Seed, r.Score, r.Frames, r.Duration, time.Now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	return id, nil
}

// Get returns one run by id
func (s *Store) Get(ctx context.Context, id string) (Row, error) {
	row := s.conn.QueryRowContext(ctx,
		"SELECT id, name, seed, score, frames, duration, created_at FROM runs WHERE id = ?", id)
	r, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Row{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, err
}

// Top returns the best n runs, highest score first
func (s *Store) Top(ctx context.Context, n int) ([]Row, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT id, name, seed, score, frames, duration, created_at FROM runs ORDER BY score DESC, created_at ASC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("top runs: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Best returns the highest score recorded under name, or zero
func (s *Store) Best(ctx context.Context, name string) (float64, error) {
	var best sql.NullFloat64
	err := s.conn.QueryRowContext(ctx, "SELECT MAX(score) FROM runs WHERE name = ?", name).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("best score: %w", err)
	}
	return best.Float64, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(sc scanner) (Row, error) {
	var r Row
	var created int64
	if err := sc.Scan(&r.ID, &r.Name, &r.Seed, &r.Score, &r.Frames, &r.Duration, &created); err != nil {
		return Row{}, err
	}
	r.CreatedAt = time.UnixMilli(created)
	return r, nil
}
