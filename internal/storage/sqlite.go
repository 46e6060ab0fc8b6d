// Package storage provides SQLite-based persistence for finished matches.
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
)

// DefaultPath is where the match history lives unless configured otherwise.
const DefaultPath = "~/.triangle/matches.db"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is the stored result of one finished match.
type MatchRecord struct {
	ID        int64
	Mode      string // e.g. "hvh", "random", "ai", "aivai"
	Width     int
	Player1   string
	Player2   string
	Score1    int
	Score2    int
	Winner    string // Empty for a draw
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Draw reports whether the match ended level.
func (m MatchRecord) Draw() bool { return m.Winner == "" }

// ScoreEntry is one player's score in a stored match.
type ScoreEntry struct {
	Player    string
	Score     int
	Width     int
	Mode      string
	CreatedAt time.Time
}

// PlayerRecord aggregates the results of every match a player took part in.
type PlayerRecord struct {
	Name   string
	Wins   int
	Losses int
	Draws  int
}

// Played returns the number of matches in the record.
func (r PlayerRecord) Played() int { return r.Wins + r.Losses + r.Draws }

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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			width INTEGER NOT NULL,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner TEXT,
			moves INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_width ON matches(width);
		CREATE INDEX IF NOT EXISTS idx_matches_player1 ON matches(player1);
		CREATE INDEX IF NOT EXISTS idx_matches_player2 ON matches(player2);
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

// SaveMatch records a finished match and returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	if m.Winner != "" && m.Winner != m.Player1 && m.Winner != m.Player2 {
		return 0, fmt.Errorf("storage: winner %q is not a player of the match", m.Winner)
	}

	var winner sql.NullString
	if m.Winner != "" {
		winner = sql.NullString{String: m.Winner, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (mode, width, player1, player2, score1, score2, winner, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Mode, m.Width, m.Player1, m.Player2, m.Score1, m.Score2,
		winner, m.Moves, m.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, width, player1, player2, score1, score2,
		        winner, moves, duration_ms, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var m MatchRecord
		var winner sql.NullString
		var durationMS int64
		var createdAt any

		if err := rows.Scan(
			&m.ID, &m.Mode, &m.Width, &m.Player1, &m.Player2, &m.Score1, &m.Score2,
			&winner, &m.Moves, &durationMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		m.Winner = winner.String
		m.Duration = time.Duration(durationMS) * time.Millisecond
		m.CreatedAt = parseTime(createdAt)
		records = append(records, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScores retrieves the highest individual scores reached on boards of
// the given width. A width of 0 covers every board size.
func (s *Store) BestScores(width, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT player, score, width, mode, created_at FROM (
		     SELECT id, player1 AS player, score1 AS score, width, mode, created_at FROM matches
		     UNION ALL
		     SELECT id, player2 AS player, score2 AS score, width, mode, created_at FROM matches
		 )
		 WHERE ? = 0 OR width = ?
		 ORDER BY score DESC, created_at ASC, id ASC
		 LIMIT ?`,
		width, width, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.Player, &e.Score, &e.Width, &e.Mode, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// PlayerRecord counts the wins, losses and draws of the named player.
// An unknown player has an empty record.
func (s *Store) PlayerRecord(name string) (PlayerRecord, error) {
	rec := PlayerRecord{Name: name}

	err := s.db.QueryRow(
		`SELECT
		     COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		     COALESCE(SUM(CASE WHEN winner IS NOT NULL AND winner != ? THEN 1 ELSE 0 END), 0),
		     COALESCE(SUM(CASE WHEN winner IS NULL THEN 1 ELSE 0 END), 0)
		 FROM matches
		 WHERE player1 = ? OR player2 = ?`,
		name, name, name, name,
	).Scan(&rec.Wins, &rec.Losses, &rec.Draws)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf("storage: cannot query player record: %w", err)
	}

	return rec, nil
}

// ClearMatches deletes the whole match history.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTime handles both the time.Time and the string form the driver may
// return for DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
