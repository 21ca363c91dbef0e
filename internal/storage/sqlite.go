// Package storage provides SQLite-based persistence for scores and
// saved games. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Saved games store the board engine's textual state
// encoding, so resuming goes through the same decoder as any other
// state load.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished-game record.
type ScoreEntry struct {
	ID        int64
	Score     int
	MaxTile   int
	BoardSize int
	CreatedAt time.Time
}

// SavedGame represents a suspended game, keyed by name.
type SavedGame struct {
	Name      string
	State     string // Board state encoding, see the board package
	BoardSize int
	Score     int
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			board_size INTEGER NOT NULL DEFAULT 4,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS saves (
			name TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			board_size INTEGER NOT NULL DEFAULT 4,
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveScore records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(score, maxTile, boardSize int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (score, max_tile, board_size) VALUES (?, ?, ?)",
		score, maxTile, boardSize,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, max_tile, board_size, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.MaxTile, &e.BoardSize, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all recorded scores.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveGame stores a suspended game under the given name, replacing any
// existing save with that name.
func (s *Store) SaveGame(name, state string, boardSize, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (name, state, board_size, score, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
			state = excluded.state,
			board_size = excluded.board_size,
			score = excluded.score,
			updated_at = CURRENT_TIMESTAMP`,
		name, state, boardSize, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %q: %w", name, err)
	}
	return nil
}

// LoadGame retrieves a saved game by name.
// Returns nil without error when no save exists under the name.
func (s *Store) LoadGame(name string) (*SavedGame, error) {
	var save SavedGame
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT name, state, board_size, score, updated_at
		 FROM saves
		 WHERE name = ?`,
		name,
	).Scan(&save.Name, &save.State, &save.BoardSize, &save.Score, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game %q: %w", name, err)
	}

	save.UpdatedAt = parseTimestamp(updatedAt)
	return &save, nil
}

// ListSaves retrieves all saved games, most recently updated first.
func (s *Store) ListSaves() ([]SavedGame, error) {
	rows, err := s.db.Query(
		`SELECT name, state, board_size, score, updated_at
		 FROM saves
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var saves []SavedGame
	for rows.Next() {
		var save SavedGame
		var updatedAt any
		if err := rows.Scan(&save.Name, &save.State, &save.BoardSize, &save.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		save.UpdatedAt = parseTimestamp(updatedAt)
		saves = append(saves, save)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return saves, nil
}

// DeleteSave removes a saved game by name.
func (s *Store) DeleteSave(name string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete save %q: %w", name, err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a
// SQLite datetime string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
