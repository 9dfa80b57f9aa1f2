package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mrjones-game/life-server/internal/domain/player"
	"github.com/mrjones-game/life-server/internal/events"
)

// OpenSQLite opens (creating if needed) the local SQLite database and
// bootstraps the schemas for player state and the action journal.
func OpenSQLite(dbPath string) (*sqlx.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := createSchemas(db); err != nil {
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}

	return db, nil
}

func createSchemas(db *sqlx.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS players (
			username TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS journal (
			id TEXT PRIMARY KEY,
			entry_type TEXT NOT NULL,
			username TEXT NOT NULL,
			turn INTEGER NOT NULL,
			location TEXT,
			action TEXT,
			success BOOLEAN NOT NULL,
			message TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_username ON journal(username);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_turn ON journal(turn);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// SQLiteStore persists player state as a JSON blob per username.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a player store over an open database.
func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load retrieves and decodes a player's state.
func (s *SQLiteStore) Load(ctx context.Context, username string) (*player.State, error) {
	var blob string
	err := s.db.GetContext(ctx, &blob,
		`SELECT state FROM players WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player %s: %w", username, err)
	}

	var state player.State
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, fmt.Errorf("failed to decode state for %s: %w", username, err)
	}
	// Derived fields never trust the blob.
	state.RecomputeLook()
	return &state, nil
}

// Save upserts a player's state.
func (s *SQLiteStore) Save(ctx context.Context, username string, state *player.State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state for %s: %w", username, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO players (username, state, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		username, string(blob), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save player %s: %w", username, err)
	}
	return nil
}

var _ PlayerStore = (*SQLiteStore)(nil)

// SQLiteJournal persists action-journal entries.
type SQLiteJournal struct {
	db *sqlx.DB
}

// NewSQLiteJournal creates a journal persister over an open database.
func NewSQLiteJournal(db *sqlx.DB) *SQLiteJournal {
	return &SQLiteJournal{db: db}
}

// Append inserts one journal entry.
func (j *SQLiteJournal) Append(entry events.Entry) error {
	_, err := j.db.Exec(`
		INSERT INTO journal (id, entry_type, username, turn, location, action, success, message, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, string(entry.Type), entry.Username, entry.Turn,
		entry.Location, entry.Action, entry.Success, entry.Message, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

var _ events.Persister = (*SQLiteJournal)(nil)
