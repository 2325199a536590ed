package data

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/afrinode-dev/userbot/internal/biz/domain"

	_ "modernc.org/sqlite"
)

const gateKey = "forwarding_enabled"

// StateStore keeps the small cross-restart state: the forwarding gate
// and the dead-letter log. It implements repo.GateStore and
// repo.DeadLetterRepo.
type StateStore struct {
	db *sql.DB
}

// NewStateStore opens (and if needed creates) the sqlite state store.
func NewStateStore(dbPath string) (*StateStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create settings table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS dead_letters (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			message_id INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create dead_letters table: %w", err)
	}

	return &StateStore{db: db}, nil
}

// Close closes the underlying database.
func (s *StateStore) Close() error {
	return s.db.Close()
}

// LoadGate returns the stored gate state; found is false when the gate
// was never persisted.
func (s *StateStore) LoadGate(ctx context.Context) (enabled, found bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, gateKey)
	var value string
	if err := row.Scan(&value); err == sql.ErrNoRows {
		return false, false, nil
	} else if err != nil {
		return false, false, fmt.Errorf("failed to query gate state: %w", err)
	}
	return value == "true", true, nil
}

// SaveGate stores the gate state.
func (s *StateStore) SaveGate(ctx context.Context, enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)
	`, gateKey, value)
	if err != nil {
		return fmt.Errorf("failed to save gate state: %w", err)
	}
	return nil
}

// Record appends one dead letter.
func (s *StateStore) Record(ctx context.Context, dl *domain.DeadLetter) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO dead_letters (id, source, message_id, reason, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, dl.ID, dl.Source, dl.MessageID, dl.Reason, dl.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to record dead letter: %w", err)
	}
	return nil
}

// Count returns the total number of stored dead letters.
func (s *StateStore) Count(ctx context.Context) (int64, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dead_letters`)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count dead letters: %w", err)
	}
	return n, nil
}

// List returns the most recent dead letters, newest first.
func (s *StateStore) List(ctx context.Context, limit int) ([]domain.DeadLetter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, message_id, reason, created_at
		FROM dead_letters
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query dead letters: %w", err)
	}
	defer rows.Close()

	var out []domain.DeadLetter
	for rows.Next() {
		var dl domain.DeadLetter
		var createdAt int64
		if err := rows.Scan(&dl.ID, &dl.Source, &dl.MessageID, &dl.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan dead letter: %w", err)
		}
		dl.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, dl)
	}
	return out, rows.Err()
}
