// Package sqlite provides a persistent core.SessionStore backed by SQLite.
// It exists so deployments can survive process restarts without changing any
// calling code; the orchestrator only sees the core.SessionStore contract.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/session"
)

// Store implements core.SessionStore using SQLite. Safe for concurrent use;
// database/sql serializes access to the underlying connection pool and the
// schema keeps per-session turn order via a monotonic rowid.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dsn and runs migrations.
// Use "file:agentsim.db?cache=shared&mode=rwc" for a file backed store or
// ":memory:" for tests.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS turns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			user_message TEXT NOT NULL,
			agent_reply TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id, id)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Create registers a fresh session and returns its identifier.
func (s *Store) Create() (string, error) {
	id := core.NewID()
	if _, err := s.db.Exec(`INSERT INTO sessions (session_id) VALUES (?)`, id); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// Exists reports whether the identifier names a known session.
func (s *Store) Exists(sessionID string) bool {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM sessions WHERE session_id = ?`, sessionID).Scan(&one)
	return err == nil
}

// Ensure resolves an optional session identifier: an empty or unknown id
// yields a freshly created session, a known id is returned unchanged.
func (s *Store) Ensure(sessionID string) (string, error) {
	if sessionID != "" && s.Exists(sessionID) {
		return sessionID, nil
	}
	return s.Create()
}

// AppendTurn appends a turn with a capture-time timestamp, creating the
// session row first if it is missing.
func (s *Store) AppendTurn(sessionID, userMessage, agentReply string) error {
	now := time.Now()
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO sessions (session_id) VALUES (?)`, sessionID); err != nil {
		return fmt.Errorf("failed to ensure session row: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO turns (session_id, user_message, agent_reply, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, userMessage, agentReply, now,
	); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}
	if _, err := s.db.Exec(`UPDATE sessions SET updated_at = ? WHERE session_id = ?`, now, sessionID); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// History returns the session's turns in append order, an empty slice for an
// unknown identifier.
func (s *Store) History(sessionID string) ([]core.Turn, error) {
	rows, err := s.db.Query(
		`SELECT user_message, agent_reply, created_at FROM turns WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	turns := []core.Turn{}
	for rows.Next() {
		var turn core.Turn
		if err := rows.Scan(&turn.User, &turn.Agent, &turn.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}

// RecentContext renders the last n turns as alternating user/agent lines.
func (s *Store) RecentContext(sessionID string, n int) (string, error) {
	turns, err := s.History(sessionID)
	if err != nil {
		return "", err
	}
	return session.RenderContext(turns, n), nil
}
