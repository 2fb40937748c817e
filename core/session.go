package core

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a new globally unique identifier (UUID v4 string).
func NewID() string { return uuid.NewString() }

// Turn is one user message paired with the agent reply produced for it.
// Turns are immutable after creation and ordered by arrival within a session.
type Turn struct {
	User      string    `json:"user"`
	Agent     string    `json:"agent"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is a server retained conversation identified by an opaque token.
// It owns an ordered turn history; there is no explicit destruction, sessions
// live for the lifetime of the backing store.
type Session struct {
	ID      string    `json:"id"`
	Turns   []Turn    `json:"turns"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// NewSession creates an empty session with the given ID.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{ID: id, Turns: []Turn{}, Created: now, Updated: now}
}

// SessionStore persists sessions and their ordered turn history.
//
// Contract:
//   - Create never returns an identifier that collides with an existing one
//   - Ensure resolves an absent or unknown identifier by creating a fresh
//     session; a known identifier is returned unchanged
//   - AppendTurn lazily creates a missing session instead of failing so the
//     orchestrator never blocks on store state
//   - History returns turns in append order, an empty slice for unknown ids
//   - RecentContext renders the last n turns as alternating user/agent lines
//     in chronological order, the empty string when there is no history
//
// Implementations must be safe for concurrent use; per-session append order
// must be preserved relative to calls on the same session.
type SessionStore interface {
	Create() (string, error)
	Exists(sessionID string) bool
	Ensure(sessionID string) (string, error)
	AppendTurn(sessionID, userMessage, agentReply string) error
	History(sessionID string) ([]Turn, error)
	RecentContext(sessionID string, n int) (string, error)
}
