package session

import (
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/agentsim/core"
)

// Options configures the in-memory store.
type Options struct {
	// MaxTurns bounds the retained turn history per session. Zero keeps the
	// history unbounded, which matches the original process-lifetime retention
	// but grows without limit under sustained traffic; set a cap for long
	// running deployments.
	MaxTurns int
}

// InMemoryStore is a volatile SessionStore implementation keeping sessions in
// a process local map. It is safe for concurrent access and best suited for
// tests or ephemeral demo servers - history is lost on process restart.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
	maxTurns int
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore(optFns ...func(o *Options)) *InMemoryStore {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &InMemoryStore{sessions: make(map[string]*core.Session), maxTurns: opts.MaxTurns}
}

// WithMaxTurns bounds per-session history retention to n turns.
func WithMaxTurns(n int) func(o *Options) {
	return func(o *Options) { o.MaxTurns = n }
}

// Create registers a fresh session under a newly generated identifier and
// returns the identifier. Collisions are practically impossible with 128-bit
// random ids.
func (s *InMemoryStore) Create() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := core.NewID()
	s.sessions[id] = core.NewSession(id)
	return id, nil
}

// Exists reports whether the identifier names a known session.
func (s *InMemoryStore) Exists(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[sessionID]
	return ok
}

// Ensure resolves an optional session identifier: an empty or unknown id
// yields a freshly created session, a known id is returned unchanged.
func (s *InMemoryStore) Ensure(sessionID string) (string, error) {
	if sessionID != "" && s.Exists(sessionID) {
		return sessionID, nil
	}
	return s.Create()
}

// AppendTurn appends a turn with a capture-time timestamp to the session's
// history. A missing session is created on the fly rather than failing, so
// callers never block on store state.
func (s *InMemoryStore) AppendTurn(sessionID, userMessage, agentReply string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = core.NewSession(sessionID)
		s.sessions[sessionID] = sess
	}
	sess.Turns = append(sess.Turns, core.Turn{User: userMessage, Agent: agentReply, Timestamp: time.Now()})
	if s.maxTurns > 0 && len(sess.Turns) > s.maxTurns {
		sess.Turns = sess.Turns[len(sess.Turns)-s.maxTurns:]
	}
	sess.Updated = time.Now()
	return nil
}

// History returns a defensive copy of the session's turn sequence in append
// order, or an empty slice for an unknown identifier.
func (s *InMemoryStore) History(sessionID string) ([]core.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return []core.Turn{}, nil
	}
	turns := make([]core.Turn, len(sess.Turns))
	copy(turns, sess.Turns)
	return turns, nil
}

// RecentContext renders the last n turns (or all, if fewer) as alternating
// user/agent lines in chronological order. Empty history yields the empty
// string.
func (s *InMemoryStore) RecentContext(sessionID string, n int) (string, error) {
	turns, err := s.History(sessionID)
	if err != nil {
		return "", err
	}
	return RenderContext(turns, n), nil
}

// RenderContext formats the last n turns the way the orchestrator feeds
// conversational context: "사용자:" / "에이전트:" line pairs separated by a
// blank line. Shared by every SessionStore implementation.
func RenderContext(turns []core.Turn, n int) string {
	if len(turns) == 0 {
		return ""
	}
	start := 0
	if n > 0 && len(turns) > n {
		start = len(turns) - n
	}
	var b strings.Builder
	for _, turn := range turns[start:] {
		b.WriteString("사용자: ")
		b.WriteString(turn.User)
		b.WriteString("\n에이전트: ")
		b.WriteString(turn.Agent)
		b.WriteString("\n\n")
	}
	return b.String()
}
