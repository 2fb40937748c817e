package core

// AgentResponse is the orchestration output for a single request. It is
// constructed fresh per request and never persisted as a whole - only the
// reply text survives inside a session turn.
//
// Metadata keys the caller may rely on: "toolUsed" (string or nil),
// "knowledgeFound" (bool), "timestamp" (string) and "platform" (constant per
// deployment profile).
type AgentResponse struct {
	Reply     string         `json:"response"`
	SessionID string         `json:"sessionId"`
	Citations []string       `json:"citations"`
	Metadata  map[string]any `json:"metadata"`
	ToolUsed  string         `json:"toolUsed,omitempty"`
}

// KnowledgeIndex is a read-only keyword to fact lookup simulating retrieval
// augmented context. Search returns the facts whose keyword occurs in the
// lowercased query, Citations the matching "Knowledge Base: <keyword>" labels;
// both iterate the underlying table in insertion order.
type KnowledgeIndex interface {
	Search(query string) []string
	Citations(query string) []string
}
