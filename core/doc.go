// Package core centralizes the domain contracts of agentsim: the session and
// turn types, the SessionStore and KnowledgeIndex interfaces, the tool
// category enumeration, the tagged ToolResult type and the AgentResponse
// envelope returned by the orchestrator.
//
// Keeping contracts here and implementations in sibling packages (session,
// knowledge, tool) prevents higher level packages from depending on concrete
// storage or executors and avoids dependency cycles - only the wiring layer
// decides which implementation to instantiate.
package core
