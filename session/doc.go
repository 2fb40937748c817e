// Package session houses concrete implementations of the core.SessionStore.
// The interface itself (and the Session/Turn types) live in the core package
// to centralize domain contracts. Keeping only implementations here prevents
// higher level packages (orchestrator, server) from depending on concrete
// storage.
//
// The in-memory store below is the default; the sqlite sub-package provides a
// persistent backend behind the same contract. Add additional backends
// (Redis, Postgres, Firestore, etc.) in sub-packages without changing any
// calling code - only the wiring layer needs to decide which implementation
// to instantiate.
package session
