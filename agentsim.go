// Package agentsim provides a high-level façade over the orchestrator and
// service abstractions (sessions, knowledge, tools & logging) for building
// deterministic mock agent backends. Most applications interact with this
// package by:
//  1. Creating an AgentSim via New() (optionally overriding the profile or
//     the default in-memory services)
//  2. Calling Handle() per inbound user message
//
// The façade delegates pipeline sequencing to orchestrator.Orchestrator while
// keeping setup ergonomics concise. All defaults are safe for local
// development and testing; production-style deployments typically supply the
// sqlite session store and a structured logger.
package agentsim

import (
	"context"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
	"github.com/hupe1980/agentsim/orchestrator"
	"github.com/hupe1980/agentsim/profile"
)

// Options configures the AgentSim instance.
type Options struct {
	// Profile selects the deployment content (defaults to the AWS profile).
	Profile *profile.Profile
	// SessionStore overrides the in-memory session store.
	SessionStore core.SessionStore
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// AgentSim is the high-level façade aggregating the orchestrator and its
// services.
type AgentSim struct {
	orch *orchestrator.Orchestrator
}

// New creates a new AgentSim instance with optional overrides. Any unset
// service defaults to an in-memory implementation.
func New(optFns ...func(o *Options)) *AgentSim {
	opts := Options{
		Profile: profile.AWS(),
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	orchOpts := []func(o *orchestrator.Options){
		orchestrator.WithProfile(opts.Profile),
		orchestrator.WithLogger(opts.Logger),
	}
	if opts.SessionStore != nil {
		orchOpts = append(orchOpts, orchestrator.WithSessionStore(opts.SessionStore))
	}

	return &AgentSim{orch: orchestrator.New(orchOpts...)}
}

// WithProfile selects the deployment profile.
func WithProfile(p *profile.Profile) func(o *Options) {
	return func(o *Options) { o.Profile = p }
}

// WithSessionStore injects a session store implementation.
func WithSessionStore(s core.SessionStore) func(o *Options) {
	return func(o *Options) { o.SessionStore = s }
}

// WithLogger injects a structured logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Handle processes one user message, resolving or creating the session, and
// returns the composed AgentResponse. It never returns an error: failures are
// absorbed into the reply precedence.
func (a *AgentSim) Handle(ctx context.Context, message, sessionID string) core.AgentResponse {
	return a.orch.Handle(ctx, message, sessionID)
}

// History returns the ordered turn history of a session (empty for unknown
// identifiers).
func (a *AgentSim) History(sessionID string) ([]core.Turn, error) {
	return a.orch.Sessions().History(sessionID)
}

// RecentContext renders the last n turns as alternating user/agent lines.
func (a *AgentSim) RecentContext(sessionID string, n int) (string, error) {
	return a.orch.Sessions().RecentContext(sessionID, n)
}

// Orchestrator exposes the underlying orchestrator for transport wiring.
func (a *AgentSim) Orchestrator() *orchestrator.Orchestrator { return a.orch }
