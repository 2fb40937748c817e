package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/knowledge"
	"github.com/hupe1980/agentsim/logging"
	"github.com/hupe1980/agentsim/profile"
	"github.com/hupe1980/agentsim/session"
	"github.com/hupe1980/agentsim/tool"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Profile selects the deployment content (platform tag, templates,
	// knowledge table, weather payload). Defaults to the AWS profile.
	Profile *profile.Profile
	// SessionStore persists conversation history. Defaults to in-memory.
	SessionStore core.SessionStore
	// Knowledge overrides the index built from the profile's table.
	Knowledge core.KnowledgeIndex
	// Executor overrides the tool executor built from the profile's payloads.
	Executor *tool.Executor
	// Logger receives structured request/tool logging. Defaults to NoOp.
	Logger logging.Logger
	// Now supplies the metadata timestamp clock; override in tests.
	Now func() time.Time
}

// Orchestrator is the single entry point of the agent pipeline. Its methods
// are safe for concurrent use; the session store is the only shared mutable
// state and synchronizes itself.
type Orchestrator struct {
	profile   *profile.Profile
	sessions  core.SessionStore
	knowledge core.KnowledgeIndex
	executor  *tool.Executor
	logger    logging.Logger
	now       func() time.Time
}

// New constructs an Orchestrator with optional overrides. Any unset service
// defaults to an in-memory implementation derived from the profile.
func New(optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		Profile: profile.AWS(),
		Logger:  logging.NoOpLogger{},
		Now:     time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.SessionStore == nil {
		opts.SessionStore = session.NewInMemoryStore()
	}
	if opts.Knowledge == nil {
		opts.Knowledge = knowledge.NewIndex(opts.Profile.Knowledge)
	}
	if opts.Executor == nil {
		opts.Executor = tool.NewExecutor(
			tool.WithWeather(opts.Profile.Weather),
			tool.WithTimezone(opts.Profile.Timezone),
		)
	}
	return &Orchestrator{
		profile:   opts.Profile,
		sessions:  opts.SessionStore,
		knowledge: opts.Knowledge,
		executor:  opts.Executor,
		logger:    opts.Logger,
		now:       opts.Now,
	}
}

// WithProfile selects the deployment profile.
func WithProfile(p *profile.Profile) func(o *Options) {
	return func(o *Options) { o.Profile = p }
}

// WithSessionStore injects a session store implementation.
func WithSessionStore(s core.SessionStore) func(o *Options) {
	return func(o *Options) { o.SessionStore = s }
}

// WithKnowledge injects a knowledge index implementation.
func WithKnowledge(k core.KnowledgeIndex) func(o *Options) {
	return func(o *Options) { o.Knowledge = k }
}

// WithExecutor injects a tool executor.
func WithExecutor(e *tool.Executor) func(o *Options) {
	return func(o *Options) { o.Executor = e }
}

// WithLogger injects a structured logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Sessions exposes the underlying session store to the transport layer for
// history reads.
func (o *Orchestrator) Sessions() core.SessionStore { return o.sessions }

// Profile exposes the active deployment profile.
func (o *Orchestrator) Profile() *profile.Profile { return o.profile }

// Handle processes one user message. A missing or unknown session identifier
// resolves to a freshly created session. The context is accepted for
// interface symmetry with blocking transports; no step of the pipeline
// performs I/O that would observe cancellation.
func (o *Orchestrator) Handle(ctx context.Context, message, sessionID string) core.AgentResponse {
	o.logger.Debug("agent request received", "session_id", sessionID, "message_len", len(message))

	id, err := o.sessions.Ensure(sessionID)
	if err != nil {
		// Keep the pipeline total: fall back to a detached id; AppendTurn
		// creates the session lazily on the persist step.
		id = core.NewID()
		o.logger.Error("session ensure failed", "error", err, "session_id", id)
	}
	if id != sessionID {
		o.logger.Info("new session created", "session_id", id)
	}

	facts := o.knowledge.Search(message)
	citations := o.knowledge.Citations(message)

	category := tool.Classify(message)
	var result core.ToolResult
	toolUsed := ""
	if category != core.CategoryNone {
		toolUsed = category.String()
		start := time.Now()
		result = o.executor.Execute(category, message)
		logging.LogToolCall(o.logger, toolUsed, time.Since(start), !result.Failed(), result.Err)
	}

	reply := o.compose(message, facts, result, category)

	if err := o.sessions.AppendTurn(id, message, reply); err != nil {
		o.logger.Error("turn persist failed", "error", err, "session_id", id)
	}

	metadata := map[string]any{
		"knowledgeFound": len(facts) > 0,
		"timestamp":      o.now().Format(time.RFC3339),
		"platform":       o.profile.Platform,
	}
	if toolUsed != "" {
		metadata["toolUsed"] = toolUsed
	} else {
		metadata["toolUsed"] = nil
	}

	o.logger.Info("agent request completed", "session_id", id, "tool", toolUsed, "knowledge_found", len(facts) > 0)

	return core.AgentResponse{
		Reply:     reply,
		SessionID: id,
		Citations: citations,
		Metadata:  metadata,
		ToolUsed:  toolUsed,
	}
}

// compose applies the reply precedence. A failed tool result outranks
// everything - including the "tool succeeded" branch - so an error-only
// result can never be mistaken for a success payload.
func (o *Orchestrator) compose(message string, facts []string, result core.ToolResult, category core.Category) string {
	if category != core.CategoryNone && !result.Empty() {
		if result.Failed() {
			return "죄송합니다. " + result.Err
		}
		switch category {
		case core.CategoryCalculator:
			return fmt.Sprintf("계산 결과: %v = %v", result.Data["expression"], result.Data["result"])
		case core.CategoryWeather:
			reply := fmt.Sprintf("현재 %v의 날씨는 %v, %v입니다.",
				result.Data["location"], result.Data["temperature"], result.Data["condition"])
			if humidity, ok := result.Data["humidity"]; ok {
				reply += fmt.Sprintf(" (습도: %v)", humidity)
			}
			return reply
		case core.CategoryTime:
			return fmt.Sprintf("현재 시간은 %v (%v) 입니다.",
				result.Data["currentTime"], result.Data["timezone"])
		}
	}

	if len(facts) > 0 {
		reply := facts[0]
		if len(facts) > 1 {
			reply += "\n\n추가 정보: " + facts[1]
		}
		return reply
	}

	lower := strings.ToLower(message)
	if strings.Contains(lower, "안녕") || strings.Contains(lower, "hello") {
		return o.profile.Greeting
	}
	if strings.Contains(lower, "도움") || strings.Contains(lower, "help") {
		return o.profile.Help
	}
	return o.profile.FallbackReply(message)
}
