// Package orchestrator sequences the agent request pipeline: resolve the
// session, search the knowledge index, classify the message into at most one
// tool and execute it, compose the reply by fixed precedence, persist the
// turn. Handle is a total function - every string input, however malformed,
// yields a well-formed AgentResponse; failures surface inside the response,
// never as a Go error or panic.
//
// Reply precedence, evaluated in this exact order:
//  1. selected tool failed        -> apology plus the failure reason
//  2. selected tool succeeded     -> category specific template
//  3. knowledge facts found       -> first fact (plus "추가 정보" second fact)
//  4. otherwise                   -> greeting / help / echo fallback
package orchestrator
