// Package tool implements the intent router and the deterministic mock tools
// (calculator, weather, time) an agent can invoke at most once per request.
//
// Classification is a cheap, ordered keyword/pattern scan - not a model call -
// and must stay side-effect free. Execution is dispatched through a category
// keyed handler table so the router/executor pairing stays exhaustive: adding
// a category without registering a handler is caught by the executor tests.
//
// Every tool is total: it always returns a core.ToolResult and signals
// failure through the result's error channel, never through a Go error or a
// panic, whatever the input string looks like.
package tool
