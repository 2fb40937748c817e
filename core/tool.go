package core

// Category identifies the single tool (if any) selected for a request.
// The zero value is CategoryNone.
type Category int

const (
	// CategoryNone means no tool applies to the message.
	CategoryNone Category = iota
	// CategoryCalculator evaluates a simple arithmetic expression.
	CategoryCalculator
	// CategoryWeather returns the mocked weather payload.
	CategoryWeather
	// CategoryTime returns the current wall clock time.
	CategoryTime
)

// String returns the wire name of the category ("none", "calculator", ...).
func (c Category) String() string {
	switch c {
	case CategoryCalculator:
		return "calculator"
	case CategoryWeather:
		return "weather"
	case CategoryTime:
		return "time"
	default:
		return "none"
	}
}

// ToolResult is the tagged outcome of a tool invocation: either a data payload
// or a failure reason, never both. Tools are total functions - they always
// return a ToolResult and report failures through Fail rather than Go errors,
// so the composer has a single channel to inspect.
type ToolResult struct {
	Data map[string]any `json:"data,omitempty"`
	Err  string         `json:"error,omitempty"`
}

// Ok wraps a successful payload.
func Ok(data map[string]any) ToolResult { return ToolResult{Data: data} }

// Fail wraps a failure reason.
func Fail(reason string) ToolResult { return ToolResult{Err: reason} }

// Failed reports whether the invocation failed. Callers must check this
// before reading Data; a failed result may carry no payload at all.
func (r ToolResult) Failed() bool { return r.Err != "" }

// Empty reports whether the result carries neither payload nor failure.
func (r ToolResult) Empty() bool { return len(r.Data) == 0 && r.Err == "" }
