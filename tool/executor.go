package tool

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/hupe1980/agentsim/core"
)

// calcPattern extracts the first "<integer> <operator> <integer>" occurrence
// from the raw (not lowercased) message.
var calcPattern = regexp.MustCompile(`(\d+)\s*([+\-*/])\s*(\d+)`)

// Handler executes one tool category against the raw user message.
type Handler func(message string) core.ToolResult

// ExecutorOptions configures the deterministic mock payloads.
type ExecutorOptions struct {
	// Weather is the fixed payload returned by the weather tool, independent
	// of the message content.
	Weather map[string]any
	// Timezone is the label attached to time tool results.
	Timezone string
	// Now supplies the wall clock; override in tests for determinism.
	Now func() time.Time
}

// Executor dispatches tool execution through a category keyed handler table.
// It has no mutable state after construction and is safe for concurrent use.
type Executor struct {
	handlers map[core.Category]Handler
}

// NewExecutor constructs an executor with optional payload overrides.
// Defaults mirror the AWS profile (서울, 15°C).
func NewExecutor(optFns ...func(o *ExecutorOptions)) *Executor {
	opts := ExecutorOptions{
		Weather: map[string]any{
			"location":    "서울",
			"temperature": "15°C",
			"condition":   "맑음",
			"humidity":    "65%",
			"note":        "이것은 샘플 데이터입니다",
		},
		Timezone: "Asia/Seoul",
		Now:      time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Executor{handlers: map[core.Category]Handler{
		core.CategoryCalculator: Calculate,
		core.CategoryWeather:    weatherHandler(opts.Weather),
		core.CategoryTime:       timeHandler(opts.Now, opts.Timezone),
	}}
}

// WithWeather overrides the fixed weather payload.
func WithWeather(payload map[string]any) func(o *ExecutorOptions) {
	return func(o *ExecutorOptions) { o.Weather = payload }
}

// WithTimezone overrides the timezone label of time results.
func WithTimezone(tz string) func(o *ExecutorOptions) {
	return func(o *ExecutorOptions) { o.Timezone = tz }
}

// WithClock overrides the wall clock source.
func WithClock(now func() time.Time) func(o *ExecutorOptions) {
	return func(o *ExecutorOptions) { o.Now = now }
}

// Execute runs the handler registered for the category. An unregistered
// category (notably CategoryNone) yields the zero result, which the composer
// treats as "no tool ran".
func (e *Executor) Execute(category core.Category, message string) core.ToolResult {
	if handler, ok := e.handlers[category]; ok {
		return handler(message)
	}
	return core.ToolResult{}
}

// Calculate extracts the first arithmetic expression from the message and
// evaluates it. Failures (no expression, division by zero, parse errors) are
// reported through the result, never as a fault.
func Calculate(message string) core.ToolResult {
	m := calcPattern.FindStringSubmatch(message)
	if m == nil {
		return core.Fail("계산식을 찾을 수 없습니다. 예: '5 + 3'")
	}

	n1, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return core.Fail("계산 중 오류가 발생했습니다: " + err.Error())
	}
	op := m[2]
	n2, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return core.Fail("계산 중 오류가 발생했습니다: " + err.Error())
	}

	var out float64
	switch op {
	case "+":
		out = n1 + n2
	case "-":
		out = n1 - n2
	case "*":
		out = n1 * n2
	case "/":
		if n2 == 0 {
			return core.Fail("0으로 나눌 수 없습니다")
		}
		out = n1 / n2
	}

	return core.Ok(map[string]any{
		"result":     out,
		"expression": fmt.Sprintf("%g %s %g", n1, op, n2),
	})
}

func weatherHandler(payload map[string]any) Handler {
	return func(string) core.ToolResult {
		// Copy so callers can't mutate the shared payload.
		data := make(map[string]any, len(payload))
		for k, v := range payload {
			data[k] = v
		}
		return core.Ok(data)
	}
}

func timeHandler(now func() time.Time, timezone string) Handler {
	return func(string) core.ToolResult {
		return core.Ok(map[string]any{
			"currentTime": now().Format("2006-01-02 15:04:05"),
			"timezone":    timezone,
		})
	}
}
