// Package tool defines the local tool catalog: named functions the remote
// model may invoke, described by a JSON-schema parameter block and executed
// by a handler that reports failure in-band instead of returning errors.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
)

// Result is the uniform outcome of a tool invocation. Failures are data,
// not errors: the remote model reads the success flag and message and can
// react in-conversation.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Handler executes a tool against validated raw JSON arguments. Handlers
// must not panic and must report their own failures via Result; a handler
// that panics is recovered by the registry and converted to a failure.
type Handler func(ctx context.Context, args json.RawMessage) Result

// Descriptor binds a tool name to its parameter schema and handler.
type Descriptor struct {
	Name        string
	Description string
	// Parameters is a JSON-schema object describing accepted arguments.
	Parameters map[string]any
	Handler    Handler
}

// Ok returns a successful result carrying data.
func Ok(data any, message string) Result {
	return Result{Success: true, Data: data, Message: message}
}

// Fail returns a failed result with a formatted message.
func Fail(format string, args ...any) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...)}
}

// ObjectSchema builds a JSON-schema object block from properties and the
// list of required property names.
func ObjectSchema(properties map[string]any, required ...string) map[string]any {
	if required == nil {
		required = []string{}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
