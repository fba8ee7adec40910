package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain"
)

// Registry is an immutable name-keyed table of tool descriptors, built once
// at process start.
type Registry struct {
	tools map[string]Descriptor
	names []string
}

// NewRegistry builds a registry from a static descriptor list. Duplicate or
// empty names and nil handlers are construction errors.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{tools: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("tool descriptor with empty name")
		}
		if d.Handler == nil {
			return nil, fmt.Errorf("tool %s has no handler", d.Name)
		}
		if _, exists := r.tools[d.Name]; exists {
			return nil, fmt.Errorf("tool %s registered twice", d.Name)
		}
		r.tools[d.Name] = d
		r.names = append(r.names, d.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Lookup fetches a descriptor by name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.tools[name]
	return d, ok
}

// Names returns all registered tool names in stable order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Descriptors returns all descriptors in stable name order, for advertising
// the catalog to the remote service.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.tools[name])
	}
	return out
}

// Invoke executes the named tool against rawArgs. It never returns an error
// and never panics: unknown tools, malformed arguments, schema violations
// and handler panics all become Result{Success: false}.
func (r *Registry) Invoke(ctx context.Context, name string, rawArgs json.RawMessage) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("tool handler panicked", "tool", name, "panic", rec)
			res = Fail("tool %s failed internally", name)
		}
	}()

	d, ok := r.tools[name]
	if !ok {
		return Fail("%s: %q", domain.ErrUnknownTool.Error(), name)
	}

	args, err := normalizeArgs(rawArgs)
	if err != nil {
		return Fail("tool %s: invalid argument payload: %v", name, err)
	}

	if err := validateArgs(d.Parameters, args); err != nil {
		return Fail("tool %s: %v", name, err)
	}

	return d.Handler(ctx, args)
}

// normalizeArgs tolerates the empty and null payloads the remote service
// sends for zero-argument tools, and rejects non-JSON.
func normalizeArgs(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return json.RawMessage(`{}`), nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("not valid JSON")
	}
	return raw, nil
}

// validateArgs checks args against the descriptor's JSON-schema parameter
// block. A nil or empty schema accepts anything.
func validateArgs(parameters map[string]any, args json.RawMessage) error {
	if len(parameters) == 0 {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(parameters)
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(args))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("arguments rejected by schema: %s", strings.Join(details, "; "))
}
