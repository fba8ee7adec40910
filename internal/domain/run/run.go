// Package run defines the Run domain entity for remote assistant executions.
package run

import "encoding/json"

// Status represents the remote-reported state of a run.
type Status string

const (
	StatusQueued         Status = "queued"
	StatusInProgress     Status = "in_progress"
	StatusRequiresAction Status = "requires_action"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
	StatusCancelled      Status = "cancelled"
	StatusExpired        Status = "expired"
	StatusIncomplete     Status = "incomplete"
)

// Active reports whether the run is still being worked on remotely and the
// driver should keep polling.
func (s Status) Active() bool {
	return s == StatusQueued || s == StatusInProgress
}

// Terminal reports whether no further transition can occur.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled, StatusExpired, StatusIncomplete:
		return true
	}
	return false
}

// Run represents one remote-service-tracked execution of the assistant
// against a thread. It may pause in requires_action to request local tool
// execution before completing.
type Run struct {
	ID           string
	ThreadID     string
	AssistantID  string
	Status       Status
	PendingCalls []ToolInvocation
	LastError    string
}

// ToolInvocation is one request, inside a run, to execute a named local
// tool with the given raw argument payload.
type ToolInvocation struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ToolOutput is the resolved result for a single invocation id. Exactly one
// output per pending invocation must be submitted, in a single batch, before
// the run can progress past requires_action.
type ToolOutput struct {
	CallID string
	Output string
}
