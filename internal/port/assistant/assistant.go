// Package assistant defines the port over the remote assistant execution
// service. The service owns assistants, threads, message history and runs;
// adapters implement this interface against the real HTTP API and tests
// script it with in-memory fakes.
package assistant

import (
	"context"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/conversation"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/run"
)

// ToolSpec describes one callable function to the remote model: a unique
// name plus a JSON-schema parameter description.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// AssistantRequest holds the fields needed to create an assistant
// configuration on the remote service.
type AssistantRequest struct {
	Model        string
	Name         string
	Instructions string
	Tools        []ToolSpec
}

// Assistant is a remote assistant configuration handle.
type Assistant struct {
	ID    string
	Model string
}

// Thread is a remote conversation handle.
type Thread struct {
	ID string
}

// Service is the operation surface this backend consumes from the remote
// execution service.
type Service interface {
	CreateAssistant(ctx context.Context, req AssistantRequest) (*Assistant, error)
	CreateThread(ctx context.Context) (*Thread, error)

	// AddMessage appends a message to the thread's remote history.
	AddMessage(ctx context.Context, threadID, role, content string) (*conversation.Message, error)

	// ListMessages returns messages in the thread ordered newest first.
	ListMessages(ctx context.Context, threadID string, limit int) ([]conversation.Message, error)

	CreateRun(ctx context.Context, threadID, assistantID string) (*run.Run, error)
	GetRun(ctx context.Context, threadID, runID string) (*run.Run, error)

	// SubmitToolOutputs delivers one output per pending invocation id in a
	// single batch. The remote service will not progress the run until every
	// pending id has an output.
	SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []run.ToolOutput) (*run.Run, error)
}
