package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/adapter/otel"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/conversation"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/port/assistant"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// ChatService owns the conversation lifecycle: bootstrap of the remote
// assistant configuration and thread, per-thread serialization of chats,
// and the append-run-extract cycle for each user turn.
type ChatService struct {
	svc    assistant.Service
	driver *Driver

	mu          sync.RWMutex
	assistantID string
	threadID    string

	locks *threadLocks
}

// BootstrapRequest configures the remote assistant created at startup.
type BootstrapRequest struct {
	Model        string
	Name         string
	Instructions string
	Tools        []tool.Descriptor
}

// NewChatService creates a ChatService. Bootstrap must be called before
// the first chat.
func NewChatService(svc assistant.Service, tools *tool.Registry, cfg DriverConfig, metrics *otel.Metrics) *ChatService {
	return &ChatService{
		svc:    svc,
		driver: NewDriver(svc, tools, cfg, metrics),
		locks:  newThreadLocks(),
	}
}

// Driver exposes the run driver for test configuration.
func (c *ChatService) Driver() *Driver { return c.driver }

// Bootstrap creates the remote assistant configuration and the
// conversation thread. It is called once at startup, before the server
// accepts traffic.
func (c *ChatService) Bootstrap(ctx context.Context, req BootstrapRequest) error {
	specs := make([]assistant.ToolSpec, 0, len(req.Tools))
	for _, d := range req.Tools {
		specs = append(specs, assistant.ToolSpec{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.Parameters,
		})
	}

	a, err := c.svc.CreateAssistant(ctx, assistant.AssistantRequest{
		Model:        req.Model,
		Name:         req.Name,
		Instructions: req.Instructions,
		Tools:        specs,
	})
	if err != nil {
		return fmt.Errorf("bootstrap: create assistant: %w", err)
	}

	th, err := c.svc.CreateThread(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: create thread: %w", err)
	}

	c.mu.Lock()
	c.assistantID = a.ID
	c.threadID = th.ID
	c.mu.Unlock()

	slog.Info("assistant bootstrapped", "assistant_id", a.ID, "thread_id", th.ID, "tools", len(specs))
	return nil
}

// HandleChat processes one user turn: validate, append the message, drive
// a run to completion and extract the assistant's reply.
func (c *ChatService) HandleChat(ctx context.Context, userInput string) (string, error) {
	if strings.TrimSpace(userInput) == "" {
		return "", domain.ErrInvalidRequest
	}

	c.mu.RLock()
	assistantID, threadID := c.assistantID, c.threadID
	c.mu.RUnlock()
	if assistantID == "" || threadID == "" {
		return "", domain.ErrNotInitialized
	}

	// One in-flight run per thread; a concurrent chat waits here.
	unlock := c.locks.lock(threadID)
	defer unlock()

	if _, err := c.svc.AddMessage(ctx, threadID, conversation.RoleUser, userInput); err != nil {
		return "", fmt.Errorf("append user message: %w", err)
	}

	r, err := c.driver.Drive(ctx, threadID, assistantID)
	if err != nil {
		return "", err
	}

	reply, err := c.extractReply(ctx, threadID)
	if err != nil {
		return "", err
	}

	slog.Debug("chat turn completed", "run_id", r.ID, "thread_id", threadID)
	return reply, nil
}

// extractReply fetches the latest assistant message from the thread and
// returns its text. A non-text first content block is rejected.
func (c *ChatService) extractReply(ctx context.Context, threadID string) (string, error) {
	msgs, err := c.svc.ListMessages(ctx, threadID, 10)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}

	for _, m := range msgs {
		if m.Role != conversation.RoleAssistant {
			continue
		}
		text, ok := m.FirstText()
		if !ok {
			return "", fmt.Errorf("message %s: %w", m.ID, domain.ErrUnexpectedContent)
		}
		return text, nil
	}
	return "", fmt.Errorf("no assistant message on thread %s: %w", threadID, domain.ErrUnexpectedContent)
}
