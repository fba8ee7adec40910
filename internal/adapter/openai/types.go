package openai

import (
	"encoding/json"
	"time"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/conversation"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/run"
)

// Wire types for the Assistants API (v2). Only the fields this backend
// consumes are mapped.

type assistantBody struct {
	Model        string     `json:"model"`
	Name         string     `json:"name,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	Tools        []wireTool `json:"tools,omitempty"`
}

type wireTool struct {
	Type     string       `json:"type"`
	Function wireFunction `json:"function"`
}

type wireFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type wireAssistant struct {
	ID    string `json:"id"`
	Model string `json:"model"`
}

type wireThread struct {
	ID string `json:"id"`
}

type messageBody struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireMessage struct {
	ID        string        `json:"id"`
	Role      string        `json:"role"`
	CreatedAt int64         `json:"created_at"`
	Content   []wireContent `json:"content"`
}

type wireContent struct {
	Type string `json:"type"`
	Text *struct {
		Value string `json:"value"`
	} `json:"text,omitempty"`
}

type wireMessageList struct {
	Data []wireMessage `json:"data"`
}

type runBody struct {
	AssistantID string `json:"assistant_id"`
}

type wireRun struct {
	ID             string `json:"id"`
	ThreadID       string `json:"thread_id"`
	AssistantID    string `json:"assistant_id"`
	Status         string `json:"status"`
	RequiredAction *struct {
		Type              string `json:"type"`
		SubmitToolOutputs struct {
			ToolCalls []wireToolCall `json:"tool_calls"`
		} `json:"submit_tool_outputs"`
	} `json:"required_action,omitempty"`
	LastError *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"last_error,omitempty"`
}

type wireToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type toolOutputsBody struct {
	ToolOutputs []wireToolOutput `json:"tool_outputs"`
}

type wireToolOutput struct {
	ToolCallID string `json:"tool_call_id"`
	Output     string `json:"output"`
}

func (w wireRun) toDomain() *run.Run {
	r := &run.Run{
		ID:          w.ID,
		ThreadID:    w.ThreadID,
		AssistantID: w.AssistantID,
		Status:      run.Status(w.Status),
	}
	if w.LastError != nil {
		r.LastError = w.LastError.Message
	}
	if w.RequiredAction != nil {
		for _, tc := range w.RequiredAction.SubmitToolOutputs.ToolCalls {
			r.PendingCalls = append(r.PendingCalls, run.ToolInvocation{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: json.RawMessage(tc.Function.Arguments),
			})
		}
	}
	return r
}

func (w wireMessage) toDomain() conversation.Message {
	m := conversation.Message{
		ID:        w.ID,
		Role:      w.Role,
		CreatedAt: time.Unix(w.CreatedAt, 0),
	}
	for _, c := range w.Content {
		block := conversation.ContentBlock{Type: c.Type}
		if c.Text != nil {
			block.Text = c.Text.Value
		}
		m.Content = append(m.Content, block)
	}
	return m
}
