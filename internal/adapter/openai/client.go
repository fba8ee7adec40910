// Package openai provides an HTTP client for an OpenAI Assistants-style
// execution API: assistants, threads, messages, runs and tool-output
// submission.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/conversation"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/run"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/port/assistant"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/resilience"
)

// betaHeader opts in to the Assistants v2 API surface.
const betaHeader = "assistants=v2"

// Client talks to the remote assistant execution service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *resilience.Breaker
}

var _ assistant.Service = (*Client)(nil)

// NewClient creates an Assistants API client. baseURL is the service root
// without the /v1 suffix.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// SetBreaker attaches a circuit breaker to all outgoing HTTP calls.
func (c *Client) SetBreaker(b *resilience.Breaker) {
	c.breaker = b
}

// CreateAssistant registers an assistant configuration (model, instructions,
// tool descriptors) with the remote service.
func (c *Client) CreateAssistant(ctx context.Context, req assistant.AssistantRequest) (*assistant.Assistant, error) {
	body := assistantBody{
		Model:        req.Model,
		Name:         req.Name,
		Instructions: req.Instructions,
	}
	for _, t := range req.Tools {
		body.Tools = append(body.Tools, wireTool{
			Type: "function",
			Function: wireFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	var out wireAssistant
	if err := c.doJSON(ctx, http.MethodPost, "/v1/assistants", body, &out); err != nil {
		return nil, fmt.Errorf("create assistant: %w", err)
	}
	return &assistant.Assistant{ID: out.ID, Model: out.Model}, nil
}

// CreateThread creates an empty conversation thread.
func (c *Client) CreateThread(ctx context.Context) (*assistant.Thread, error) {
	var out wireThread
	if err := c.doJSON(ctx, http.MethodPost, "/v1/threads", struct{}{}, &out); err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}
	return &assistant.Thread{ID: out.ID}, nil
}

// AddMessage appends a message to the thread's remote history.
func (c *Client) AddMessage(ctx context.Context, threadID, role, content string) (*conversation.Message, error) {
	var out wireMessage
	path := "/v1/threads/" + threadID + "/messages"
	if err := c.doJSON(ctx, http.MethodPost, path, messageBody{Role: role, Content: content}, &out); err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}
	m := out.toDomain()
	return &m, nil
}

// ListMessages returns thread messages ordered newest first.
func (c *Client) ListMessages(ctx context.Context, threadID string, limit int) ([]conversation.Message, error) {
	path := "/v1/threads/" + threadID + "/messages?order=desc"
	if limit > 0 {
		path += "&limit=" + strconv.Itoa(limit)
	}

	var out wireMessageList
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	msgs := make([]conversation.Message, 0, len(out.Data))
	for _, w := range out.Data {
		msgs = append(msgs, w.toDomain())
	}
	return msgs, nil
}

// CreateRun starts a run of the assistant against the thread.
func (c *Client) CreateRun(ctx context.Context, threadID, assistantID string) (*run.Run, error) {
	var out wireRun
	path := "/v1/threads/" + threadID + "/runs"
	if err := c.doJSON(ctx, http.MethodPost, path, runBody{AssistantID: assistantID}, &out); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	r := out.toDomain()
	if r.ThreadID == "" {
		r.ThreadID = threadID
	}
	return r, nil
}

// GetRun fetches the current state of a run.
func (c *Client) GetRun(ctx context.Context, threadID, runID string) (*run.Run, error) {
	var out wireRun
	path := "/v1/threads/" + threadID + "/runs/" + runID
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	r := out.toDomain()
	if r.ThreadID == "" {
		r.ThreadID = threadID
	}
	return r, nil
}

// SubmitToolOutputs delivers the batch of tool results for a paused run.
func (c *Client) SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []run.ToolOutput) (*run.Run, error) {
	body := toolOutputsBody{ToolOutputs: make([]wireToolOutput, 0, len(outputs))}
	for _, o := range outputs {
		body.ToolOutputs = append(body.ToolOutputs, wireToolOutput{
			ToolCallID: o.CallID,
			Output:     o.Output,
		})
	}

	var out wireRun
	path := "/v1/threads/" + threadID + "/runs/" + runID + "/submit_tool_outputs"
	if err := c.doJSON(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, fmt.Errorf("submit tool outputs: %w", err)
	}
	r := out.toDomain()
	if r.ThreadID == "" {
		r.ThreadID = threadID
	}
	return r, nil
}

// doJSON performs one API call, marshalling body (when non-nil) and
// unmarshalling the response into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	data, err := c.doRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var result []byte
	call := func() error {
		var bodyReader io.Reader
		if body != nil {
			bodyReader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("OpenAI-Beta", betaHeader)
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("http request: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		if resp.StatusCode >= 400 {
			return fmt.Errorf("assistants API error %d: %s", resp.StatusCode, string(data))
		}

		result = data
		return nil
	}

	if c.breaker != nil {
		if err := c.breaker.Execute(call); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := call(); err != nil {
		return nil, err
	}
	return result, nil
}
