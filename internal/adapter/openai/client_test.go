package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/run"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/port/assistant"
)

func TestCreateAssistantSendsToolDescriptors(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/assistants" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if h := r.Header.Get("OpenAI-Beta"); h != "assistants=v2" {
			t.Errorf("OpenAI-Beta = %q, want assistants=v2", h)
		}
		if h := r.Header.Get("Authorization"); h != "Bearer test-key" {
			t.Errorf("Authorization = %q", h)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"asst_1","model":"gpt-4o-mini"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", nil)
	a, err := c.CreateAssistant(context.Background(), assistant.AssistantRequest{
		Model:        "gpt-4o-mini",
		Name:         "SwarnaMitra",
		Instructions: "advise on gold",
		Tools: []assistant.ToolSpec{{
			Name:        "get_indian_gold_price",
			Description: "current prices",
			Parameters:  map[string]any{"type": "object", "properties": map[string]any{}},
		}},
	})
	if err != nil {
		t.Fatalf("CreateAssistant: %v", err)
	}
	if a.ID != "asst_1" {
		t.Errorf("assistant ID = %q, want asst_1", a.ID)
	}

	tools, ok := got["tools"].([]any)
	if !ok || len(tools) != 1 {
		t.Fatalf("tools payload = %v, want one entry", got["tools"])
	}
	entry := tools[0].(map[string]any)
	if entry["type"] != "function" {
		t.Errorf("tool type = %v, want function", entry["type"])
	}
	fn := entry["function"].(map[string]any)
	if fn["name"] != "get_indian_gold_price" {
		t.Errorf("tool name = %v", fn["name"])
	}
}

func TestGetRunParsesRequiredAction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/threads/thread_1/runs/run_1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "run_1",
			"thread_id": "thread_1",
			"status": "requires_action",
			"required_action": {
				"type": "submit_tool_outputs",
				"submit_tool_outputs": {
					"tool_calls": [
						{"id":"call_a","type":"function","function":{"name":"get_indian_gold_price","arguments":"{}"}},
						{"id":"call_b","type":"function","function":{"name":"risk_assessment_indian","arguments":"{\"age\":30}"}}
					]
				}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", nil)
	r, err := c.GetRun(context.Background(), "thread_1", "run_1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if r.Status != run.StatusRequiresAction {
		t.Errorf("status = %q, want requires_action", r.Status)
	}
	if len(r.PendingCalls) != 2 {
		t.Fatalf("pending calls = %d, want 2", len(r.PendingCalls))
	}
	if r.PendingCalls[0].ID != "call_a" || r.PendingCalls[0].Name != "get_indian_gold_price" {
		t.Errorf("first call = %+v", r.PendingCalls[0])
	}
	if string(r.PendingCalls[1].Arguments) != `{"age":30}` {
		t.Errorf("second call args = %s", r.PendingCalls[1].Arguments)
	}
}

func TestSubmitToolOutputsBatch(t *testing.T) {
	var body struct {
		ToolOutputs []struct {
			ToolCallID string `json:"tool_call_id"`
			Output     string `json:"output"`
		} `json:"tool_outputs"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/submit_tool_outputs") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"run_1","thread_id":"thread_1","status":"queued"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", nil)
	r, err := c.SubmitToolOutputs(context.Background(), "thread_1", "run_1", []run.ToolOutput{
		{CallID: "call_a", Output: `{"success":true}`},
		{CallID: "call_b", Output: `{"success":false}`},
	})
	if err != nil {
		t.Fatalf("SubmitToolOutputs: %v", err)
	}
	if r.Status != run.StatusQueued {
		t.Errorf("status = %q, want queued", r.Status)
	}
	if len(body.ToolOutputs) != 2 {
		t.Fatalf("submitted outputs = %d, want 2", len(body.ToolOutputs))
	}
	if body.ToolOutputs[0].ToolCallID != "call_a" || body.ToolOutputs[1].ToolCallID != "call_b" {
		t.Errorf("output ids = %+v", body.ToolOutputs)
	}
}

func TestListMessagesNewestFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("order") != "desc" {
			t.Errorf("order = %q, want desc", r.URL.Query().Get("order"))
		}
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("limit = %q, want 5", r.URL.Query().Get("limit"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"msg_2","role":"assistant","created_at":200,"content":[{"type":"text","text":{"value":"22k gold is 7400 INR/g in Delhi"}}]},
			{"id":"msg_1","role":"user","created_at":100,"content":[{"type":"text","text":{"value":"price?"}}]}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", nil)
	msgs, err := c.ListMessages(context.Background(), "thread_1", 5)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	text, ok := msgs[0].FirstText()
	if !ok || !strings.Contains(text, "Delhi") {
		t.Errorf("first message text = %q ok=%v", text, ok)
	}
}

func TestErrorStatusSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", nil)
	_, err := c.CreateThread(context.Background())
	if err == nil {
		t.Fatal("CreateThread: want error")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("err = %v, want status and body in message", err)
	}
}
