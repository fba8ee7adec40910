package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/conversation"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain/run"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/port/assistant"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/service"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/tool"
)

// fakeRemote serves a fixed run outcome and reply for every turn.
type fakeRemote struct {
	status    run.Status
	lastError string
	reply     string
}

var _ assistant.Service = (*fakeRemote)(nil)

func (f *fakeRemote) CreateAssistant(context.Context, assistant.AssistantRequest) (*assistant.Assistant, error) {
	return &assistant.Assistant{ID: "asst_1"}, nil
}

func (f *fakeRemote) CreateThread(context.Context) (*assistant.Thread, error) {
	return &assistant.Thread{ID: "thread_1"}, nil
}

func (f *fakeRemote) AddMessage(_ context.Context, _, role, content string) (*conversation.Message, error) {
	return &conversation.Message{Role: role,
		Content: []conversation.ContentBlock{{Type: conversation.ContentTypeText, Text: content}}}, nil
}

func (f *fakeRemote) ListMessages(context.Context, string, int) ([]conversation.Message, error) {
	return []conversation.Message{{
		ID:   "msg_1",
		Role: conversation.RoleAssistant,
		Content: []conversation.ContentBlock{
			{Type: conversation.ContentTypeText, Text: f.reply},
		},
	}}, nil
}

func (f *fakeRemote) CreateRun(context.Context, string, string) (*run.Run, error) {
	return &run.Run{ID: "run_1", ThreadID: "thread_1", Status: f.status, LastError: f.lastError}, nil
}

func (f *fakeRemote) GetRun(context.Context, string, string) (*run.Run, error) {
	return &run.Run{ID: "run_1", ThreadID: "thread_1", Status: f.status, LastError: f.lastError}, nil
}

func (f *fakeRemote) SubmitToolOutputs(context.Context, string, string, []run.ToolOutput) (*run.Run, error) {
	return &run.Run{ID: "run_1", ThreadID: "thread_1", Status: run.StatusCompleted}, nil
}

func newTestRouter(t *testing.T, remote assistant.Service, bootstrapped bool) chi.Router {
	t.Helper()
	registry, err := tool.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	cfg := service.DefaultDriverConfig()
	cfg.MaxPolls = 2
	chat := service.NewChatService(remote, registry, cfg, nil)
	chat.Driver().SetSleeper(func(ctx context.Context, _ time.Duration) error {
		return ctx.Err()
	})

	if bootstrapped {
		if err := chat.Bootstrap(context.Background(), service.BootstrapRequest{Model: "gpt-4o"}); err != nil {
			t.Fatalf("Bootstrap: %v", err)
		}
	}

	r := chi.NewRouter()
	MountRoutes(r, &Handlers{Chat: chat, RemoteBase: "https://api.test"})
	return r
}

func postChat(t *testing.T, router chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleChatOK(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{status: run.StatusCompleted, reply: "gold gleams"}, true)

	rec := postChat(t, router, `{"userInput":"tell me about gold"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Response != "gold gleams" {
		t.Errorf("response = %q", resp.Response)
	}
}

func TestHandleChatEmptyInput(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{status: run.StatusCompleted}, true)

	for _, body := range []string{`{"userInput":""}`, `{}`, `{"userInput":"   "}`} {
		if rec := postChat(t, router, body); rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestHandleChatMalformedBody(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{status: run.StatusCompleted}, true)

	if rec := postChat(t, router, `{"userInput":`); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleChatNotBootstrapped(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{status: run.StatusCompleted}, false)

	if rec := postChat(t, router, `{"userInput":"hi"}`); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHandleChatRunFailed(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{status: run.StatusFailed, lastError: "boom"}, true)

	rec := postChat(t, router, `{"userInput":"hi"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	// Remote detail stays out of the client response.
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("remote error detail leaked to client")
	}
}

func TestHandleChatTimeout(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{status: run.StatusInProgress}, true)

	if rec := postChat(t, router, `{"userInput":"hi"}`); rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(t, &fakeRemote{status: run.StatusCompleted}, true)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["remote_base"] != "https://api.test" {
		t.Errorf("body = %v", body)
	}
}
