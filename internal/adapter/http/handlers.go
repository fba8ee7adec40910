// Package http provides the chi handlers and middleware for the chat API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/logger"
	"github.com/TheRanomial/SwarnaMitra-Backend/internal/service"
)

const chatBodyLimit = 64 * 1024 // 64 KiB

// Handlers holds the services the HTTP layer dispatches to.
type Handlers struct {
	Chat *service.ChatService

	// RemoteBase is reported by the health endpoint.
	RemoteBase string
}

type chatRequest struct {
	UserInput string `json:"userInput"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// HandleChat processes one user turn: POST /chat {"userInput": ...}.
func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[chatRequest](w, r, chatBodyLimit)
	if !ok {
		return
	}

	reply, err := h.Chat.HandleChat(r.Context(), req.UserInput)
	if err != nil {
		slog.Error("chat turn failed",
			"error", err,
			"request_id", logger.RequestID(r.Context()),
		)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

// HandleHealth reports service status: GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"remote_base": h.RemoteBase,
	})
}
