package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// readJSON decodes a JSON request body with a size limit.
func readJSON[T any](w http.ResponseWriter, r *http.Request, bodyLimit int64) (T, bool) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return v, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps the error taxonomy to distinct status codes. The
// client-visible text stays generic; detail goes to the log at the caller.
func writeDomainError(w http.ResponseWriter, err error) {
	var terminal *domain.RunFailedError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "user input is required")
	case errors.Is(err, domain.ErrNotInitialized):
		writeError(w, http.StatusServiceUnavailable, "assistant is not ready yet")
	case errors.Is(err, domain.ErrRunTimeout):
		writeError(w, http.StatusGatewayTimeout, "the assistant took too long to respond")
	case errors.As(err, &terminal), errors.Is(err, domain.ErrUnexpectedContent):
		writeError(w, http.StatusBadGateway, "the assistant could not produce a response")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
