// Package domain provides shared domain-level sentinel errors for the
// chat and run-orchestration services.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest indicates the caller supplied no usable user input.
var ErrInvalidRequest = errors.New("invalid request: user input is required")

// ErrNotInitialized indicates the assistant configuration or conversation
// thread has not been bootstrapped yet.
var ErrNotInitialized = errors.New("assistant or thread not initialized")

// ErrUnknownTool indicates the remote model requested a tool that is not
// present in the local registry.
var ErrUnknownTool = errors.New("unknown tool")

// ErrRunTimeout indicates a run exceeded the locally imposed poll or
// wall-clock bound before reaching a terminal state.
var ErrRunTimeout = errors.New("run did not reach a terminal state in time")

// ErrUnexpectedContent indicates the final assistant message carried a
// content type this service does not support (anything but plain text).
var ErrUnexpectedContent = errors.New("unexpected content type in assistant response")

// RunFailedError reports a run that ended in a terminal state other than
// completed. Status is the remote status (failed, cancelled, expired, ...)
// and Detail carries any remote-supplied error description.
type RunFailedError struct {
	Status string
	Detail string
}

func (e *RunFailedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("run ended with status %q", e.Status)
	}
	return fmt.Sprintf("run ended with status %q: %s", e.Status, e.Detail)
}
