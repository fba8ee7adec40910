// Package conversation defines message types for the remote-hosted thread.
// The remote execution service is the system of record for message history;
// locally these types only describe what it returns.
package conversation

import "time"

// Message roles as reported by the remote service.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ContentTypeText is the only content block type this service renders.
const ContentTypeText = "text"

// Message is one entry in a thread's append-only message log.
type Message struct {
	ID        string
	Role      string
	Content   []ContentBlock
	CreatedAt time.Time
}

// ContentBlock is a single typed payload inside a message. Non-text types
// (images, files) are carried opaquely and rejected by the result extractor.
type ContentBlock struct {
	Type string
	Text string
}

// FirstText returns the text of the first content block when it is a plain
// text block, and ok=false otherwise.
func (m Message) FirstText() (string, bool) {
	if len(m.Content) == 0 {
		return "", false
	}
	if m.Content[0].Type != ContentTypeText {
		return "", false
	}
	return m.Content[0].Text, true
}
