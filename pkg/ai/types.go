package ai

import "context"

// Prompt is one user turn sent to the campus assistant.
type Prompt struct {
	UserID  string
	Role    string
	Message string
}

// Reply is the assistant's answer.
type Reply struct {
	Text string
	Raw  map[string]interface{}
}

// Assistant is an opaque prompt-in/reply-out collaborator. The API holds no
// conversational state and applies no language understanding of its own.
type Assistant interface {
	Respond(ctx context.Context, prompt Prompt) (Reply, error)
}
