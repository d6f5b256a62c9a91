package respondent

import (
	"context"
)

// ChatTurn is one prior exchange in a conversation, from the AI's
// point of view
type ChatTurn struct {
	// Role is "user" for the human's messages and "assistant" for
	// the AI's own
	Role    string
	Content string
}

// Responder produces the AI player's replies
type Responder interface {
	Reply(ctx context.Context, systemPrompt string, history []ChatTurn) (string, error)
}
