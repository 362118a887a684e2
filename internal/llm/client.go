package llm

import "context"

// ChatMessage represents a generic chat turn in the prompt history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the completion behaviour the orchestrators depend on.
type Client interface {
	ChatCompletion(ctx context.Context, messages []ChatMessage, temperature float64) (string, error)
	// JSONCompletion constrains the model output to a single JSON object.
	JSONCompletion(ctx context.Context, messages []ChatMessage, temperature float64) (string, error)
}
