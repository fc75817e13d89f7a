// Package chatmodel exposes LLM chat completion behind a small
// provider-neutral interface. One implementation exists per vendor the
// guide can proxy to: OpenAI, Google Gemini and Anthropic Claude.
package chatmodel

import "context"

// Message roles in vendor-neutral form.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Model generates a single assistant reply for a conversation.
type Model interface {
	// Complete returns the model's reply text for the given messages.
	Complete(ctx context.Context, messages []Message) (string, error)

	// Name identifies the provider/model for logging and diagnostics.
	Name() string
}
