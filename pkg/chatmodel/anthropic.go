package chatmodel

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic implements Model using the Anthropic Messages API.
type Anthropic struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// AnthropicOption is a functional option for configuring Anthropic.
type AnthropicOption func(*Anthropic)

// WithAnthropicModel sets the model to use.
func WithAnthropicModel(model anthropic.Model) AnthropicOption {
	return func(a *Anthropic) {
		a.model = model
	}
}

// WithAnthropicMaxTokens sets the completion token limit.
func WithAnthropicMaxTokens(n int64) AnthropicOption {
	return func(a *Anthropic) {
		if n > 0 {
			a.maxTokens = n
		}
	}
}

// NewAnthropic creates a new Claude chat model.
func NewAnthropic(apiKey string, opts ...AnthropicOption) (*Anthropic, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	a := &Anthropic{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     anthropic.ModelClaude3_5Sonnet20241022,
		maxTokens: 4096,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Name identifies the provider and model.
func (a *Anthropic) Name() string {
	return "anthropic/" + string(a.model)
}

// Complete returns the model's reply for the conversation. System messages
// become system blocks; the rest map to user/assistant turns.
func (a *Anthropic) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", ErrEmptyConversation
	}

	var system []anthropic.TextBlockParam
	turns := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case RoleAssistant:
			turns = append(turns, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    system,
		Messages:  turns,
	})
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", ErrNoReply
	}
	return text, nil
}
