package chatmodel

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI implements Model using the OpenAI Chat Completions API.
type OpenAI struct {
	client      openai.Client
	model       string
	temperature float64
}

// OpenAIOption is a functional option for configuring OpenAI.
type OpenAIOption func(*OpenAI)

// WithOpenAIModel sets the model to use.
func WithOpenAIModel(model string) OpenAIOption {
	return func(o *OpenAI) {
		o.model = model
	}
}

// WithOpenAITemperature sets the sampling temperature.
func WithOpenAITemperature(temp float64) OpenAIOption {
	return func(o *OpenAI) {
		o.temperature = temp
	}
}

// NewOpenAI creates a new OpenAI chat model.
func NewOpenAI(apiKey string, opts ...OpenAIOption) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	o := &OpenAI{
		client:      openai.NewClient(option.WithAPIKey(apiKey)),
		model:       openai.ChatModelGPT4oMini,
		temperature: 0.7,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Name identifies the provider and model.
func (o *OpenAI) Name() string {
	return "openai/" + o.model
}

// Complete returns the model's reply for the conversation.
func (o *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", ErrEmptyConversation
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Temperature: openai.Float(o.temperature),
		Messages:    make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoReply
	}
	return resp.Choices[0].Message.Content, nil
}
