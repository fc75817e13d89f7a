package chatmodel

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// Config selects and keys the chat provider, loadable from environment.
type Config struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"openai"`
	APIKey   string `env:"LLM_API_KEY,required"`
	Model    string `env:"LLM_MODEL"` // provider default when empty
}

// New constructs the configured provider.
func New(ctx context.Context, cfg Config) (Model, error) {
	switch cfg.Provider {
	case "openai":
		var opts []OpenAIOption
		if cfg.Model != "" {
			opts = append(opts, WithOpenAIModel(cfg.Model))
		}
		return NewOpenAI(cfg.APIKey, opts...)
	case "google", "gemini":
		var opts []GoogleOption
		if cfg.Model != "" {
			opts = append(opts, WithGoogleModel(cfg.Model))
		}
		return NewGoogle(ctx, cfg.APIKey, opts...)
	case "anthropic", "claude":
		var opts []AnthropicOption
		if cfg.Model != "" {
			opts = append(opts, WithAnthropicModel(anthropic.Model(cfg.Model)))
		}
		return NewAnthropic(cfg.APIKey, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
