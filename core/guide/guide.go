// Package guide proxies visitor chat to the configured LLM with the
// exhibit-navigation system prompt injected, and parses the structured
// navigation decision out of the model's reply.
package guide

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nudgyt/scaiguide/core/exhibit"
	"github.com/nudgyt/scaiguide/core/logger"
	"github.com/nudgyt/scaiguide/pkg/chatmodel"
)

// ErrEmptyChat is returned when a chat request carries no visitor messages.
var ErrEmptyChat = errors.New("chat request has no messages")

// NavDecision is the structured navigation intent the model emits when a
// visitor asks for directions.
type NavDecision struct {
	Intent            string  `json:"intent"`
	TargetDisplayName string  `json:"targetDisplayName"`
	TargetID          *string `json:"targetId"`
	Confidence        float64 `json:"confidence"`
}

// Reply is a parsed model response: the conversational text plus an
// optional navigation decision.
type Reply struct {
	Reply string       `json:"reply"`
	Nav   *NavDecision `json:"nav"`
}

// Service is the chat proxy. The Redis client is optional; when present,
// exhibit matches for repeated navigation queries are cached.
type Service struct {
	model    chatmodel.Model
	cache    *redis.Client
	cacheTTL time.Duration
	log      *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithCache enables navigation-match caching with the given TTL.
func WithCache(client *redis.Client, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = client
		s.cacheTTL = ttl
	}
}

// WithLogger sets the logger for proxy diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a guide service over the given chat model.
func New(model chatmodel.Model, opts ...Option) *Service {
	s := &Service{
		model:    model,
		cacheTTL: 15 * time.Minute,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Chat forwards the visitor's conversation to the model with the
// navigation system prompt injected. Client-supplied system messages are
// discarded first; the prompt is the server's to control.
func (s *Service) Chat(ctx context.Context, history []chatmodel.Message) (Reply, error) {
	history = StripSystem(history)
	if len(history) == 0 {
		return Reply{}, ErrEmptyChat
	}

	msgs := make([]chatmodel.Message, 0, len(history)+1)
	msgs = append(msgs, chatmodel.Message{
		Role:    chatmodel.RoleSystem,
		Content: exhibit.NavigationPrompt(),
	})
	msgs = append(msgs, history...)

	start := time.Now()
	raw, err := s.model.Complete(ctx, msgs)
	if err != nil {
		return Reply{}, err
	}
	s.log.DebugContext(ctx, "chat completion",
		slog.String("model", s.model.Name()), logger.Elapsed(start))

	return ParseReply(raw), nil
}

// MatchExhibit resolves a free-text navigation query against the static
// synonym table, consulting the cache first.
func (s *Service) MatchExhibit(ctx context.Context, query string) (exhibit.Exhibit, bool) {
	key := "nav:match:" + strings.ToLower(strings.TrimSpace(query))

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var ex exhibit.Exhibit
			if json.Unmarshal([]byte(cached), &ex) == nil {
				return ex, true
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "nav cache read failed", logger.Error(err))
		}
	}

	ex, ok := exhibit.Match(query)
	if !ok {
		return exhibit.Exhibit{}, false
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(ex); err == nil {
			if err := s.cache.Set(ctx, key, encoded, s.cacheTTL).Err(); err != nil {
				s.log.WarnContext(ctx, "nav cache write failed", logger.Error(err))
			}
		}
	}
	return ex, true
}

// ParseReply decodes the model output into a Reply. Models occasionally
// wrap JSON in markdown fences or answer in plain prose; both degrade to
// a text-only reply rather than an error.
func ParseReply(raw string) Reply {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var reply Reply
	if err := json.Unmarshal([]byte(text), &reply); err != nil || reply.Reply == "" {
		return Reply{Reply: raw}
	}
	if reply.Nav != nil && reply.Nav.Intent != "navigate_to_exhibit" {
		reply.Nav = nil
	}
	return reply
}

// StripSystem removes system messages from a conversation before it is
// returned to clients or re-sent to the model.
func StripSystem(history []chatmodel.Message) []chatmodel.Message {
	out := make([]chatmodel.Message, 0, len(history))
	for _, msg := range history {
		if strings.EqualFold(msg.Role, chatmodel.RoleSystem) {
			continue
		}
		out = append(out, msg)
	}
	return out
}
