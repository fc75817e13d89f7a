package session

import (
	"encoding/json"
	"strings"
	"time"
)

// Status describes the lifecycle state of a session record.
type Status string

const (
	// StatusActive is the initial state of every session.
	StatusActive Status = "active"
	// StatusHandedOff marks a session picked up by the guide app on the
	// visitor's own device. The session stays alive and keeps expiring
	// on inactivity like an active one.
	StatusHandedOff Status = "handed_off"
	// StatusEnded marks a session that was explicitly finished.
	// The record is retained for analytics; ending is terminal.
	StatusEnded Status = "ended"
)

// Session represents one visitor's interaction window with the guide.
// The Data type parameter allows custom payload structures; the store
// treats the payload as opaque and never normalizes it.
type Session[Data any] struct {
	// ID is the opaque session identifier, immutable after creation.
	ID string

	// Data holds the caller-supplied payload (e.g. conversation state).
	Data Data

	Status    Status
	EndReason string

	// CreatedAt is set once at creation and never mutated.
	CreatedAt time.Time

	// UpdatedAt is refreshed whenever the payload is mutated.
	UpdatedAt time.Time

	// LastAccessedAt is refreshed by every successful access (keep-alive).
	LastAccessedAt time.Time
}

// LastActive returns the later of UpdatedAt and LastAccessedAt, which is
// the reference point for idle-expiry checks.
func (s Session[Data]) LastActive() time.Time {
	if s.UpdatedAt.After(s.LastAccessedAt) {
		return s.UpdatedAt
	}
	return s.LastAccessedAt
}

// IdleFor returns how long the session has gone unused as of now,
// floored at zero to tolerate clock skew between store and caller.
func (s Session[Data]) IdleFor(now time.Time) time.Duration {
	idle := now.Sub(s.LastActive())
	if idle < 0 {
		return 0
	}
	return idle
}

// IsEnded reports whether the session reached its terminal ended state.
func (s Session[Data]) IsEnded() bool {
	return s.Status == StatusEnded
}

// NormalizePayload opportunistically parses a JSON-looking string payload
// into structured form. Clients sometimes send the chat payload as a
// pre-serialized string; a value starting with '{', '[' or '"' is decoded
// so it is stored structured rather than double-encoded. Anything that is
// not such a string, or fails to decode, is returned as given.
func NormalizePayload(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return v
	}
	switch trimmed[0] {
	case '{', '[', '"':
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return decoded
		}
	}
	return v
}
