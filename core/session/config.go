package session

import (
	"log/slog"
	"time"
)

// Config holds session manager configuration, loadable from environment.
type Config struct {
	// IdleThreshold is the maximum duration a session may go unaccessed
	// before an access call treats it as expired and deletes it.
	IdleThreshold time.Duration `env:"SESSION_IDLE_THRESHOLD" envDefault:"1h"`

	// Secret keys the HMAC used for session id generation.
	Secret string `env:"SESSION_SECRET,required"`

	// OpTimeout bounds every store call so a stalled document store
	// surfaces as a transient failure instead of a hung request.
	OpTimeout time.Duration `env:"SESSION_OP_TIMEOUT" envDefault:"5s"`
}

const (
	defaultIdleThreshold = time.Hour
	defaultOpTimeout     = 5 * time.Second
	defaultListLimit     = 50
	maxListLimit         = 200
)

// Option is a functional option for configuring the session manager.
type Option[Data any] func(*Manager[Data])

// WithLogger sets the logger used for manager diagnostics.
func WithLogger[Data any](log *slog.Logger) Option[Data] {
	return func(m *Manager[Data]) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock overrides the manager's time source. Intended for tests.
func WithClock[Data any](now func() time.Time) Option[Data] {
	return func(m *Manager[Data]) {
		if now != nil {
			m.now = now
		}
	}
}
