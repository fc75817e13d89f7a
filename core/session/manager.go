package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/nudgyt/scaiguide/core/logger"
)

// Manager owns the session lifecycle: creation, activity-stamped reads,
// lazy idle-based expiry, and payload mutation. There is no background
// sweeper; expiry is checked only when a session is accessed.
type Manager[Data any] struct {
	store Store[Data]
	ids   *IDGenerator
	idle  time.Duration
	opTTL time.Duration
	now   func() time.Time
	log   *slog.Logger
}

// NewManager creates a session manager backed by the given store.
// The config's idle threshold and HMAC secret are fixed for the lifetime
// of the manager.
func NewManager[Data any](store Store[Data], cfg Config, opts ...Option[Data]) (*Manager[Data], error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	m := &Manager[Data]{
		store: store,
		ids:   NewIDGenerator(cfg.Secret),
		idle:  cfg.IdleThreshold,
		opTTL: cfg.OpTimeout,
		now:   time.Now,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if m.idle <= 0 {
		m.idle = defaultIdleThreshold
	}
	if m.opTTL <= 0 {
		m.opTTL = defaultOpTimeout
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// IdleThreshold returns the configured idle-expiry duration.
func (m *Manager[Data]) IdleThreshold() time.Duration {
	return m.idle
}

// CreateResult is the outcome of Create. The id is always usable; when the
// store write failed, Persisted is false and Err carries the reason so the
// caller can degrade instead of rejecting the request.
type CreateResult[Data any] struct {
	ID        string
	Data      Data
	Persisted bool
	Err       error
}

// Create generates a new session id and persists a record with all three
// timestamps set to the store's current time. A store failure is reported
// in the result rather than returned as an error; only id generation
// itself can fail the call.
func (m *Manager[Data]) Create(ctx context.Context, data Data) (CreateResult[Data], error) {
	id, err := m.ids.Generate()
	if err != nil {
		return CreateResult[Data]{}, err
	}

	res := CreateResult[Data]{ID: id, Data: data}

	ctx, cancel := context.WithTimeout(ctx, m.opTTL)
	defer cancel()

	if err := m.store.Create(ctx, &Session[Data]{ID: id, Data: data, Status: StatusActive}); err != nil {
		m.log.ErrorContext(ctx, "session create write failed",
			logger.SessionID(id), logger.Error(err))
		res.Err = err
		return res, nil
	}

	res.Persisted = true
	return res, nil
}

// Access looks up a session, expiring it if idle for at least the
// configured threshold. On expiry the record is deleted and ErrExpired is
// returned; a repeat call yields plain ErrNotFound. Otherwise the call
// refreshes lastAccessedAt, extending the idle window (keep-alive).
// Ended sessions are terminal: they are returned as-is, never
// idle-expired and never keep-alive refreshed.
func (m *Manager[Data]) Access(ctx context.Context, id string) (Session[Data], error) {
	var zero Session[Data]
	if id == "" {
		return zero, ErrMissingID
	}

	ctx, cancel := context.WithTimeout(ctx, m.opTTL)
	defer cancel()

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return zero, m.storeErr(err)
	}

	// The record of an ended session is retained for analytics. Idle
	// expiry would delete it and Touch would fake visitor presence, so
	// neither applies past the terminal transition.
	if sess.IsEnded() {
		return *sess, nil
	}

	now := m.now()
	if lastActive := sess.LastActive(); !lastActive.IsZero() && sess.IdleFor(now) >= m.idle {
		deleted, err := m.store.DeleteIfIdleSince(ctx, id, now.Add(-m.idle))
		if err != nil {
			return zero, m.storeErr(err)
		}
		if deleted {
			m.log.InfoContext(ctx, "session expired",
				logger.SessionID(id),
				slog.Duration("idle", sess.IdleFor(now)),
				slog.Duration("threshold", m.idle))
			return zero, ErrExpired
		}
		// A concurrent access refreshed the record between our read and
		// the conditional delete; the session is alive.
	}

	if err := m.store.Touch(ctx, id); err != nil {
		return zero, m.storeErr(err)
	}
	sess.LastAccessedAt = now
	return *sess, nil
}

// Update overwrites the session payload and refreshes updatedAt. It does
// not touch lastAccessedAt: mutating content does not prove the visitor is
// still present, only Access does. Validation happens before any store call.
func (m *Manager[Data]) Update(ctx context.Context, id string, data Data) error {
	if id == "" {
		return ErrMissingID
	}
	if any(data) == nil {
		return ErrMissingPayload
	}

	ctx, cancel := context.WithTimeout(ctx, m.opTTL)
	defer cancel()

	if err := m.store.SetData(ctx, id, data); err != nil {
		return m.storeErr(err)
	}
	return nil
}

// End marks the session finished, keeping the record for analytics.
// Idempotent: ending an already-ended session returns the existing
// terminal state without re-applying the transition.
func (m *Manager[Data]) End(ctx context.Context, id, reason string) (Session[Data], error) {
	var zero Session[Data]
	if id == "" {
		return zero, ErrMissingID
	}

	ctx, cancel := context.WithTimeout(ctx, m.opTTL)
	defer cancel()

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return zero, m.storeErr(err)
	}
	if sess.IsEnded() {
		return *sess, nil
	}

	if err := m.store.SetStatus(ctx, id, StatusEnded, reason); err != nil {
		return zero, m.storeErr(err)
	}
	sess.Status = StatusEnded
	sess.EndReason = reason
	sess.UpdatedAt = m.now()
	return *sess, nil
}

// Handoff records that the visitor moved to the guide app on their own
// device. The session stays alive; already handed-off and ended sessions
// are left untouched.
func (m *Manager[Data]) Handoff(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	ctx, cancel := context.WithTimeout(ctx, m.opTTL)
	defer cancel()

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return m.storeErr(err)
	}
	if sess.Status != StatusActive {
		return nil
	}

	if err := m.store.SetStatus(ctx, id, StatusHandedOff, ""); err != nil {
		return m.storeErr(err)
	}
	return nil
}

// List returns up to limit sessions ordered by creation time. A
// non-positive limit falls back to the default; the cap prevents
// unbounded reads.
func (m *Manager[Data]) List(ctx context.Context, limit int) ([]Session[Data], error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	ctx, cancel := context.WithTimeout(ctx, m.opTTL)
	defer cancel()

	sessions, err := m.store.List(ctx, limit)
	if err != nil {
		return nil, m.storeErr(err)
	}
	return sessions, nil
}

// storeErr passes not-found through untouched and wraps everything else,
// including timeouts, as a store-unavailable failure.
func (m *Manager[Data]) storeErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return errors.Join(ErrStoreUnavailable, err)
}
