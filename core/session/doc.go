// Package session owns the lifecycle of visitor session records for the
// museum guide: creation, activity-stamped reads, lazy idle-based expiry,
// and mutation of an opaque payload.
//
// A session carries three timestamps. CreatedAt is set once. UpdatedAt
// moves whenever the payload is mutated. LastAccessedAt moves on every
// successful Access call, which is the only operation that proves the
// visitor is still present. Idleness is measured from the later of
// UpdatedAt and LastAccessedAt.
//
// There is no background sweeper. When Access finds a session idle for at
// least the configured threshold it deletes the record atomically and
// reports ErrExpired; the very next Access on the same id reports plain
// ErrNotFound. Expiry is a one-shot transition, never a stored state.
// Ended sessions sit outside this mechanism entirely: their records are
// retained for analytics and Access returns them as-is, with no expiry
// and no keep-alive.
//
// Basic usage:
//
//	store := session.NewMongoStore[any](db.Collection("sessions"))
//	mgr, err := session.NewManager[any](store, session.Config{
//		IdleThreshold: time.Hour,
//		Secret:        cfg.SessionSecret,
//	})
//	if err != nil {
//		return err
//	}
//
//	res, err := mgr.Create(ctx, payload)   // res.Persisted may be false
//	sess, err := mgr.Access(ctx, res.ID)   // keep-alive
//	err = mgr.Update(ctx, res.ID, payload) // bumps UpdatedAt only
//
// Create deliberately degrades instead of rejecting: when the store write
// fails the caller still gets a usable id with Persisted=false and the
// failure reason, so a flaky database does not block visitors from
// starting a conversation.
//
// All operations are bounded by the configured OpTimeout and safe for
// concurrent use; the store collaborator is the only shared state.
package session
