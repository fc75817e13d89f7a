package session

import (
	"context"
	"time"
)

// Store defines the document-store collaborator for session persistence.
// Implementations must be safe for concurrent use and must assign
// timestamps server-side on write, so the store is the clock authority.
//
// Every method that addresses a single record returns ErrNotFound when the
// record is absent, except Delete which treats absence as success.
type Store[Data any] interface {
	// Get returns the record for id.
	Get(ctx context.Context, id string) (*Session[Data], error)

	// Create persists a new record with createdAt, updatedAt and
	// lastAccessedAt all set to the store's current time.
	Create(ctx context.Context, sess *Session[Data]) error

	// SetData overwrites the payload and refreshes updatedAt only.
	SetData(ctx context.Context, id string, data Data) error

	// Touch refreshes lastAccessedAt only.
	Touch(ctx context.Context, id string) error

	// SetStatus records a status transition and refreshes updatedAt.
	SetStatus(ctx context.Context, id string, status Status, reason string) error

	// Delete removes the record. Idempotent: deleting an absent record
	// is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteIfIdleSince atomically deletes the record only if both
	// updatedAt and lastAccessedAt are at or before cutoff. Returns true
	// when this call removed the record. A concurrent keep-alive that
	// moved a timestamp past cutoff makes this a no-op returning false.
	DeleteIfIdleSince(ctx context.Context, id string, cutoff time.Time) (bool, error)

	// List returns up to limit records ordered by creation time.
	List(ctx context.Context, limit int) ([]Session[Data], error)
}
