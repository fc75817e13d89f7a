package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("session not found")
	// ErrExpired is returned by Access when the record existed but was
	// deleted by this call due to inactivity. It matches ErrNotFound via
	// errors.Is so callers that only care about absence need one check.
	ErrExpired = fmt.Errorf("%w: expired due to inactivity", ErrNotFound)
	// ErrMissingID is returned when an operation is called without a session id.
	ErrMissingID = errors.New("session id is required")
	// ErrMissingPayload is returned when Update is called without a payload.
	ErrMissingPayload = errors.New("session payload is required")
	// ErrMissingSecret is returned when the manager is constructed without an HMAC secret.
	ErrMissingSecret = errors.New("session id secret is required")
	// ErrStoreUnavailable wraps failures and timeouts from the document store.
	ErrStoreUnavailable = errors.New("session store unavailable")
)
