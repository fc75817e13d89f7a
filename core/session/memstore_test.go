package session_test

import (
	"context"
	"sync"
	"time"

	"github.com/nudgyt/scaiguide/core/session"
)

// memStore is an in-memory Store used for end-to-end lifecycle and race
// tests. Timestamps are assigned inside the store, mirroring the
// server-assigned-timestamp contract of the real document store.
type memStore struct {
	mu   sync.Mutex
	docs map[string]*session.Session[any]
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]*session.Session[any])}
}

func (s *memStore) Get(ctx context.Context, id string) (*session.Session[any], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	cp := *doc
	return &cp, nil
}

func (s *memStore) Create(ctx context.Context, sess *session.Session[any]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	cp := *sess
	cp.CreatedAt = now
	cp.UpdatedAt = now
	cp.LastAccessedAt = now
	s.docs[cp.ID] = &cp
	return nil
}

func (s *memStore) SetData(ctx context.Context, id string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return session.ErrNotFound
	}
	doc.Data = data
	doc.UpdatedAt = time.Now()
	return nil
}

func (s *memStore) Touch(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return session.ErrNotFound
	}
	doc.LastAccessedAt = time.Now()
	return nil
}

func (s *memStore) SetStatus(ctx context.Context, id string, status session.Status, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return session.ErrNotFound
	}
	doc.Status = status
	if reason != "" {
		doc.EndReason = reason
	}
	doc.UpdatedAt = time.Now()
	return nil
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

func (s *memStore) DeleteIfIdleSince(ctx context.Context, id string, cutoff time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return false, nil
	}
	if doc.UpdatedAt.After(cutoff) || doc.LastAccessedAt.After(cutoff) {
		return false, nil
	}
	delete(s.docs, id)
	return true, nil
}

func (s *memStore) List(ctx context.Context, limit int) ([]session.Session[any], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]session.Session[any], 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, *doc)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// backdate shifts every timestamp of a stored session into the past,
// simulating elapsed idle time without sleeping.
func (s *memStore) backdate(id string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return
	}
	doc.CreatedAt = doc.CreatedAt.Add(-d)
	doc.UpdatedAt = doc.UpdatedAt.Add(-d)
	doc.LastAccessedAt = doc.LastAccessedAt.Add(-d)
}
