// Package notification stores in-app notices pushed to guide clients
// (opening hours, show announcements, service disruptions).
package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the addressed notification does not exist.
	ErrNotFound = errors.New("notification not found")
	// ErrMissingTitle is returned when a notification is created without a title.
	ErrMissingTitle = errors.New("notification title is required")
)

// Notification is one notice shown to a visitor.
type Notification struct {
	ID        string    `bson:"_id" json:"id"`
	SessionID string    `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body,omitempty" json:"body,omitempty"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Repository persists notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	List(ctx context.Context, sessionID string, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// Service validates and stores notifications.
type Service struct {
	repo Repository
}

// NewService creates a notification service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new notification. SessionID may be empty for
// venue-wide notices.
func (s *Service) Create(ctx context.Context, sessionID, title, body string) (Notification, error) {
	if title == "" {
		return Notification{}, ErrMissingTitle
	}
	n := Notification{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, &n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// List returns notifications, newest first, optionally scoped to a session.
func (s *Service) List(ctx context.Context, sessionID string, limit int) ([]Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.List(ctx, sessionID, limit)
}

// MarkRead flags a notification as seen. Idempotent.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}
	return s.repo.MarkRead(ctx, id)
}
