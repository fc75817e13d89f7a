// Package route tracks which exhibits a session visited, for the guide's
// "your day" recap and venue analytics.
package route

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMissingSessionID is returned when a visit is not tied to a session.
	ErrMissingSessionID = errors.New("session id is required")
	// ErrMissingExhibit is returned when a visit names no exhibit.
	ErrMissingExhibit = errors.New("exhibit is required")
)

// Visit records one exhibit stop on a visitor's route.
type Visit struct {
	ID        string    `bson:"_id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Exhibit   string    `bson:"exhibit" json:"exhibit"`
	VisitedAt time.Time `bson:"visitedAt" json:"visitedAt"`
}

// Repository persists route visits.
type Repository interface {
	Append(ctx context.Context, v *Visit) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]Visit, error)
}

// Service validates and records visits.
type Service struct {
	repo Repository
}

// NewService creates a route service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends an exhibit stop to the session's route.
func (s *Service) Record(ctx context.Context, sessionID, exhibitName string) (Visit, error) {
	if sessionID == "" {
		return Visit{}, ErrMissingSessionID
	}
	if exhibitName == "" {
		return Visit{}, ErrMissingExhibit
	}
	v := Visit{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Exhibit:   exhibitName,
		VisitedAt: time.Now(),
	}
	if err := s.repo.Append(ctx, &v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

// List returns the visits of a session in visit order.
func (s *Service) List(ctx context.Context, sessionID string, limit int) ([]Visit, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListBySession(ctx, sessionID, limit)
}
