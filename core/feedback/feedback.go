// Package feedback records visitor ratings for the guide, with an
// optional photo stored in object storage.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

var (
	// ErrInvalidRating is returned for ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrMissingSessionID is returned when feedback is not tied to a session.
	ErrMissingSessionID = errors.New("session id is required")
	// ErrDuplicateID is returned by repositories when an insert collides
	// with an existing record id. Create retries with a fresh id.
	ErrDuplicateID = errors.New("feedback id already exists")
)

// createAttempts bounds id-collision retries on insert.
const createAttempts = 3

// Feedback is one rating record.
type Feedback struct {
	ID        string    `bson:"_id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	PhotoURL  string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Repository persists feedback records.
type Repository interface {
	Create(ctx context.Context, fb *Feedback) error
	List(ctx context.Context, sessionID string, limit int) ([]Feedback, error)
}

// Uploader stores a photo and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// Service validates and stores ratings.
type Service struct {
	repo     Repository
	uploader Uploader
	ids      *idGenerator
}

// NewService creates a feedback service. The uploader may be nil when
// photo upload is not configured; photo submissions are then rejected.
func NewService(repo Repository, uploader Uploader) *Service {
	return &Service{repo: repo, uploader: uploader, ids: newIDGenerator()}
}

// Photo is an optional image attached to a rating.
type Photo struct {
	ContentType string
	Reader      io.Reader
}

// Create validates and persists a rating, uploading the photo first when
// one is attached.
func (s *Service) Create(ctx context.Context, sessionID string, rating int, comment string, photo *Photo) (Feedback, error) {
	if sessionID == "" {
		return Feedback{}, ErrMissingSessionID
	}
	if rating < 1 || rating > 5 {
		return Feedback{}, ErrInvalidRating
	}

	fb := Feedback{
		ID:        s.ids.next(),
		SessionID: sessionID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}

	if photo != nil {
		if s.uploader == nil {
			return Feedback{}, errors.New("photo upload is not configured")
		}
		url, err := s.uploader.Upload(ctx, "feedback/"+fb.ID, photo.ContentType, photo.Reader)
		if err != nil {
			return Feedback{}, fmt.Errorf("upload feedback photo: %w", err)
		}
		fb.PhotoURL = url
	}

	// The per-process sequence can reissue ids after a same-day restart.
	// A duplicate insert skips the sequence forward and retries.
	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		if err = s.repo.Create(ctx, &fb); !errors.Is(err, ErrDuplicateID) {
			break
		}
		s.ids.skip()
		fb.ID = s.ids.next()
	}
	if err != nil {
		return Feedback{}, err
	}
	return fb, nil
}

// List returns feedback, optionally filtered by session.
func (s *Service) List(ctx context.Context, sessionID string, limit int) ([]Feedback, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.List(ctx, sessionID, limit)
}
