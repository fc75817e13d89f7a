package feedback

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	records []Feedback
}

func (r *memRepo) Create(ctx context.Context, fb *Feedback) error {
	r.records = append(r.records, *fb)
	return nil
}

func (r *memRepo) List(ctx context.Context, sessionID string, limit int) ([]Feedback, error) {
	out := make([]Feedback, 0, len(r.records))
	for _, fb := range r.records {
		if sessionID == "" || fb.SessionID == sessionID {
			out = append(out, fb)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeUploader struct {
	lastKey string
}

func (u *fakeUploader) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	u.lastKey = key
	return "https://cdn.example.com/" + key, nil
}

func TestIDGenerator(t *testing.T) {
	t.Parallel()

	gen := newIDGenerator()
	today := time.Now().Format("20060102")

	first := gen.next()
	second := gen.next()

	assert.Equal(t, fmt.Sprintf("fb-%s-0001", today), first)
	assert.Equal(t, fmt.Sprintf("fb-%s-0002", today), second)
	assert.Regexp(t, regexp.MustCompile(`^fb-\d{8}-\d{4}$`), first)
}

// dupRepo enforces id uniqueness like a unique _id index, with a set of
// ids already taken by an earlier process.
type dupRepo struct {
	taken   map[string]bool
	records []Feedback
}

func (r *dupRepo) Create(ctx context.Context, fb *Feedback) error {
	if r.taken[fb.ID] {
		return fmt.Errorf("%w: %s", ErrDuplicateID, fb.ID)
	}
	r.taken[fb.ID] = true
	r.records = append(r.records, *fb)
	return nil
}

func (r *dupRepo) List(ctx context.Context, sessionID string, limit int) ([]Feedback, error) {
	return r.records, nil
}

func TestService_Create_RetriesDuplicateIDs(t *testing.T) {
	t.Parallel()

	t.Run("recovers from ids reissued after a restart", func(t *testing.T) {
		t.Parallel()

		today := time.Now().Format("20060102")
		repo := &dupRepo{taken: map[string]bool{
			fmt.Sprintf("fb-%s-0001", today): true,
		}}
		svc := NewService(repo, nil)

		fb, err := svc.Create(context.Background(), "sess1", 4, "", nil)
		require.NoError(t, err)
		assert.NotEqual(t, fmt.Sprintf("fb-%s-0001", today), fb.ID)
		assert.Len(t, repo.records, 1)
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		t.Parallel()

		repo := &exhaustedRepo{}
		svc := NewService(repo, nil)

		_, err := svc.Create(context.Background(), "sess1", 4, "", nil)
		require.ErrorIs(t, err, ErrDuplicateID)
		assert.Equal(t, createAttempts, repo.calls)
	})
}

// exhaustedRepo reports every id as taken.
type exhaustedRepo struct {
	calls int
}

func (r *exhaustedRepo) Create(ctx context.Context, fb *Feedback) error {
	r.calls++
	return fmt.Errorf("%w: %s", ErrDuplicateID, fb.ID)
}

func (r *exhaustedRepo) List(ctx context.Context, sessionID string, limit int) ([]Feedback, error) {
	return nil, nil
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("rejects out-of-range ratings", func(t *testing.T) {
		t.Parallel()

		svc := NewService(&memRepo{}, nil)
		_, err := svc.Create(context.Background(), "sess1", 0, "", nil)
		require.ErrorIs(t, err, ErrInvalidRating)

		_, err = svc.Create(context.Background(), "sess1", 6, "", nil)
		require.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("requires a session id", func(t *testing.T) {
		t.Parallel()

		svc := NewService(&memRepo{}, nil)
		_, err := svc.Create(context.Background(), "", 5, "", nil)
		require.ErrorIs(t, err, ErrMissingSessionID)
	})

	t.Run("stores a rating with comment", func(t *testing.T) {
		t.Parallel()

		repo := &memRepo{}
		svc := NewService(repo, nil)

		fb, err := svc.Create(context.Background(), "sess1", 4, "great guide", nil)
		require.NoError(t, err)
		assert.Equal(t, 4, fb.Rating)
		assert.NotEmpty(t, fb.ID)
		require.Len(t, repo.records, 1)
	})

	t.Run("uploads the photo before persisting", func(t *testing.T) {
		t.Parallel()

		repo := &memRepo{}
		up := &fakeUploader{}
		svc := NewService(repo, up)

		fb, err := svc.Create(context.Background(), "sess1", 5, "", &Photo{
			ContentType: "image/jpeg",
			Reader:      strings.NewReader("not really a jpeg"),
		})
		require.NoError(t, err)
		assert.Equal(t, "feedback/"+fb.ID, up.lastKey)
		assert.Equal(t, "https://cdn.example.com/feedback/"+fb.ID, fb.PhotoURL)
	})

	t.Run("rejects photos when no uploader is configured", func(t *testing.T) {
		t.Parallel()

		svc := NewService(&memRepo{}, nil)
		_, err := svc.Create(context.Background(), "sess1", 5, "", &Photo{Reader: strings.NewReader("x")})
		require.Error(t, err)
	})
}
