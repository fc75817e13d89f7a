package route

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	visits []Visit
}

func (r *memRepo) Append(ctx context.Context, v *Visit) error {
	r.visits = append(r.visits, *v)
	return nil
}

func (r *memRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]Visit, error) {
	out := make([]Visit, 0, len(r.visits))
	for _, v := range r.visits {
		if v.SessionID == sessionID {
			out = append(out, v)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestService_Record(t *testing.T) {
	t.Parallel()

	t.Run("validates inputs", func(t *testing.T) {
		t.Parallel()

		svc := NewService(&memRepo{})
		_, err := svc.Record(context.Background(), "", "Laser Maze")
		require.ErrorIs(t, err, ErrMissingSessionID)

		_, err = svc.Record(context.Background(), "sess1", "")
		require.ErrorIs(t, err, ErrMissingExhibit)
	})

	t.Run("records visits in order", func(t *testing.T) {
		t.Parallel()

		repo := &memRepo{}
		svc := NewService(repo)

		_, err := svc.Record(context.Background(), "sess1", "Laser Maze")
		require.NoError(t, err)
		_, err = svc.Record(context.Background(), "sess1", "Mirror Maze")
		require.NoError(t, err)

		visits, err := svc.List(context.Background(), "sess1", 0)
		require.NoError(t, err)
		require.Len(t, visits, 2)
		assert.Equal(t, "Laser Maze", visits[0].Exhibit)
		assert.Equal(t, "Mirror Maze", visits[1].Exhibit)
	})
}

func TestFormatWindow(t *testing.T) {
	t.Parallel()

	t.Run("renders venue local time with a one-day window", func(t *testing.T) {
		t.Parallel()

		start := time.Date(2026, 3, 14, 1, 30, 0, 0, time.UTC)
		w := FormatWindow(start, start)

		assert.Equal(t, "2026-03-14T09:30:00+08:00", w.StartTime)
		assert.Equal(t, "2026-03-15T09:30:00+08:00", w.EndTime)
		assert.Equal(t, "2026-03-14T09:30:00+08:00", w.UpdatedAt)
	})

	t.Run("zero times stay empty", func(t *testing.T) {
		t.Parallel()

		w := FormatWindow(time.Time{}, time.Time{})
		assert.Empty(t, w.StartTime)
		assert.Empty(t, w.EndTime)
		assert.Empty(t, w.UpdatedAt)
	})
}
