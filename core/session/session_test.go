package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudgyt/scaiguide/core/session"
)

func TestSession_LastActive(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("uses updatedAt when later", func(t *testing.T) {
		t.Parallel()

		s := session.Session[any]{
			UpdatedAt:      now,
			LastAccessedAt: now.Add(-time.Minute),
		}
		assert.Equal(t, now, s.LastActive())
	})

	t.Run("uses lastAccessedAt when later", func(t *testing.T) {
		t.Parallel()

		s := session.Session[any]{
			UpdatedAt:      now.Add(-time.Minute),
			LastAccessedAt: now,
		}
		assert.Equal(t, now, s.LastActive())
	})
}

func TestSession_IdleFor(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("measures from last activity", func(t *testing.T) {
		t.Parallel()

		s := session.Session[any]{LastAccessedAt: now.Add(-30 * time.Minute)}
		assert.InDelta(t, 30*time.Minute, s.IdleFor(now), float64(time.Second))
	})

	t.Run("floors negative idle at zero on clock skew", func(t *testing.T) {
		t.Parallel()

		s := session.Session[any]{LastAccessedAt: now.Add(time.Minute)}
		assert.Equal(t, time.Duration(0), s.IdleFor(now))
	})
}

func TestNormalizePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{
			name: "object string is parsed",
			in:   `{"a":1}`,
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "array string is parsed",
			in:   `[1,2]`,
			want: []any{float64(1), float64(2)},
		},
		{
			name: "quoted string is unquoted",
			in:   `"hello"`,
			want: "hello",
		},
		{
			name: "plain text passes through",
			in:   "Initial Data - tony",
			want: "Initial Data - tony",
		},
		{
			name: "malformed json passes through",
			in:   `{"a":`,
			want: `{"a":`,
		},
		{
			name: "non-string passes through",
			in:   42,
			want: 42,
		},
		{
			name: "leading whitespace is tolerated",
			in:   "  {\"b\":true}",
			want: map[string]any{"b": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, session.NormalizePayload(tt.in))
		})
	}
}

func TestIDGenerator(t *testing.T) {
	t.Parallel()

	t.Run("produces fixed-length url-safe ids", func(t *testing.T) {
		t.Parallel()

		gen := session.NewIDGenerator("secret")
		id, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, id, 12)
		assert.NotContains(t, id, "+")
		assert.NotContains(t, id, "/")
		assert.NotContains(t, id, "=")
	})

	t.Run("never repeats in practice", func(t *testing.T) {
		t.Parallel()

		gen := session.NewIDGenerator("secret")
		seen := make(map[string]bool, 1000)
		for range 1000 {
			id, err := gen.Generate()
			require.NoError(t, err)
			require.False(t, seen[id], "collision on %q", id)
			seen[id] = true
		}
	})
}
