package exhibit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudgyt/scaiguide/core/exhibit"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  string
	}{
		{"take me to the laser maze", "Laser Maze"},
		{"where is the MIRROR exhibit", "Mirror Maze"},
		{"I want to see plants and flowers", "Savage Garden"},
		{"how do I get to the toilet", "Male Toilet"},
		{"something about quantum physics", "Quanta School"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			ex, ok := exhibit.Match(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.want, ex.DisplayName)
		})
	}

	t.Run("no match for unrelated text", func(t *testing.T) {
		t.Parallel()

		_, ok := exhibit.Match("what time do you close")
		assert.False(t, ok)
	})

	t.Run("empty query does not match", func(t *testing.T) {
		t.Parallel()

		_, ok := exhibit.Match("   ")
		assert.False(t, ok)
	})

	t.Run("first table entry wins on ambiguity", func(t *testing.T) {
		t.Parallel()

		// "science" appears in both Everyday Science and Some Call It Science.
		ex, ok := exhibit.Match("science stuff")
		require.True(t, ok)
		assert.Equal(t, "Everyday Science", ex.DisplayName)
	})
}

func TestNavigationPrompt(t *testing.T) {
	t.Parallel()

	prompt := exhibit.NavigationPrompt()
	assert.Contains(t, prompt, `"reply"`)
	assert.Contains(t, prompt, "navigate_to_exhibit")

	// Every exhibit must be offered to the model.
	for _, ex := range exhibit.Exhibits {
		assert.True(t, strings.Contains(prompt, ex.DisplayName), "prompt missing %s", ex.DisplayName)
	}
}
