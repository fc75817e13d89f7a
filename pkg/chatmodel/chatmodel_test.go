package chatmodel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudgyt/scaiguide/pkg/chatmodel"
)

func TestNewOpenAI(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty api key", func(t *testing.T) {
		t.Parallel()

		_, err := chatmodel.NewOpenAI("")
		require.ErrorIs(t, err, chatmodel.ErrInvalidAPIKey)
	})

	t.Run("reports provider and model in name", func(t *testing.T) {
		t.Parallel()

		m, err := chatmodel.NewOpenAI("sk-test", chatmodel.WithOpenAIModel("gpt-4o"))
		require.NoError(t, err)
		assert.Equal(t, "openai/gpt-4o", m.Name())
	})
}

func TestNewAnthropic(t *testing.T) {
	t.Parallel()

	_, err := chatmodel.NewAnthropic("")
	require.ErrorIs(t, err, chatmodel.ErrInvalidAPIKey)
}

func TestNewGoogle(t *testing.T) {
	t.Parallel()

	_, err := chatmodel.NewGoogle(context.Background(), "")
	require.ErrorIs(t, err, chatmodel.ErrInvalidAPIKey)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown provider", func(t *testing.T) {
		t.Parallel()

		_, err := chatmodel.New(context.Background(), chatmodel.Config{Provider: "cohere", APIKey: "k"})
		require.ErrorIs(t, err, chatmodel.ErrUnknownProvider)
	})

	t.Run("empty conversation is rejected before any network call", func(t *testing.T) {
		t.Parallel()

		m, err := chatmodel.NewOpenAI("sk-test")
		require.NoError(t, err)

		_, err = m.Complete(context.Background(), nil)
		require.ErrorIs(t, err, chatmodel.ErrEmptyConversation)
	})
}
