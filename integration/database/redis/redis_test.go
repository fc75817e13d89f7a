package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nudgyt/scaiguide/integration/database/redis"
)

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{})
		require.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("malformed url", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL: "http://not-redis",
		})
		require.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})
}
