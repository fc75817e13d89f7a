package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudgyt/scaiguide/core/config"
)

type serverTestConfig struct {
	Port int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
	Name string `env:"CONFIG_TEST_NAME" envDefault:"guide"`
}

type requiredTestConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg serverTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "guide", cfg.Name)
	})

	t.Run("caches per type", func(t *testing.T) {
		var first serverTestConfig
		require.NoError(t, config.Load(&first))

		// Env changes after the first load are not observed.
		t.Setenv("CONFIG_TEST_PORT", "9999")

		var second serverTestConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		var cfg requiredTestConfig
		err := config.Load(&cfg)
		require.Error(t, err)
	})
}
