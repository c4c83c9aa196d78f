package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrforge/cvclient/core/config"
)

type sampleConfig struct {
	Name    string        `env:"CFGTEST_NAME" envDefault:"fallback"`
	Timeout time.Duration `env:"CFGTEST_TIMEOUT" envDefault:"15s"`
}

type requiredConfig struct {
	Secret string `env:"CFGTEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	// No t.Parallel: the package cache and process env are shared state.

	t.Run("reads environment with defaults", func(t *testing.T) {
		t.Setenv("CFGTEST_NAME", "from-env")

		var cfg sampleConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
	})

	t.Run("caches per type", func(t *testing.T) {
		// The value cached by the previous subtest wins over a changed env.
		t.Setenv("CFGTEST_NAME", "changed-later")

		var cfg sampleConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-env", cfg.Name)
	})

	t.Run("required variable missing fails", func(t *testing.T) {
		var cfg requiredConfig
		assert.Error(t, config.Load(&cfg))
	})

	t.Run("rejects non-pointer input", func(t *testing.T) {
		assert.Error(t, config.Load(sampleConfig{}))
	})
}
