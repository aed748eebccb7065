package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tienda/pkg/config"
)

type parseConfig struct {
	Name    string        `env:"CFG_TEST_NAME" envDefault:"tienda"`
	Limit   int           `env:"CFG_TEST_LIMIT" envDefault:"4"`
	Enabled bool          `env:"CFG_TEST_ENABLED" envDefault:"true"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string `env:"CFG_TEST_FROM_FILE"`
}

func TestParse_Defaults(t *testing.T) {
	var cfg parseConfig
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, "tienda", cfg.Name)
	assert.Equal(t, 4, cfg.Limit)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("CFG_TEST_LIMIT", "6")
	t.Setenv("CFG_TEST_ENABLED", "false")

	var cfg parseConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, 6, cfg.Limit)
	assert.False(t, cfg.Enabled)
}

func TestParse_Errors(t *testing.T) {
	t.Setenv("CFG_TEST_LIMIT", "many")

	var cfg parseConfig
	assert.ErrorIs(t, config.Parse(&cfg), config.ErrParsingConfig)

	var req requiredConfig
	assert.ErrorIs(t, config.Parse(&req), config.ErrParsingConfig)

	assert.ErrorIs(t, config.Parse[parseConfig](nil), config.ErrNilPointer)
	assert.ErrorIs(t, config.Load[parseConfig](nil), config.ErrNilPointer)
}

func TestLoad_CachesPerType(t *testing.T) {
	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CFG_TEST_CACHED", "second")

	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value)

	var fresh cachedConfig
	require.NoError(t, config.Parse(&fresh))
	assert.Equal(t, "second", fresh.Value)
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FROM_FILE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CFG_TEST_FROM_FILE") })

	require.NoError(t, config.LoadFiles(path))

	var cfg fileConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "from-file", cfg.Value)

	assert.ErrorIs(t, config.LoadFiles(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
	assert.NoError(t, config.LoadFiles())
}
