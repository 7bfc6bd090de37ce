package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/pkg/config"
)

type testSettings struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"pagekit"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"5s"`
	Strict  bool          `env:"CONFIG_TEST_STRICT" envDefault:"false"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.Reset()

		var s testSettings
		require.NoError(t, config.Load(&s))
		assert.Equal(t, "pagekit", s.Name)
		assert.Equal(t, 5*time.Second, s.Timeout)
		assert.False(t, s.Strict)
	})

	t.Run("reads the environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_NAME", "suite")
		t.Setenv("CONFIG_TEST_TIMEOUT", "250ms")
		t.Setenv("CONFIG_TEST_STRICT", "true")

		var s testSettings
		require.NoError(t, config.Load(&s))
		assert.Equal(t, "suite", s.Name)
		assert.Equal(t, 250*time.Millisecond, s.Timeout)
		assert.True(t, s.Strict)
	})

	t.Run("serves repeated loads from the cache", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_NAME", "first")

		var a testSettings
		require.NoError(t, config.Load(&a))
		require.Equal(t, "first", a.Name)

		t.Setenv("CONFIG_TEST_NAME", "second")
		var b testSettings
		require.NoError(t, config.Load(&b))
		assert.Equal(t, "first", b.Name, "cached value wins until Reset")
	})

	t.Run("rejects a nil destination", func(t *testing.T) {
		err := config.Load[testSettings](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("reports unparsable values", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_TIMEOUT", "not-a-duration")

		var s testSettings
		err := config.Load(&s)
		assert.ErrorIs(t, err, config.ErrParse)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_TIMEOUT", "bogus")

		var s testSettings
		assert.Panics(t, func() { config.MustLoad(&s) })
	})
}
