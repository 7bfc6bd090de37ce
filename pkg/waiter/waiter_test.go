package waiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/pkg/config"
	"github.com/dmitrymomot/pagekit/pkg/loadable"
	"github.com/dmitrymomot/pagekit/pkg/waiter"
)

type slowPage struct {
	loadable.State
	readyAfter int
	polls      int
}

func TestUntil(t *testing.T) {
	t.Run("returns immediately when the condition already holds", func(t *testing.T) {
		w := waiter.New(waiter.WithTimeout(time.Second), waiter.WithInterval(time.Millisecond))

		calls := 0
		err := w.Until(context.Background(), func(context.Context) bool {
			calls++
			return true
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("polls until the condition flips", func(t *testing.T) {
		w := waiter.New(waiter.WithTimeout(time.Second), waiter.WithInterval(time.Millisecond))

		calls := 0
		err := w.Until(context.Background(), func(context.Context) bool {
			calls++
			return calls >= 3
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the timeout", func(t *testing.T) {
		w := waiter.New(waiter.WithTimeout(10*time.Millisecond), waiter.WithInterval(time.Millisecond))

		err := w.Until(context.Background(), func(context.Context) bool { return false })
		assert.ErrorIs(t, err, waiter.ErrNotReady)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		w := waiter.New(waiter.WithTimeout(time.Minute), waiter.WithInterval(time.Millisecond))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := w.Until(ctx, func(context.Context) bool { return false })
		assert.Error(t, err)
	})

	t.Run("rejects a nil condition", func(t *testing.T) {
		w := waiter.New()
		assert.ErrorIs(t, w.Until(context.Background(), nil), waiter.ErrNilCondition)
	})
}

func TestUntilLoaded(t *testing.T) {
	t.Run("passes once the page reports loaded", func(t *testing.T) {
		reg := loadable.NewRegistry(loadable.WithoutDefaultCheck())
		require.NoError(t, reg.Register((*slowPage)(nil), func(h loadable.Host) loadable.Outcome {
			p := h.(*slowPage)
			p.polls++
			if p.polls >= p.readyAfter {
				return loadable.Pass()
			}
			return loadable.Fail("still rendering")
		}))

		w := waiter.New(waiter.WithTimeout(time.Second), waiter.WithInterval(time.Millisecond))
		page := &slowPage{readyAfter: 3}

		require.NoError(t, w.UntilLoaded(context.Background(), reg, page))
		assert.Equal(t, 3, page.polls)
		assert.Empty(t, page.LoadError())
	})

	t.Run("carries the last diagnostic on timeout", func(t *testing.T) {
		reg := loadable.NewRegistry(loadable.WithoutDefaultCheck())
		require.NoError(t, reg.Register((*slowPage)(nil), func(h loadable.Host) loadable.Outcome {
			return loadable.Fail("spinner still visible")
		}))

		w := waiter.New(waiter.WithTimeout(10*time.Millisecond), waiter.WithInterval(time.Millisecond))
		page := &slowPage{}

		err := w.UntilLoaded(context.Background(), reg, page)
		require.Error(t, err)
		require.True(t, loadable.IsNotLoadedError(err))

		var notLoaded *loadable.NotLoadedError
		require.ErrorAs(t, err, &notLoaded)
		assert.Equal(t, "spinner still visible", notLoaded.Message)
	})
}

func TestFromEnv(t *testing.T) {
	config.Reset()
	t.Setenv("PAGEKIT_WAIT_TIMEOUT", "3ms")
	t.Setenv("PAGEKIT_POLL_INTERVAL", "1ms")

	w, err := waiter.FromEnv()
	require.NoError(t, err)

	start := time.Now()
	err = w.Until(context.Background(), func(context.Context) bool { return false })
	assert.ErrorIs(t, err, waiter.ErrNotReady)
	assert.Less(t, time.Since(start), time.Second)
}
