package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestStore(t *testing.T) {
	t.Run("entries expire after the category TTL", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
		store := New(clock)

		store.Set(CategoryHoldings, "k", 42)

		v, ok := store.Get(CategoryHoldings, "k")
		require.True(t, ok)
		require.Equal(t, 42, v)

		clock.advance(5*time.Minute + time.Second)
		_, ok = store.Get(CategoryHoldings, "k")
		require.False(t, ok)
	})

	t.Run("categories expire independently", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
		store := New(clock)

		store.Set(CategoryHoldings, "k", "holdings")
		store.Set(CategoryExchange, "k", "exchange")

		clock.advance(6 * time.Minute)

		_, ok := store.Get(CategoryHoldings, "k")
		require.False(t, ok)
		v, ok := store.Get(CategoryExchange, "k")
		require.True(t, ok)
		require.Equal(t, "exchange", v)
	})

	t.Run("SetTTL overrides the default", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
		store := New(clock)
		store.SetTTL(CategoryHoldings, time.Second)

		store.Set(CategoryHoldings, "k", 1)
		clock.advance(2 * time.Second)

		_, ok := store.Get(CategoryHoldings, "k")
		require.False(t, ok)
	})

	t.Run("Clear scoped to categories", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
		store := New(clock)

		store.Set(CategoryHoldings, "k", 1)
		store.Set(CategoryExchange, "k", 2)

		store.Clear(CategoryHoldings)
		_, ok := store.Get(CategoryHoldings, "k")
		require.False(t, ok)
		_, ok = store.Get(CategoryExchange, "k")
		require.True(t, ok)

		store.Clear()
		_, ok = store.Get(CategoryExchange, "k")
		require.False(t, ok)
	})
}

func TestKey(t *testing.T) {
	require.Equal(t, Key("changes", "AAPL", 3), Key("changes", "AAPL", 3))
	require.NotEqual(t, Key("changes", "AAPL", 3), Key("changes", "AAPL", 4))
	require.NotEqual(t, Key("changes"), Key("correlation"))
}

func TestGetOrCompute(t *testing.T) {
	t.Run("computes once while fresh", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
		store := New(clock)

		calls := 0
		compute := func() (int, error) {
			calls++
			return 7, nil
		}

		v, err := GetOrCompute(store, CategoryPerformance, "k", compute)
		require.NoError(t, err)
		require.Equal(t, 7, v)

		v, err = GetOrCompute(store, CategoryPerformance, "k", compute)
		require.NoError(t, err)
		require.Equal(t, 7, v)
		require.Equal(t, 1, calls)

		clock.advance(time.Hour + time.Second)
		_, err = GetOrCompute(store, CategoryPerformance, "k", compute)
		require.NoError(t, err)
		require.Equal(t, 2, calls)
	})

	t.Run("errors are never cached", func(t *testing.T) {
		store := New(&fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)})

		calls := 0
		compute := func() (int, error) {
			calls++
			return 0, fmt.Errorf("upstream down")
		}

		_, err := GetOrCompute(store, CategoryPerformance, "k", compute)
		require.Error(t, err)
		_, err = GetOrCompute(store, CategoryPerformance, "k", compute)
		require.Error(t, err)
		require.Equal(t, 2, calls)
	})
}
