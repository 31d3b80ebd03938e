package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func countingLoader(calls *int, values ...[]string) Loader[[]string] {
	return func(context.Context) ([]string, error) {
		v := values[*calls%len(values)]
		*calls++
		return v, nil
	}
}

func TestSnapshot_ServesFreshValueWithoutReload(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	snap := NewSnapshot[[]string](5*time.Second, WithClock(clock.Now))

	calls := 0
	load := countingLoader(&calls, []string{"soup", "salad"}, []string{"changed"})

	first, err := snap.GetOrLoad(context.Background(), load)
	require.NoError(t, err)

	clock.Advance(5*time.Second - time.Millisecond)
	second, err := snap.GetOrLoad(context.Background(), load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second read inside the window must not hit storage")
	assert.Equal(t, first, second)
}

func TestSnapshot_ReloadsAfterWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	snap := NewSnapshot[[]string](5*time.Second, WithClock(clock.Now))

	calls := 0
	load := countingLoader(&calls, []string{"soup"}, []string{"stew"})

	_, err := snap.GetOrLoad(context.Background(), load)
	require.NoError(t, err)

	clock.Advance(5*time.Second + time.Millisecond)
	got, err := snap.GetOrLoad(context.Background(), load)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"stew"}, got)
}

func TestSnapshot_ExactWindowIsStale(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	snap := NewSnapshot[int](time.Second, WithClock(clock.Now))

	calls := 0
	load := func(context.Context) (int, error) { calls++; return calls, nil }

	_, _ = snap.GetOrLoad(context.Background(), load)
	clock.Advance(time.Second)
	got, err := snap.GetOrLoad(context.Background(), load)

	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestSnapshot_LoadErrorIsNotCached(t *testing.T) {
	snap := NewSnapshot[int](time.Minute)
	boom := errors.New("mongo down")

	_, err := snap.GetOrLoad(context.Background(), func(context.Context) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)

	got, err := snap.GetOrLoad(context.Background(), func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestSnapshot_Observer(t *testing.T) {
	var hits, misses int
	snap := NewSnapshot[int](time.Minute, WithObserver(func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	}))
	load := func(context.Context) (int, error) { return 1, nil }

	_, _ = snap.GetOrLoad(context.Background(), load)
	_, _ = snap.GetOrLoad(context.Background(), load)
	_, _ = snap.GetOrLoad(context.Background(), load)

	assert.Equal(t, 1, misses)
	assert.Equal(t, 2, hits)
}

func TestSnapshot_ConcurrentReaders(t *testing.T) {
	snap := NewSnapshot[int](time.Minute)
	load := func(context.Context) (int, error) { return 42, nil }

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := snap.GetOrLoad(context.Background(), load)
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()
}
