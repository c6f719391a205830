package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCacheReusesValidToken(t *testing.T) {
	var calls int32
	cache := NewTokenCache(func(_ context.Context) (string, time.Duration, error) {
		atomic.AddInt32(&calls, 1)
		return "tok-1", time.Hour, nil
	})

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	second, err := cache.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tok-1", first)
	assert.Equal(t, "tok-1", second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTokenCacheRefreshesAfterExpiry(t *testing.T) {
	var calls int32
	cache := NewTokenCache(func(_ context.Context) (string, time.Duration, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			return "tok-1", 2 * time.Minute, nil
		}
		return "tok-2", time.Hour, nil
	})

	current := time.Now()
	cache.now = func() time.Time { return current }

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", first)

	// A 2-minute TTL minus the 60s refresh buffer leaves a 1-minute
	// usable window; 90 seconds later the token must be re-fetched.
	current = current.Add(90 * time.Second)

	second, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", second)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestTokenCacheSingleFlight(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	cache := NewTokenCache(func(_ context.Context) (string, time.Duration, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "tok-1", time.Hour, nil
	})

	const goroutines = 8
	var wg sync.WaitGroup
	var started sync.WaitGroup
	wg.Add(goroutines)
	started.Add(goroutines)

	tokens := make([]string, goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			started.Done()
			token, err := cache.Get(context.Background())
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}

	started.Wait()
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, token := range tokens {
		assert.Equal(t, "tok-1", token)
	}
}

func TestTokenCacheFetchErrorNotCached(t *testing.T) {
	var calls int32
	cache := NewTokenCache(func(_ context.Context) (string, time.Duration, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", 0, errors.New("grant rejected")
		}
		return "tok-1", time.Hour, nil
	})

	_, err := cache.Get(context.Background())
	require.Error(t, err)

	token, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
