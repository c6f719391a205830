package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// refreshBuffer is subtracted from the provider TTL so the cached
// token is renewed before it literally expires mid-request.
const refreshBuffer = 60 * time.Second

// fetchTokenFunc exchanges client credentials for a bearer token and
// its provider-reported TTL.
type fetchTokenFunc func(ctx context.Context) (token string, ttl time.Duration, err error)

// TokenCache holds one reusable bearer token for the provider.
// Concurrent callers hitting an expired window converge on a single
// in-flight credential exchange.
type TokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time

	now   func() time.Time
	fetch fetchTokenFunc
	group singleflight.Group
}

func NewTokenCache(fetch fetchTokenFunc) *TokenCache {
	return &TokenCache{
		now:   time.Now,
		fetch: fetch,
	}
}

// Get returns the cached token while it is still valid, refreshing it
// through a single-flight credential exchange otherwise.
func (c *TokenCache) Get(ctx context.Context) (string, error) {
	if token, ok := c.cached(); ok {
		return token, nil
	}

	v, err, _ := c.group.Do("token", func() (interface{}, error) {
		// A caller that queued behind the refresh sees the fresh token.
		if token, ok := c.cached(); ok {
			return token, nil
		}

		token, ttl, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.token = token
		c.expiresAt = c.now().Add(ttl - refreshBuffer)
		c.mu.Unlock()

		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *TokenCache) cached() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, true
	}
	return "", false
}
