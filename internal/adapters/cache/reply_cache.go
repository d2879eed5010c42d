package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// RistrettoReplyCache keeps the reply rendered for each provider message
// SID. Messaging providers redeliver webhooks on slow responses; a
// replayed SID gets the cached reply back and no second store write.
type RistrettoReplyCache struct {
	cache *ristretto.Cache
}

func NewReplyCache(maxItems int64) (*RistrettoReplyCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create reply cache failed: %w", err)
	}
	return &RistrettoReplyCache{cache: c}, nil
}

func (c *RistrettoReplyCache) Get(messageSid string) (string, bool) {
	if v, ok := c.cache.Get(messageSid); ok {
		reply, ok := v.(string)
		return reply, ok
	}
	return "", false
}

func (c *RistrettoReplyCache) Set(messageSid, reply string) {
	c.cache.Set(messageSid, reply, 1)
}

func (c *RistrettoReplyCache) Close() { c.cache.Close() }
