package obs

import (
	"context"
	"sync"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// CachingRemote memoizes successful reads for the lifetime of the process.
// Writes and deletes pass through untouched and do not invalidate the cache.
type CachingRemote struct {
	next  ports.Remote
	group singleflight.Group

	mu    sync.RWMutex
	reads map[string][]byte
}

// NewCachingRemote wraps next with a read cache.
func NewCachingRemote(next ports.Remote) *CachingRemote {
	return &CachingRemote{
		next:  next,
		reads: make(map[string][]byte),
	}
}

// Get returns the cached bytes of res, reading them once on first use.
func (c *CachingRemote) Get(ctx context.Context, res domain.Resource) ([]byte, error) {
	key := res.String()

	c.mu.RLock()
	data, ok := c.reads[key]
	c.mu.RUnlock()
	if ok {
		return data, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		data, err := c.next.Get(ctx, res)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.reads[key] = data
		c.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Put forwards to the wrapped remote.
func (c *CachingRemote) Put(ctx context.Context, res domain.Resource, data []byte) error {
	return c.next.Put(ctx, res, data)
}

// Delete forwards to the wrapped remote.
func (c *CachingRemote) Delete(ctx context.Context, res domain.Resource) error {
	return c.next.Delete(ctx, res)
}

var _ ports.Remote = (*CachingRemote)(nil)
