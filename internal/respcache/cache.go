package respcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrWrongType is returned by the typed GetOrFetch when a key already holds
// a value of a different type. Keys are one resource each, so this only
// happens on programmer error.
var ErrWrongType = errors.New("respcache: cached value has unexpected type")

// Recorder receives cache events. Implemented by pkg/metrics; a nil Recorder
// disables recording.
type Recorder interface {
	CacheHit(key string)
	CacheMiss(key string)
	CacheCoalesced(key string)
	CacheError(key string)
}

// State is an observable snapshot of one cache entry.
type State struct {
	HasData   bool
	Loading   bool
	Err       bool
	FetchedAt time.Time
}

// Cache is a process-wide, in-memory store of prior fetch results, keyed by
// resource name. Concurrent requests for the same key are coalesced into a
// single underlying fetch. A failed refresh keeps the previous value
// (stale-but-available) and flags the entry until the next successful fetch.
// The cache is never persisted and lives for the whole process.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
	ttl     time.Duration
	rec     Recorder
	now     func() time.Time
}

type entry struct {
	data      any
	hasData   bool
	err       bool
	loading   int
	fetchedAt time.Time
}

// New creates a cache whose entries go stale after ttl. A ttl of zero means
// entries never go stale and live until invalidated.
func New(ttl time.Duration, rec Recorder) *Cache {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Cache{
		entries: make(map[string]*entry),
		ttl:     ttl,
		rec:     rec,
		now:     time.Now,
	}
}

// GetOrFetch returns the cached value for key when present and fresh;
// otherwise it runs fetcher, at most once per key per staleness window no
// matter how many callers arrive concurrently. On fetch failure the previous
// value, if any, is returned alongside the error.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetcher func(ctx context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	e := c.ensure(key)
	if e.hasData && !c.stale(e) {
		data := e.data
		c.mu.Unlock()
		c.rec.CacheHit(key)
		return data, nil
	}
	first := e.loading == 0
	e.loading++
	c.mu.Unlock()

	if first {
		c.rec.CacheMiss(key)
	} else {
		c.rec.CacheCoalesced(key)
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A coalesced waiter may land here right after the previous fetch
		// resolved; serve the fresh value instead of refetching.
		if data, ok := c.freshValue(key); ok {
			return data, nil
		}

		data, ferr := fetcher(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		fe := c.ensure(key)
		if ferr != nil {
			fe.err = true
			return nil, ferr
		}
		fe.data = data
		fe.hasData = true
		fe.err = false
		fe.fetchedAt = c.now()
		return data, nil
	})

	c.mu.Lock()
	e = c.ensure(key)
	e.loading--
	staleData := e.data
	hasStale := e.hasData
	c.mu.Unlock()

	if err != nil {
		c.rec.CacheError(key)
		if hasStale {
			return staleData, err
		}
		return nil, err
	}
	return v, nil
}

// Invalidate drops an entry, forcing the next GetOrFetch to refetch.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.group.Forget(key)
}

// State returns a snapshot of one entry's loading/error state.
func (c *Cache) State(key string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return State{}
	}
	return State{
		HasData:   e.hasData,
		Loading:   e.loading > 0,
		Err:       e.err,
		FetchedAt: e.fetchedAt,
	}
}

func (c *Cache) ensure(key string) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

func (c *Cache) stale(e *entry) bool {
	if c.ttl == 0 {
		return false
	}
	return c.now().Sub(e.fetchedAt) >= c.ttl
}

func (c *Cache) freshValue(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !e.hasData || c.stale(e) {
		return nil, false
	}
	return e.data, true
}

// GetOrFetch is the typed wrapper around Cache.GetOrFetch.
func GetOrFetch[T any](ctx context.Context, c *Cache, key string, fetcher func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetcher(ctx)
	})
	if v == nil {
		var zero T
		return zero, err
	}
	data, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: key %s", ErrWrongType, key)
	}
	return data, err
}

type nopRecorder struct{}

func (nopRecorder) CacheHit(string)       {}
func (nopRecorder) CacheMiss(string)      {}
func (nopRecorder) CacheCoalesced(string) {}
func (nopRecorder) CacheError(string)     {}
