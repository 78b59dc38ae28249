package services

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// QueryFunc computes one read-model from current store state
type QueryFunc func() (any, error)

// QueryResult is the shape every read-model query returns to its consumers.
// Data holds the last successfully computed value even while a refresh is in
// flight (stale-while-revalidate) or after a failed refresh.
type QueryResult struct {
	Data      any  `json:"data"`
	IsLoading bool `json:"isLoading"`
	IsError   bool `json:"isError"`
}

type cacheEntry struct {
	query  QueryFunc
	data   any
	err    error
	loaded bool
	stale  bool

	// fetching is non-nil while a refetch is in flight; it is closed when
	// the refetch completes. Concurrent refetches of the same key join the
	// in-flight call instead of racing it.
	fetching chan struct{}
}

// Cache holds named read-models keyed by query name plus any parameters that
// affect the result, so two parameterizations of one query cache and
// invalidate independently. One cache instance is shared process-wide.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

// NewCache creates an empty read-model cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Register adds a read-model under a key. Registering an existing key
// replaces its query and discards its cached value.
func (c *Cache) Register(key string, query QueryFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &cacheEntry{query: query, stale: true}
}

// Get serves the cached value immediately. A stale or never-computed entry
// triggers an asynchronous refetch; the previous value (or nil on first
// read) is returned with IsLoading set while the refetch runs.
func (c *Cache) Get(key string) QueryResult {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return QueryResult{IsError: true}
	}

	needsFetch := (e.stale || !e.loaded) && e.fetching == nil
	result := QueryResult{
		Data:      e.data,
		IsLoading: e.fetching != nil || e.stale || !e.loaded,
		IsError:   e.err != nil,
	}
	c.mu.Unlock()

	if needsFetch {
		go c.Refetch(key)
	}
	return result
}

// Invalidate marks a read-model stale. The next Get or background tick
// recomputes it; readers keep seeing the previous value until then.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.stale = true
	}
}

// InvalidateAll marks every registered read-model stale
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		e.stale = true
	}
}

// Refetch recomputes a read-model and blocks until done. If a refetch for
// the key is already in flight, the call waits for that one instead of
// starting another, so concurrent refetches cannot write out of order. A
// failing query keeps the previous good value and marks the entry errored.
func (c *Cache) Refetch(key string) error {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("unknown read-model: %s", key)
	}

	if e.fetching != nil {
		done := e.fetching
		c.mu.Unlock()
		<-done
		c.mu.Lock()
		err := e.err
		c.mu.Unlock()
		return err
	}

	done := make(chan struct{})
	e.fetching = done
	query := e.query
	c.mu.Unlock()

	data, err := query()

	c.mu.Lock()
	e.fetching = nil
	e.stale = false
	if err != nil {
		e.err = err
		log.Printf("[CACHE] Read-model %s failed, keeping previous value: %v", key, err)
	} else {
		e.data = data
		e.err = nil
		e.loaded = true
	}
	c.mu.Unlock()

	close(done)
	return err
}

// RefetchAll recomputes every registered read-model, blocking until all are
// fresh. Used after a local mutation so readers in this process never see a
// stale cache once the write has completed.
func (c *Cache) RefetchAll() {
	c.mu.Lock()
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	c.mu.Unlock()

	for _, key := range keys {
		if err := c.Refetch(key); err != nil {
			log.Printf("[CACHE] Refetch of %s failed: %v", key, err)
		}
	}
}

// StartBackgroundRefresh refetches one read-model on a fixed interval as a
// backstop against missed change notifications. The optional changed func
// lets the caller skip recomputation when nothing changed (e.g. by checking
// the store revision). Returns a stop function.
func (c *Cache) StartBackgroundRefresh(key string, interval time.Duration, changed func() bool) func() {
	quit := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if changed != nil && !changed() {
					continue
				}
				if err := c.Refetch(key); err != nil {
					log.Printf("[CACHE] Background refresh of %s failed: %v", key, err)
				}
			case <-quit:
				return
			}
		}
	}()

	return func() { close(quit) }
}
