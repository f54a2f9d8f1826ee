package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// LRU is an in-memory cache with TTL and size-based eviction
type LRU struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
	now     func() time.Time
}

type cacheItem struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// NewLRU creates an LRU cache holding at most maxSize entries for ttl each.
// A non-positive maxSize means one entry.
func NewLRU(maxSize int, ttl time.Duration) *LRU {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &LRU{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
		now:     time.Now,
	}
}

// Get retrieves a value from the cache
func (c *LRU) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.items[key]
	if !exists {
		return nil, false, nil
	}

	item := elem.Value.(*cacheItem)
	if c.now().After(item.expiresAt) {
		c.removeElement(elem)
		return nil, false, nil
	}

	c.lru.MoveToFront(elem)
	return item.data, true, nil
}

// Set stores a value in the cache
func (c *LRU) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := &cacheItem{
		key:       key,
		data:      value,
		expiresAt: c.now().Add(c.ttl),
	}

	if elem, exists := c.items[key]; exists {
		elem.Value = item
		c.lru.MoveToFront(elem)
		return nil
	}

	c.items[key] = c.lru.PushFront(item)

	if c.lru.Len() > c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
	return nil
}

// Delete removes a key from the cache
func (c *LRU) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.items[key]; exists {
		c.removeElement(elem)
	}
}

func (c *LRU) removeElement(elem *list.Element) {
	item := elem.Value.(*cacheItem)
	delete(c.items, item.key)
	c.lru.Remove(elem)
}

// CleanExpired removes all expired entries and returns how many were removed
func (c *LRU) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var toRemove []*list.Element
	for elem := c.lru.Front(); elem != nil; elem = elem.Next() {
		if now.After(elem.Value.(*cacheItem).expiresAt) {
			toRemove = append(toRemove, elem)
		}
	}
	for _, elem := range toRemove {
		c.removeElement(elem)
	}
	return len(toRemove)
}

// Size returns the current number of entries
func (c *LRU) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
