package cache

import (
	"context"
	"time"
)

// Cache stores encoded comparison results by key
type Cache interface {
	// Get returns the value stored under key. A miss is reported with ok=false
	// and a nil error.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key for the cache's TTL
	Set(ctx context.Context, key string, value []byte) error
}

// Cleaner is implemented by caches that expire entries lazily
type Cleaner interface {
	CleanExpired() int
}

// Janitor periodically removes expired entries from registered caches
type Janitor struct {
	caches      []Cleaner
	stopCleanup chan struct{}
	cleanupDone chan struct{}
}

// NewJanitor creates a janitor for the given caches
func NewJanitor(caches ...Cleaner) *Janitor {
	return &Janitor{
		caches:      caches,
		stopCleanup: make(chan struct{}),
		cleanupDone: make(chan struct{}),
	}
}

// Start begins periodic cleanup
func (j *Janitor) Start(interval time.Duration) {
	go j.cleanup(interval)
}

func (j *Janitor) cleanup(interval time.Duration) {
	defer close(j.cleanupDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, c := range j.caches {
				c.CleanExpired()
			}
		case <-j.stopCleanup:
			return
		}
	}
}

// Stop ends the cleanup loop and waits for it to exit. Stop must only be
// called after Start.
func (j *Janitor) Stop() {
	close(j.stopCleanup)
	<-j.cleanupDone
}
