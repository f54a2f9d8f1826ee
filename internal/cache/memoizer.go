package cache

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/rpgo/surplus-calculator/internal/calculation"
	"github.com/rpgo/surplus-calculator/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Comparer runs a scenario comparison
type Comparer interface {
	Compare(ctx context.Context, cfg *domain.Configuration) (*domain.ScenarioComparison, error)
}

// Memoizer answers repeated comparisons from a cache and collapses concurrent
// identical requests into one engine run. Cache failures degrade to a direct
// engine call.
type Memoizer struct {
	next   Comparer
	cache  Cache
	group  singleflight.Group
	logger calculation.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemoizer wraps next with cache
func NewMemoizer(next Comparer, cache Cache, logger calculation.Logger) *Memoizer {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Memoizer{next: next, cache: cache, logger: logger}
}

// Compare returns the cached comparison for cfg, computing it on a miss
func (m *Memoizer) Compare(ctx context.Context, cfg *domain.Configuration) (*domain.ScenarioComparison, error) {
	if cfg == nil {
		return m.next.Compare(ctx, cfg)
	}
	key, err := Key(cfg)
	if err != nil {
		return nil, err
	}

	if cached, ok := m.lookup(ctx, key); ok {
		m.hits.Add(1)
		return cached, nil
	}
	m.misses.Add(1)

	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		result, err := m.next.Compare(ctx, cfg)
		if err != nil {
			return nil, err
		}
		m.store(ctx, key, result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ScenarioComparison), nil
}

func (m *Memoizer) lookup(ctx context.Context, key string) (*domain.ScenarioComparison, bool) {
	data, ok, err := m.cache.Get(ctx, key)
	if err != nil {
		m.logger.Warnf("cache lookup failed for %s: %v", key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var result domain.ScenarioComparison
	if err := json.Unmarshal(data, &result); err != nil {
		m.logger.Warnf("discarding undecodable cache entry %s: %v", key, err)
		return nil, false
	}
	return &result, true
}

func (m *Memoizer) store(ctx context.Context, key string, result *domain.ScenarioComparison) {
	data, err := json.Marshal(result)
	if err != nil {
		m.logger.Errorf("encode comparison for cache: %v", err)
		return
	}
	if err := m.cache.Set(ctx, key, data); err != nil {
		m.logger.Warnf("cache store failed for %s: %v", key, err)
	}
}

// Hits returns how many comparisons were answered from the cache
func (m *Memoizer) Hits() int64 { return m.hits.Load() }

// Misses returns how many comparisons needed an engine run
func (m *Memoizer) Misses() int64 { return m.misses.Load() }
