// Package cache defines the product record cache contract.
package cache

import "github.com/guttosm/boxcalc-service/internal/domain/model"

// Cache stores product records by ID.
// Implementations return copies so callers cannot mutate cached records.
type Cache interface {
	Get(key string) (model.BoxProduct, bool)
	Set(key string, value model.BoxProduct)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRatio returns hits / (hits + misses), or 0 before any lookup.
func (m Metrics) HitRatio() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
