package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests expire entries without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(t *testing.T, capacity int, ttl time.Duration) (*ttlCache, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := newTTLCache(capacity, ttl)
	c.clock = clock.Now
	t.Cleanup(c.Stop)
	return c, clock
}

func cachedProduct(sku string) model.BoxProduct {
	p := mugProduct()
	p.ID = "id-" + sku
	p.SKU = sku
	return p
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(*ttlCache, *fakeClock)
		key           string
		expectedSKU   string
		expectedFound bool
	}{
		{
			name: "returns value when present and fresh",
			setup: func(c *ttlCache, _ *fakeClock) {
				c.Set("id-MUG", cachedProduct("MUG"))
			},
			key:           "id-MUG",
			expectedSKU:   "MUG",
			expectedFound: true,
		},
		{
			name:          "misses unknown key",
			setup:         func(*ttlCache, *fakeClock) {},
			key:           "id-NOPE",
			expectedFound: false,
		},
		{
			name: "misses expired entry",
			setup: func(c *ttlCache, clock *fakeClock) {
				c.Set("id-MUG", cachedProduct("MUG"))
				clock.Advance(2 * time.Minute)
			},
			key:           "id-MUG",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache(t, 10, time.Minute)
			tt.setup(c, clock)

			value, found := c.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedSKU, value.SKU)
			}
		})
	}
}

func TestTTLCache_ExpiredEntryIsRemoved(t *testing.T) {
	c, clock := newTestCache(t, 10, time.Minute)
	c.Set("id-MUG", cachedProduct("MUG"))
	clock.Advance(time.Minute + time.Second)

	_, found := c.Get("id-MUG")

	assert.False(t, found)
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(t, 2, time.Minute)

	c.Set("a", cachedProduct("A"))
	c.Set("b", cachedProduct("B"))
	_, _ = c.Get("a")
	c.Set("c", cachedProduct("C"))

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.True(t, okA)
	assert.False(t, okB, "b was least recently used")
	assert.True(t, okC)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_UpdateExistingEntry(t *testing.T) {
	c, clock := newTestCache(t, 10, time.Minute)

	c.Set("id-MUG", cachedProduct("MUG"))
	clock.Advance(50 * time.Second)

	updated := cachedProduct("MUG")
	updated.Name = "Taza renombrada"
	c.Set("id-MUG", updated)
	clock.Advance(50 * time.Second)

	value, ok := c.Get("id-MUG")
	require.True(t, ok, "update refreshes the TTL")
	assert.Equal(t, "Taza renombrada", value.Name)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_ReturnsCopies(t *testing.T) {
	c, _ := newTestCache(t, 10, time.Minute)
	price := 150.0
	original := cachedProduct("MUG")
	original.BoxInfo.PricePerBox = &price
	original.TechnicalInfo = map[string]interface{}{"color": "white"}

	c.Set("id-MUG", original)
	price = 1
	original.TechnicalInfo["color"] = "red"

	first, ok := c.Get("id-MUG")
	require.True(t, ok)
	assert.Equal(t, 150.0, *first.BoxInfo.PricePerBox)
	assert.Equal(t, "white", first.TechnicalInfo["color"])

	*first.BoxInfo.PricePerBox = 2
	second, _ := c.Get("id-MUG")
	assert.Equal(t, 150.0, *second.BoxInfo.PricePerBox)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c, _ := newTestCache(t, 10, time.Minute)
	c.Set("a", cachedProduct("A"))
	c.Set("b", cachedProduct("B"))

	c.Invalidate("a")
	c.Invalidate("missing")

	_, okA := c.Get("a")
	assert.False(t, okA)
	assert.Equal(t, 1, c.Metrics().Size)

	c.Clear()

	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Zero(t, m.Hits)
	assert.Zero(t, m.Misses)
	_, okB := c.Get("b")
	assert.False(t, okB)
}

func TestTTLCache_Cleanup(t *testing.T) {
	c, clock := newTestCache(t, 10, time.Minute)
	c.Set("old", cachedProduct("OLD"))
	clock.Advance(30 * time.Second)
	c.Set("new", cachedProduct("NEW"))
	clock.Advance(45 * time.Second)

	c.cleanup()

	assert.Equal(t, 1, c.Metrics().Size)
	_, ok := c.Get("new")
	assert.True(t, ok)
}

func TestTTLCache_Metrics(t *testing.T) {
	c, _ := newTestCache(t, 5, time.Minute)
	c.Set("a", cachedProduct("A"))
	_, _ = c.Get("a")
	_, _ = c.Get("missing")

	m := c.Metrics()
	assert.Equal(t, cache.Metrics{Hits: 1, Misses: 1, Size: 1, Capacity: 5}, m)
}

func TestTTLCache_StopIsIdempotent(t *testing.T) {
	c := newTTLCache(1, time.Minute)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}

func TestTTLCache_ImplementsInterface(t *testing.T) {
	var _ cache.CacheWithMetrics = newTTLCache(1, time.Minute)
}

func TestTTLCache_Concurrency(t *testing.T) {
	c, _ := newTestCache(t, 50, time.Minute)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k-%d", (g*31+i)%80)
				c.Set(key, cachedProduct(key))
				_, _ = c.Get(key)
				if i%17 == 0 {
					c.Invalidate(key)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Metrics().Size, 50)
}
