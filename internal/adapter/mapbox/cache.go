package mapbox

import (
	"container/list"
	"context"
	"strings"
	"sync"

	"github.com/couchcryptid/ejc-map/internal/domain"
	"github.com/couchcryptid/ejc-map/internal/observability"
)

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache, so repeat
// hosts and re-runs against the same dataset hit the API once per place.
type CachedGeocoder struct {
	inner   domain.Geocoder
	metrics *observability.Metrics

	mu         sync.Mutex
	maxEntries int
	order      *list.List // front = most recently used; values are *cacheEntry
	entries    map[string]*list.Element
}

type cacheEntry struct {
	key    string
	result domain.GeocodingResult
}

// NewCachedGeocoder creates a cache decorator around a geocoder. metrics may be nil.
func NewCachedGeocoder(inner domain.Geocoder, maxEntries int, metrics *observability.Metrics) *CachedGeocoder {
	return &CachedGeocoder{
		inner:      inner,
		metrics:    metrics,
		maxEntries: maxEntries,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

func (c *CachedGeocoder) ForwardGeocode(ctx context.Context, city, country string) (domain.GeocodingResult, error) {
	key := cacheKey(city, country)
	if result, ok := c.get(key); ok {
		c.countCache("hit")
		return result, nil
	}
	c.countCache("miss")

	result, err := c.inner.ForwardGeocode(ctx, city, country)
	if err != nil {
		return result, err
	}
	// Only cache resolved places so transient "not found" responses can be retried.
	if result.Lat != 0 || result.Lon != 0 {
		c.put(key, result)
	}
	return result, nil
}

// cacheKey folds case so inconsistent capitalization in the hand-maintained
// dataset still shares cache entries.
func cacheKey(city, country string) string {
	return strings.ToLower(city) + "|" + strings.ToLower(country)
}

func (c *CachedGeocoder) get(key string) (domain.GeocodingResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return domain.GeocodingResult{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).result, true
}

func (c *CachedGeocoder) put(key string, result domain.GeocodingResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).result = result
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, result: result})

	if c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

func (c *CachedGeocoder) countCache(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.GeocodeCache.WithLabelValues(result).Inc()
}
