package lookup

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
)

type cacheKey struct {
	mode  Mode
	input string
}

// ResultCache keeps the most recently used query results.
// Results are safe to reuse because the structures behind them never change.
type ResultCache struct {
	entries     map[cacheKey][]Record
	accessTime  map[cacheKey]int64
	accessCount int64
	hits        int64
	maxEntries  int
	mu          sync.Mutex
}

// NewResultCache returns a cache bounded to maxEntries results.
func NewResultCache(maxEntries int) *ResultCache {
	return &ResultCache{
		entries:    make(map[cacheKey][]Record, maxEntries),
		accessTime: make(map[cacheKey]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached result for (mode, input), if any.
func (rc *ResultCache) Get(mode Mode, input string) ([]Record, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	key := cacheKey{mode: mode, input: input}
	recs, ok := rc.entries[key]
	if !ok {
		return nil, false
	}
	rc.hits++
	rc.accessTime[key] = rc.nextAccessTime()
	return recs, true
}

// Put stores recs for (mode, input), evicting the least recently used entry when full.
func (rc *ResultCache) Put(mode Mode, input string, recs []Record) {
	if rc.maxEntries <= 0 {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	key := cacheKey{mode: mode, input: input}
	if _, exists := rc.entries[key]; !exists && len(rc.entries) >= rc.maxEntries {
		rc.evictLRU()
	}
	rc.entries[key] = recs
	rc.accessTime[key] = rc.nextAccessTime()
}

// Stats reports the cache size and hit count.
func (rc *ResultCache) Stats() map[string]int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	return map[string]int{
		"cacheEntries":    len(rc.entries),
		"maxCacheEntries": rc.maxEntries,
		"cacheHits":       int(rc.hits),
	}
}

func (rc *ResultCache) nextAccessTime() int64 {
	rc.accessCount++
	return rc.accessCount
}

func (rc *ResultCache) evictLRU() {
	var oldest cacheKey
	var oldestTime int64 = math.MaxInt64
	found := false

	for key, t := range rc.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = key
			found = true
		}
	}

	if found {
		delete(rc.entries, oldest)
		delete(rc.accessTime, oldest)
		log.Debugf("Evicted %s query '%s' from result cache", oldest.mode, oldest.input)
	}
}
