package cache

import (
	"sort"
	"sync"
)

// Source is anything that reports cache counters.
type Source interface {
	GetMetrics() CacheMetrics
	Size() int
}

// Stats is one cache's counters plus its current item count.
type Stats struct {
	CacheMetrics
	Items int `json:"items"`
}

// CacheManager holds the application caches by name so they can be reported
// together.
type CacheManager struct {
	mu     sync.RWMutex
	caches map[string]Source
}

func NewCacheManager() *CacheManager {
	return &CacheManager{caches: make(map[string]Source)}
}

// Register adds or replaces the cache reported under name.
func (cm *CacheManager) Register(name string, c Source) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.caches[name] = c
}

// Names returns the registered cache names in sorted order.
func (cm *CacheManager) Names() []string {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	names := make([]string, 0, len(cm.caches))
	for name := range cm.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAllMetrics returns stats for all caches
func (cm *CacheManager) GetAllMetrics() map[string]Stats {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	out := make(map[string]Stats, len(cm.caches))
	for name, c := range cm.caches {
		out[name] = Stats{CacheMetrics: c.GetMetrics(), Items: c.Size()}
	}
	return out
}
