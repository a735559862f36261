package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedCache(t *testing.T) {
	t.Run("set then get returns the value and counts a hit", func(t *testing.T) {
		c := NewUnifiedCache[string](time.Minute, "test", nil)
		c.Set("k", "v")

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v", got)

		m := c.GetMetrics()
		assert.Equal(t, int64(1), m.Hits)
		assert.Equal(t, int64(1), m.Sets)
	})

	t.Run("missing key counts a miss", func(t *testing.T) {
		c := NewUnifiedCache[int](time.Minute, "test", nil)
		_, ok := c.Get("absent")
		assert.False(t, ok)
		assert.Equal(t, int64(1), c.GetMetrics().Misses)
	})

	t.Run("add refuses to overwrite a live entry", func(t *testing.T) {
		c := NewUnifiedCache[string](time.Minute, "test", nil)
		assert.True(t, c.Add("k", "first"))
		assert.False(t, c.Add("k", "second"))

		got, _ := c.Get("k")
		assert.Equal(t, "first", got)
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		c := NewUnifiedCache[string](20*time.Millisecond, "test", nil)
		c.Set("k", "v")
		assert.Eventually(t, func() bool {
			_, ok := c.Get("k")
			return !ok
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("delete runs the eviction callback", func(t *testing.T) {
		c := NewUnifiedCache[string](time.Minute, "test", nil)

		var mu sync.Mutex
		var evicted []string
		c.OnEvicted(func(key, value string) {
			mu.Lock()
			defer mu.Unlock()
			evicted = append(evicted, key+"="+value)
		})

		c.Set("k", "v")
		c.Delete("k")

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{"k=v"}, evicted)
		assert.Equal(t, int64(1), c.GetMetrics().Evictions)
	})

	t.Run("items returns a snapshot", func(t *testing.T) {
		c := NewUnifiedCache[int](time.Minute, "test", nil)
		c.Set("a", 1)
		c.Set("b", 2)
		assert.Equal(t, map[string]int{"a": 1, "b": 2}, c.Items())
		assert.Equal(t, 2, c.Size())

		c.Clear()
		assert.Equal(t, 0, c.Size())
	})
}

func TestCacheManager(t *testing.T) {
	cm := NewCacheManager()
	strs := NewUnifiedCache[string](time.Minute, "strings", nil)
	ints := NewUnifiedCache[int](time.Minute, "ints", nil)
	cm.Register("strings", strs)
	cm.Register("ints", ints)

	strs.Set("a", "x")
	strs.Get("a")
	ints.Get("missing")

	assert.Equal(t, []string{"ints", "strings"}, cm.Names())

	all := cm.GetAllMetrics()
	require.Len(t, all, 2)
	assert.Equal(t, Stats{CacheMetrics: CacheMetrics{Hits: 1, Sets: 1}, Items: 1}, all["strings"])
	assert.Equal(t, Stats{CacheMetrics: CacheMetrics{Misses: 1}}, all["ints"])
}
