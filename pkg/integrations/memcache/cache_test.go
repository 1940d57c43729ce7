package memcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache_SetGetDelete(t *testing.T) {
	c := New[string, float64]()

	_, ok := c.Get("bitcoin")
	require.False(t, ok)

	c.Set("bitcoin", 50000)
	val, ok := c.Get("bitcoin")
	require.True(t, ok)
	require.Equal(t, 50000.0, val)

	c.Delete("bitcoin")
	_, ok = c.Get("bitcoin")
	require.False(t, ok)
}

func TestCache_Snapshot_IsACopy(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)

	snap := c.Snapshot()
	snap["a"] = 99

	val, _ := c.Get("a")
	require.Equal(t, 1, val)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Set(n, n)
			c.Get(n)
		}(i)
	}
	wg.Wait()
	require.Equal(t, 50, c.Len())
}
