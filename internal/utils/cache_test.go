package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetCacheConcurrentFirstAccessSharesInstance(t *testing.T) {
	const goroutines = 16
	instances := make([]*GlobalCache, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = GetCache()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, instances[0], instances[i])
	}
}

func TestCacheSetGetDelete(t *testing.T) {
	cache := GetCache()

	cache.Set("k", "v", time.Minute)
	assert.Equal(t, "v", cache.Get("k"))

	cache.Delete("k")
	assert.Nil(t, cache.Get("k"))
}

func TestCacheExpiredEntryIsGone(t *testing.T) {
	cache := GetCache()

	cache.Set("stale", 1, -time.Second)
	assert.Nil(t, cache.Get("stale"))
}
