package memo_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/lensgrid/memo"
	"github.com/stretchr/testify/require"
)

// TestCacheComputesOncePerKey verifies hits do not recompute.
func TestCacheComputesOncePerKey(t *testing.T) {
	var c memo.Cache[[2]int, int]
	square := func(k [2]int) func() (int, error) {
		return func() (int, error) { return k[0] * k[1], nil }
	}

	v, err := c.Get([2]int{3, 3}, square([2]int{3, 3}))
	require.NoError(t, err)
	require.Equal(t, 9, v)

	v, err = c.Get([2]int{3, 3}, func() (int, error) { return -1, nil })
	require.NoError(t, err)
	require.Equal(t, 9, v, "second call must hit the cache")

	v, err = c.Get([2]int{5, 5}, square([2]int{5, 5}))
	require.NoError(t, err)
	require.Equal(t, 25, v)

	require.Equal(t, 2, c.Calls())
	require.Equal(t, 2, c.Len())
}

// TestCacheErrorsAreCached ensures a failing derivation is not retried.
func TestCacheErrorsAreCached(t *testing.T) {
	var c memo.Cache[string, int]
	boom := errors.New("boom")
	runs := 0
	fail := func() (int, error) { runs++; return 0, boom }

	_, err := c.Get("k", fail)
	require.ErrorIs(t, err, boom)
	_, err = c.Get("k", fail)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, runs)
}

// TestCachePerInstance checks two caches never share entries.
func TestCachePerInstance(t *testing.T) {
	var a, b memo.Cache[int, string]
	_, _ = a.Get(1, func() (string, error) { return "a", nil })
	v, _ := b.Get(1, func() (string, error) { return "b", nil })
	require.Equal(t, "b", v)
}

// TestCacheConcurrentFirstUse runs many goroutines against one key.
func TestCacheConcurrentFirstUse(t *testing.T) {
	var c memo.Cache[int, int]
	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	results := make([]int, workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			v, err := c.Get(7, func() (int, error) { return 49, nil })
			require.NoError(t, err)
			results[id] = v
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		require.Equal(t, 49, v)
	}
	require.Equal(t, 1, c.Calls())
}
