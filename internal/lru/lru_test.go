package lru

import (
	"errors"
	"sync"
	"testing"
)

// fill loads key with value and reports whether load ran.
func fill[K comparable, V any](c *Cache[K, V], key K, value V) bool {
	loaded := false
	_, _ = c.GetOrLoad(key, func() (V, error) {
		loaded = true
		return value, nil
	})
	return loaded
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	fill(c, 1, 1)
	fill(c, 2, 2)
	fill(c, 3, 3)

	// Touch 1 so that 2 becomes the oldest.
	fill(c, 1, 1)
	fill(c, 4, 4)

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
	for _, k := range []int{1, 3, 4} {
		if fill(c, k, k) {
			t.Errorf("key %d should still be cached", k)
		}
	}
	if !fill(c, 2, 2) {
		t.Error("key 2 should have been evicted")
	}
}

func TestCache_CapacityOne(t *testing.T) {
	c := New[int, string](1)
	fill(c, 1, "a")
	fill(c, 2, "b")

	v, err := c.GetOrLoad(2, func() (string, error) { return "reloaded", nil })
	if err != nil || v != "b" {
		t.Errorf("GetOrLoad(2) = %q, %v, want cached %q", v, err, "b")
	}
	if !fill(c, 1, "a") {
		t.Error("key 1 should have been evicted")
	}
}

func TestCache_DefaultCapacity(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		if got := New[int, int](capacity).Stats().Capacity; got != DefaultCapacity {
			t.Errorf("New(%d) capacity = %d, want %d", capacity, got, DefaultCapacity)
		}
	}
}

func TestCache_GetOrLoad(t *testing.T) {
	c := New[string, int](8)
	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}

	for range 3 {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != 42 {
			t.Fatalf("GetOrLoad() = %v, %v, want 42, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 || st.Len != 1 {
		t.Errorf("Stats() = %+v, want 2 hits, 1 miss, len 1", st)
	}
}

func TestCache_GetOrLoadErrorNotCached(t *testing.T) {
	c := New[string, int](8)
	errLoad := errors.New("load failed")

	if _, err := c.GetOrLoad("k", func() (int, error) { return 0, errLoad }); !errors.Is(err, errLoad) {
		t.Fatalf("GetOrLoad() error = %v, want %v", err, errLoad)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, failed loads must not be cached", c.Len())
	}

	v, err := c.GetOrLoad("k", func() (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Errorf("GetOrLoad() retry = %v, %v, want 7, nil", v, err)
	}
}

func TestCache_Clear(t *testing.T) {
	c := New[int, int](4)
	fill(c, 1, 1)
	fill(c, 2, 2)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if !fill(c, 1, 1) {
		t.Error("key 1 should load again after Clear")
	}
	if got := c.Stats().Misses; got != 3 {
		t.Errorf("Misses = %d, want 3 (statistics survive Clear)", got)
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](16)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Go(func() {
			for i := range 200 {
				k := (g*31 + i) % 40
				v, err := c.GetOrLoad(k, func() (int, error) { return k * 2, nil })
				if err != nil || v != k*2 {
					t.Errorf("GetOrLoad(%d) = %d, %v, want %d", k, v, err, k*2)
				}
			}
		})
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len() = %d, exceeds capacity 16", c.Len())
	}
}
