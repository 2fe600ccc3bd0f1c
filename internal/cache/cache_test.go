package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("expected capacity 100, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
	if d := New[string, int](0); d.Capacity() != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, d.Capacity())
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v, want 42, true", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("expected updated value 7, got %d", val)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry after update, got %d", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	createCalled := 0
	create := func(v int) func() (int, error) {
		return func() (int, error) {
			createCalled++
			return v, nil
		}
	}

	if val, err := c.GetOrCreate("key1", create(100)); err != nil || val != 100 {
		t.Errorf("GetOrCreate() = %d, %v, want 100, nil", val, err)
	}
	if val, _ := c.GetOrCreate("key1", create(200)); val != 100 {
		t.Errorf("expected 100 (cached), got %d", val)
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}
}

func TestCacheGetOrCreateError(t *testing.T) {
	c := New[string, int](10)
	boom := errors.New("boom")

	if _, err := c.GetOrCreate("key1", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrCreate() error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed create was cached")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	if !c.Delete("key1") {
		t.Error("expected Delete to return true for existing key")
	}
	if _, ok := c.Get("key1"); ok {
		t.Error("expected key1 to be deleted")
	}
	if c.Delete("nonexistent") {
		t.Error("expected Delete to return false for non-existing key")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 1)
	c.Set("key2", 2)
	c.Set("key3", 3)

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected 0 entries after clear, got %d", c.Len())
	}
	c.Set("key4", 4)
	if val, ok := c.Get("key4"); !ok || val != 4 {
		t.Error("cache unusable after Clear")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	for i := 0; i < 3; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	// Touch "0" so "1" becomes the oldest.
	c.Get("0")
	c.Set("3", 3)

	if _, ok := c.Get("1"); ok {
		t.Error("expected least recently used key 1 to be evicted")
	}
	for _, k := range []string{"0", "2", "3"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected key %s to remain", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", c.Len())
	}
	if ev := c.Stats().Evictions; ev != 1 {
		t.Errorf("expected 1 eviction, got %d", ev)
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Len != 1 || s.Capacity != 10 {
		t.Errorf("Stats() = %+v", s)
	}
	if r := s.HitRate(); r < 0.66 || r > 0.67 {
		t.Errorf("HitRate() = %v, want 2/3", r)
	}

	c.ResetStats()
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 || s.HitRate() != 0 {
		t.Errorf("Stats() after reset = %+v", s)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := (g*31 + i) % 40
				_, _ = c.GetOrCreate(k, func() (int, error) { return k * 2, nil })
				if v, ok := c.Get(k); ok && v != k*2 {
					t.Errorf("Get(%d) = %d, want %d", k, v, k*2)
				}
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds capacity 16", c.Len())
	}
}
