package cache

import (
	"slices"
	"testing"
)

func TestLRUGetAdd(t *testing.T) {
	c := New[string, int](2)

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache reported a hit")
	}
	if !c.Add("a", 1) || !c.Add("b", 2) {
		t.Fatal("Add under the limit reported false")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}

	// b is now the oldest
	c.Add("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used a was evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.Add("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) after replace = %d, want 10", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len() after replace = %d, want 2", c.Len())
	}
}

func TestLRUDisabled(t *testing.T) {
	for _, limit := range []int{0, -3} {
		c := New[int, int](limit)
		if c.Add(1, 1) {
			t.Errorf("limit %d: Add = true, want false", limit)
		}
		if c.Len() != 0 || c.Limit() != 0 {
			t.Errorf("limit %d: Len %d Limit %d, want 0 0", limit, c.Len(), c.Limit())
		}
	}
}

func TestLRUDrain(t *testing.T) {
	c := New[int, string](4)
	c.Add(1, "one")
	c.Add(2, "two")
	c.Add(3, "three")
	c.Get(1)

	var keys []int
	c.Drain(func(k int, _ string) { keys = append(keys, k) })

	if want := []int{2, 3, 1}; !slices.Equal(keys, want) {
		t.Errorf("Drain order = %v, want %v", keys, want)
	}
	if c.Len() != 0 {
		t.Errorf("Len() after Drain = %d", c.Len())
	}
	if _, ok := c.Get(1); ok {
		t.Error("Get after Drain reported a hit")
	}
	c.Drain(nil)
}

func TestLRUStats(t *testing.T) {
	c := New[int, int](1)
	c.Add(1, 1)
	c.Get(1)
	c.Get(2)
	c.Add(2, 2)

	s := c.Stats()
	want := Stats{Len: 1, Limit: 1, Hits: 1, Misses: 1, HitRate: 0.5, Evictions: 1}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func BenchmarkLRUGet(b *testing.B) {
	c := New[int, int](256)
	for i := range 256 {
		c.Add(i, i)
	}
	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		c.Get(i & 255)
	}
}
