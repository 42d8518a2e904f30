package cache

import (
	"fmt"
	"testing"
	"time"

	"barrel/internal/parser"
)

func entry(path string) *Entry {
	return &Entry{
		Module:   &parser.Module{Path: path},
		MTime:    time.Now(),
		CachedAt: time.Now(),
	}
}

func TestGetSet(t *testing.T) {
	c := New(10)

	if _, ok := c.Get("/a.ts"); ok {
		t.Error("expected miss on empty cache")
	}

	c.Set("/a.ts", entry("/a.ts"))
	got, ok := c.Get("/a.ts")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.Module.Path != "/a.ts" {
		t.Errorf("wrong entry returned: %s", got.Module.Path)
	}
}

func TestEvictionOrder(t *testing.T) {
	c := New(5)

	// Insert /f0../f4, touch /f1../f4, then insert /f5: /f0 must go.
	for i := 0; i < 5; i++ {
		path := fmt.Sprintf("/f%d", i)
		c.Set(path, entry(path))
	}
	for i := 1; i < 5; i++ {
		if _, ok := c.Get(fmt.Sprintf("/f%d", i)); !ok {
			t.Fatalf("unexpected miss for /f%d", i)
		}
	}
	c.Set("/f5", entry("/f5"))

	if _, ok := c.Get("/f0"); ok {
		t.Error("/f0 should have been evicted")
	}
	if _, ok := c.Get("/f5"); !ok {
		t.Error("/f5 should be present")
	}
}

func TestAccessProtectsFromEviction(t *testing.T) {
	c := New(2)

	c.Set("/a.ts", entry("/a.ts"))
	c.Set("/b.ts", entry("/b.ts"))

	// Touch /a.ts so /b.ts becomes least-recently used.
	if _, ok := c.Get("/a.ts"); !ok {
		t.Fatal("unexpected miss for /a.ts")
	}
	c.Set("/c.ts", entry("/c.ts"))

	if _, ok := c.Get("/a.ts"); !ok {
		t.Error("/a.ts was evicted despite recent access")
	}
	if _, ok := c.Get("/b.ts"); ok {
		t.Error("/b.ts should have been evicted")
	}
}

func TestMissDoesNotDisturbOrder(t *testing.T) {
	c := New(2)

	c.Set("/a.ts", entry("/a.ts"))
	c.Set("/b.ts", entry("/b.ts"))

	// Misses must not refresh /a.ts.
	c.Get("/nope.ts")
	c.Set("/c.ts", entry("/c.ts"))

	if _, ok := c.Get("/a.ts"); ok {
		t.Error("/a.ts should have been evicted as least-recently used")
	}
}

func TestStats(t *testing.T) {
	c := New(10)

	s := c.GetStats()
	if s.HitRate != 0 {
		t.Errorf("hit rate on untouched cache = %v, expected 0", s.HitRate)
	}

	c.Set("/a.ts", entry("/a.ts"))
	c.Get("/missing.ts")
	for i := 0; i < 4; i++ {
		c.Get("/a.ts")
	}

	s = c.GetStats()
	if s.Hits != 4 || s.Misses != 1 {
		t.Errorf("hits=%d misses=%d, expected 4/1", s.Hits, s.Misses)
	}
	if s.HitRate != 0.8 {
		t.Errorf("hit rate = %v, expected 0.8", s.HitRate)
	}
	if s.Size != 1 || s.MaxSize != 10 {
		t.Errorf("size=%d max=%d, expected 1/10", s.Size, s.MaxSize)
	}
}

func TestClearResetsCounters(t *testing.T) {
	c := New(10)

	c.Set("/a.ts", entry("/a.ts"))
	c.Get("/a.ts")
	c.Get("/missing.ts")
	c.Clear()

	s := c.GetStats()
	if s.Size != 0 || s.Hits != 0 || s.Misses != 0 || s.HitRate != 0 {
		t.Errorf("stats not reset after Clear: %+v", s)
	}
	if _, ok := c.Get("/a.ts"); ok {
		t.Error("entry survived Clear")
	}
}

func TestInvalidateKeepsCounters(t *testing.T) {
	c := New(10)

	c.Set("/a.ts", entry("/a.ts"))
	c.Get("/a.ts")
	c.Invalidate("/a.ts")

	s := c.GetStats()
	if s.Hits != 1 {
		t.Errorf("Invalidate changed counters: %+v", s)
	}
	if s.Size != 0 {
		t.Errorf("entry survived Invalidate: %+v", s)
	}

	// No-op on unknown paths.
	c.Invalidate("/missing.ts")
}

func TestCapacityNormalised(t *testing.T) {
	c := New(0)

	c.Set("/a.ts", entry("/a.ts"))
	c.Set("/b.ts", entry("/b.ts"))

	if s := c.GetStats(); s.Size != 1 || s.MaxSize != 1 {
		t.Errorf("capacity 0 not normalised to 1: %+v", s)
	}
}
