package cache

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestGetOrCompute(t *testing.T) {
	c := NewSharded[string, int](StringHasher)

	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	if got := c.GetOrCompute("k", compute); got != 42 {
		t.Fatalf("first call = %d, want 42", got)
	}
	if got := c.GetOrCompute("k", compute); got != 42 {
		t.Fatalf("second call = %d, want 42", got)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func TestGet(t *testing.T) {
	c := NewSharded[int, string](IntHasher)

	if _, ok := c.Get(7); ok {
		t.Error("empty cache reported a hit")
	}
	c.GetOrCompute(7, func() string { return "seven" })
	if v, ok := c.Get(7); !ok || v != "seven" {
		t.Errorf("Get(7) = %q, %v", v, ok)
	}
}

func TestStats(t *testing.T) {
	c := NewSharded[int, int](IntHasher)

	c.GetOrCompute(1, func() int { return 1 })
	c.GetOrCompute(1, func() int { return 1 })
	c.GetOrCompute(2, func() int { return 2 })

	s := c.Stats()
	if s.Misses != 2 || s.Hits != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/2", s.Hits, s.Misses)
	}
	if s.Len != 2 {
		t.Errorf("len = %d, want 2", s.Len)
	}
}

func TestFirstWriterWins(t *testing.T) {
	c := NewSharded[int, int](IntHasher)

	var computed atomic.Int32
	var start, done sync.WaitGroup
	start.Add(1)

	const workers = 8
	results := make([]int, workers)
	done.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer done.Done()
			start.Wait()
			results[w] = c.GetOrCompute(5, func() int {
				return int(computed.Add(1))
			})
		}(w)
	}
	start.Done()
	done.Wait()

	// Compute may run redundantly, but every caller must observe the
	// single stored value.
	stored, ok := c.Get(5)
	if !ok {
		t.Fatal("value not stored")
	}
	for w, r := range results {
		if r != stored {
			t.Errorf("worker %d observed %d, stored value is %d", w, r, stored)
		}
	}
}

func TestKeysSpreadOverShards(t *testing.T) {
	c := NewSharded[int, int](IntHasher)
	for i := 0; i < 256; i++ {
		c.GetOrCompute(i, func() int { return i })
	}
	if c.Len() != 256 {
		t.Fatalf("len = %d, want 256", c.Len())
	}

	occupied := 0
	for _, s := range c.shards {
		if len(s.entries) > 0 {
			occupied++
		}
	}
	if occupied < ShardCount/2 {
		t.Errorf("only %d of %d shards occupied", occupied, ShardCount)
	}
}
