// Package batch samples many (frame, element) units in parallel.
//
// Every unit is independent: samplers are read-only after construction
// and the per-segment correspondence cache tolerates concurrent
// computation, so units are distributed over a small worker pool with no
// coordination beyond a shared counter.
package batch

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dorjeduck/svan2d/state"
	"github.com/dorjeduck/svan2d/timeline"
)

// Frame identifies one sampling unit of a render run.
type Frame struct {
	Index   int     // frame number in [0, frames)
	Element int     // index into the samplers slice
	T       float64 // normalized time of the frame
}

type config struct {
	workers int
}

// Option configures a render run.
type Option func(*config)

// WithWorkers caps the number of worker goroutines. Values below 1 fall
// back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// Render samples every element at every frame and hands each resulting
// state to fn. Units complete in no particular order, possibly
// concurrently; fn must be safe for concurrent calls.
//
// When ctx is cancelled, workers abandon the remaining units and Render
// returns the context's error. Units already in flight still complete.
func Render(ctx context.Context, samplers []*timeline.Sampler, frames int, fn func(Frame, state.State), opts ...Option) error {
	if frames <= 0 || len(samplers) == 0 {
		return ctx.Err()
	}
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, o := range opts {
		o(&cfg)
	}
	workers := cfg.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	total := frames * len(samplers)
	if workers > total {
		workers = total
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				i := int(next.Add(1)) - 1
				if i >= total {
					return
				}
				f := Frame{
					Index:   i / len(samplers),
					Element: i % len(samplers),
				}
				f.T = frameTime(f.Index, frames)
				fn(f, samplers[f.Element].SampleState(f.T))
			}
		}()
	}
	wg.Wait()
	return ctx.Err()
}

// frameTime maps a frame index onto [0, 1]; a single frame samples t=0.
func frameTime(i, frames int) float64 {
	if frames <= 1 {
		return 0
	}
	return float64(i) / float64(frames-1)
}
