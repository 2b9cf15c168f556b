// Package morph builds vertex correspondences between two outlines and
// interpolates the in-between outlines a shape morph passes through.
//
// A correspondence is computed once per segment (see Correspond) and
// reused for every frame; InterpolateLoop evaluates it at a progress
// value. Five strategies trade quality for cost, from optimal assignment
// down to a crossfade-style fallback that needs no pairing at all.
package morph

import (
	"errors"
	"fmt"

	svan2d "github.com/dorjeduck/svan2d"
)

// ErrIncompatibleMorph reports two states that cannot be morphed into
// each other, such as a text state paired with a shape.
var ErrIncompatibleMorph = errors.New("morph: incompatible states")

// Strategy selects the correspondence algorithm.
type Strategy string

const (
	// StrategyClustering groups the larger outline into as many clusters
	// as the smaller one has points. The default.
	StrategyClustering Strategy = "clustering"

	// StrategyHungarian pads the smaller outline and solves an optimal
	// assignment. Best quality, O(n³).
	StrategyHungarian Strategy = "hungarian"

	// StrategyGreedy repeatedly matches the globally closest unmatched
	// pair.
	StrategyGreedy Strategy = "greedy"

	// StrategyDiscrete moves index-aligned points and snaps the
	// remainder in or out at the midpoint.
	StrategyDiscrete Strategy = "discrete"

	// StrategySimple shrinks the source into its own centroid while
	// the target grows out of its own. Needs no correspondence and
	// always works.
	StrategySimple Strategy = "simple"
)

// Options configures correspondence construction. The zero value is
// usable; see DefaultOptions for the defaults an element starts with.
type Options struct {
	Strategy Strategy

	// Balanced caps cluster sizes so the clustering strategy spreads
	// synthetic points evenly over the smaller outline.
	Balanced bool

	// MaxIterations bounds the clustering refinement loop. Values below
	// 1 mean 50.
	MaxIterations int

	// Seed makes clustering deterministic. 0 means 42.
	Seed int64
}

// DefaultOptions returns the options used when an element declares none:
// balanced clustering, 50 iterations, seed 42.
func DefaultOptions() Options {
	return Options{
		Strategy:      StrategyClustering,
		Balanced:      true,
		MaxIterations: 50,
		Seed:          42,
	}
}

func (o Options) withDefaults() Options {
	if o.Strategy == "" {
		o.Strategy = StrategyClustering
	}
	if o.MaxIterations < 1 {
		o.MaxIterations = 50
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	return o
}

// Correspond builds a mapping from the src outline to the dst outline.
// The result is deterministic for fixed options. An unknown strategy
// falls back to simple with a warning; empty outlines are rejected with
// ErrIncompatibleMorph.
func Correspond(src, dst svan2d.VertexLoop, opts Options) (*Mapping, error) {
	if src.Len() == 0 || dst.Len() == 0 {
		return nil, fmt.Errorf("%w: empty outline", ErrIncompatibleMorph)
	}
	opts = opts.withDefaults()

	s := src.Rebased()
	d := dst.Rebased()

	var pairs []Pair
	switch opts.Strategy {
	case StrategyHungarian:
		pairs = hungarianPairs(s, d)
	case StrategyClustering:
		pairs = clusteringPairs(s, d, opts)
	case StrategyGreedy:
		pairs = greedyPairs(s, d)
	case StrategyDiscrete:
		pairs = discretePairs(s, d)
	case StrategySimple:
		pairs = simplePairs(s, d)
	default:
		svan2d.Logger().Warn("unknown morph strategy, using simple",
			"strategy", string(opts.Strategy))
		opts.Strategy = StrategySimple
		pairs = simplePairs(s, d)
	}
	sortPairs(pairs)

	svan2d.Logger().Debug("correspondence built",
		"strategy", string(opts.Strategy),
		"src", s.Len(), "dst", d.Len(), "pairs", len(pairs))

	return &Mapping{Pairs: pairs, Strategy: opts.Strategy}, nil
}
