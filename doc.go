// Package svan2d provides the timeline and interpolation core of a
// declarative 2D animation engine.
//
// # Overview
//
// svan2d turns a sequence of discrete attribute snapshots ("states")
// anchored on a normalized [0,1] time axis into a single fully-resolved
// state for any query time. Shape transitions between outlines with
// differing vertex counts ("morphs") are handled by a pluggable vertex
// correspondence engine.
//
// # Quick Start
//
//	import (
//		svan2d "github.com/dorjeduck/svan2d"
//		"github.com/dorjeduck/svan2d/state"
//		"github.com/dorjeduck/svan2d/timeline"
//	)
//
//	tl, err := timeline.Normalize([]timeline.Entry{
//		timeline.At(0, state.NewCircle(svan2d.Pt(0, 0), 10)),
//		timeline.At(1, state.NewCircle(svan2d.Pt(0, 0), 20)),
//	})
//	if err != nil {
//		// malformed keystate input
//	}
//	s, _ := timeline.NewSampler(tl)
//	mid := s.SampleState(0.5) // Circle with radius 15
//
// # Architecture
//
// The library is organized into:
//   - Root package: Point, RGBA, VertexLoop value types and logging
//   - easing: progress-remapping functions and the easing Catalog
//   - state: the closed set of state variants and their capability query
//   - timeline: normalization, attribute overlays, easing resolution and
//     frame sampling
//   - morph: vertex correspondence strategies and loop interpolation
//   - batch: parallel batch frame generation
//
// Rendering is out of scope: a resolved state is handed to an external
// drawing collaborator. Sampling is pure and safe for concurrent use on
// an immutable timeline.
package svan2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
