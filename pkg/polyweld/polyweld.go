// Package polyweld consolidates the fragmented polyline output of
// raster-to-vector tracing into fewer, longer polylines: collinear,
// spatially-close open polylines are spliced together, dashed strokes are
// stitched back into continuous lines, and nearly-closed outlines are
// closed.
//
// Consolidate is the single entry point; Config carries its tolerances.
package polyweld

import (
	"github.com/go-polyweld/polyweld/internal/geom"
	"github.com/go-polyweld/polyweld/internal/merge"
)

// Point is a 2-D coordinate. It is an alias for internal/geom's Point so
// callers and the core share one representation with no conversion cost.
type Point = geom.Point

// Polyline is a non-empty ordered sequence of Points joined by straight
// segments. A closed polyline has its first and last points equal.
type Polyline = geom.Polyline

// Consolidate runs the full pipeline — simplify, merge, close, simplify —
// over polylines and returns the consolidated result. The input slice is
// not mutated.
//
// Example:
//
//	out, err := polyweld.Consolidate(paths, polyweld.DefaultConfig())
func Consolidate(polylines []Polyline, cfg Config) ([]Polyline, error) {
	return ConsolidateWithSimplifier(polylines, cfg, NewSimplifier())
}

// ConsolidateWithSimplifier is Consolidate with a caller-supplied
// Simplifier, for callers that want a different vertex-reduction strategy
// than the default Douglas-Peucker implementation.
func ConsolidateWithSimplifier(polylines []Polyline, cfg Config, simplifier Simplifier) ([]Polyline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	presimplified := make([]Polyline, len(polylines))
	for i, pl := range polylines {
		presimplified[i] = simplifier.Simplify(pl, cfg.SimplifyTolerance)
	}

	engine := merge.NewEngine(presimplified, merge.Config{
		DistanceTolerance: cfg.DistanceTolerance,
		AngleTolerance:    cfg.AngleTolerance,
		OffsetTolerance:   cfg.offsetTolerance(),
	})
	merged := engine.Run()

	out := make([]Polyline, len(merged))
	for i, pl := range merged {
		out[i] = simplifier.Simplify(pl, cfg.SimplifyTolerance)
	}
	return out, nil
}
