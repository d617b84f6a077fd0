// Package merge implements the polyline consolidation core: the merge
// engine that splices collinear, spatially-close open polylines together,
// and the closure pass that follows it. See Engine.Run.
package merge

import (
	"sort"

	"github.com/go-polyweld/polyweld/internal/geom"
	"github.com/go-polyweld/polyweld/internal/spatialindex"
)

// Config holds the merge engine's tolerances. Zero values are not valid
// defaults and this package provides none: the caller supplies real
// tolerances (pkg/polyweld derives them from its own Config). The
// engine does not second-guess its configuration (spec: the core never
// raises, it is not the core's job to validate its own inputs).
type Config struct {
	DistanceTolerance float64 // d_tol
	AngleTolerance    float64 // a_tol, degrees
	OffsetTolerance   float64 // usually d_tol / 2
}

// Engine owns one merge pass's working set: the arena of open polylines,
// the active set of mergeable identifiers, the closed polylines that are
// opaque to merging, and the spatial index kept in lockstep with them.
type Engine struct {
	cfg       Config
	polylines map[int]geom.Polyline
	active    map[int]struct{}
	closed    []geom.Polyline
	idx       *spatialindex.Index
}

// NewEngine ingests polylines, splitting them into the active (open) set,
// the closed set (opaque, passed through unchanged), and degenerate inputs
// (silently dropped), per spec §3 and §7.
func NewEngine(polylines []geom.Polyline, cfg Config) *Engine {
	e := &Engine{
		cfg:       cfg,
		polylines: make(map[int]geom.Polyline),
		active:    make(map[int]struct{}),
	}

	for id, pl := range polylines {
		if geom.IsDegenerate(pl, geom.DefaultEpsilon) {
			continue
		}
		if geom.IsClosed(pl, geom.DefaultEpsilon) {
			e.closed = append(e.closed, pl)
			continue
		}
		e.polylines[id] = pl
		e.active[id] = struct{}{}
	}

	e.idx = spatialindex.Build(e.polylines)
	return e
}

// Run executes the merge loop to quiescence, then the closure pass, and
// returns the consolidated polyline list: polylines closed on input,
// polylines closed by the closure pass, and any open polylines the engine
// could not merge further.
func (e *Engine) Run() []geom.Polyline {
	e.runMergeLoop()
	e.runClosurePass()
	return e.output()
}

// runMergeLoop repeats a full pass over a snapshot of the active set until
// a pass produces no merges. Each identifier retries the same end after a
// success, since the merged result may be mergeable again at that end.
func (e *Engine) runMergeLoop() {
	for {
		ids := e.sortedActiveIDs()
		anyMerge := false

		for _, id := range ids {
			if _, ok := e.active[id]; !ok {
				continue // retired by an earlier merge this pass
			}
			for {
				if e.tryMergeAtEnd(id, AtEnd) {
					anyMerge = true
					if _, ok := e.active[id]; !ok {
						break // the merge closed id; it is opaque now
					}
					continue
				}
				if e.tryMergeAtEnd(id, AtStart) {
					anyMerge = true
					if _, ok := e.active[id]; !ok {
						break
					}
					continue
				}
				break
			}
		}

		if !anyMerge {
			return
		}
	}
}

// tryMergeAtEnd attempts one endpoint-merge step for polyline id at end e,
// per spec §4.4. It returns true and commits the splice on the first
// compatible candidate found, in ascending-distance order.
func (e *Engine) tryMergeAtEnd(id int, e2 End) bool {
	pl := e.polylines[id]
	tangent, ok := tangentAt(pl, e2)
	if !ok {
		return false
	}
	endpoint := endpointAt(pl, e2)

	matches := e.idx.Query(endpoint, e.cfg.DistanceTolerance)
	for _, m := range matches {
		if m.ID == id {
			continue
		}
		other, ok := e.polylines[m.ID]
		if !ok || len(other) < 2 {
			continue
		}
		if _, stillActive := e.active[m.ID]; !stillActive {
			continue
		}

		otherEnd := AtStart
		if !m.IsStart {
			otherEnd = AtEnd
		}
		otherTangent, ok := tangentAt(other, otherEnd)
		if !ok {
			continue
		}

		if !geom.Collinear(tangent, otherTangent, e.cfg.AngleTolerance) {
			continue
		}
		if geom.Offset(endpoint, tangent, m.Point, e.cfg.OffsetTolerance) {
			continue
		}

		e.commitMerge(id, e2, m.ID, otherEnd, pl, other)
		return true
	}
	return false
}

// commitMerge splices pl (id, end e2) with other (otherID, end otherEnd),
// overwrites id's slot with the result, reindexes it, and retires otherID.
// If the splice happens to produce an exactly-closed ring, id is retired
// from the active set too: closed polylines are opaque to further
// merging, never re-indexed as candidates.
func (e *Engine) commitMerge(id int, e2 End, otherID int, otherEnd End, pl, other geom.Polyline) {
	e.idx.Remove(id)
	e.idx.Remove(otherID)

	merged := splice(pl, other, e2, otherEnd)

	e.polylines[id] = merged
	delete(e.polylines, otherID)
	delete(e.active, otherID)

	e.idx.Insert(id, merged)
	if geom.IsClosed(merged, geom.DefaultEpsilon) {
		delete(e.active, id)
	}
}

func (e *Engine) sortedActiveIDs() []int {
	ids := make([]int, 0, len(e.active))
	for id := range e.active {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// output collects the closed-on-input polylines and whatever remains in
// the working set (closed by the closure pass, or still open), ordered by
// ascending identifier for determinism.
func (e *Engine) output() []geom.Polyline {
	out := make([]geom.Polyline, 0, len(e.closed)+len(e.polylines))
	out = append(out, e.closed...)

	ids := make([]int, 0, len(e.polylines))
	for id := range e.polylines {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		out = append(out, e.polylines[id])
	}
	return out
}
