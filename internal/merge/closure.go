package merge

import "github.com/go-polyweld/polyweld/internal/geom"

// runClosurePass scans the remaining active polylines for ones whose two
// endpoints are close enough, and whose tangents at those endpoints point
// back at each other closely enough, to be a single dashed/broken outline
// rather than two distinct ones. A closure appends the start point to the
// end, turning the polyline into a closed ring, and retires it from the
// active set so the merge loop never reopens it.
func (e *Engine) runClosurePass() {
	ids := e.sortedActiveIDs()
	for _, id := range ids {
		pl, ok := e.polylines[id]
		if !ok {
			continue
		}
		if closed, ok := e.tryClose(pl); ok {
			e.idx.Remove(id)
			delete(e.active, id)
			e.polylines[id] = closed
		}
	}
}

// tryClose reports whether pl's endpoints satisfy the closure predicate: at
// least a triangle's worth of points, not already approximately closed, a
// distance within DistanceTolerance, and a start tangent collinear with the
// reversed end tangent within AngleTolerance. On success it returns pl with
// its start point appended to its end.
func (e *Engine) tryClose(pl geom.Polyline) (geom.Polyline, bool) {
	if len(pl) < 3 {
		return nil, false
	}

	start, end := pl[0], pl[len(pl)-1]
	if geom.ApproxEqual(start, end, geom.DefaultEpsilon) {
		return nil, false
	}

	if start.Sub(end).Length() > e.cfg.DistanceTolerance {
		return nil, false
	}

	startTangent, ok := tangentAt(pl, AtStart)
	if !ok {
		return nil, false
	}
	endTangent, ok := tangentAt(pl, AtEnd)
	if !ok {
		return nil, false
	}

	if !geom.Collinear(startTangent, endTangent, e.cfg.AngleTolerance) {
		return nil, false
	}

	out := make(geom.Polyline, 0, len(pl)+1)
	out = append(out, pl...)
	out = append(out, start)
	return out, true
}
