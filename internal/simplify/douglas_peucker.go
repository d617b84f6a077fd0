// Package simplify implements Douglas-Peucker polyline simplification and
// the closed-polyline seam canonicalization the spec requires of it: when a
// closed polyline's seam vertex is collinear with its neighbors within
// tolerance, the seam is relocated so the redundant vertex is dropped and
// the polyline is re-closed on its new first point.
package simplify

import "github.com/go-polyweld/polyweld/internal/geom"

// DouglasPeucker reduces pl to a subsequence of its vertices such that no
// removed point deviates from the simplified line by more than tol. The
// subsequence is the one found by recursive splitting at the point of
// maximum deviation; it is not necessarily the smallest possible. The
// first and last points are always kept.
func DouglasPeucker(pl geom.Polyline, tol float64) geom.Polyline {
	if len(pl) < 3 {
		return pl
	}

	first, last := pl[0], pl[len(pl)-1]
	dir, ok := geom.Direction(first, last)

	maxDist := 0.0
	splitAt := 0
	for i := 1; i < len(pl)-1; i++ {
		var d float64
		if ok {
			d = geom.PerpDistance(pl[i], first, dir)
		} else {
			// first and last coincide: fall back to distance from first.
			d = pl[i].Sub(first).Length()
		}
		if d > maxDist {
			maxDist = d
			splitAt = i
		}
	}

	if maxDist <= tol {
		return geom.Polyline{first, last}
	}

	left := DouglasPeucker(pl[:splitAt+1], tol)
	right := DouglasPeucker(pl[splitAt:], tol)

	out := make(geom.Polyline, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

// CanonicalizeClosed re-simplifies the seam of a closed, already-simplified
// polyline: if the duplicated first/last vertex is collinear with its
// neighbors within tol, it is dropped and the polyline re-closed on what
// was its second point. This keeps a simplified rectangle four-cornered
// instead of five.
//
// pl is assumed to already be the output of DouglasPeucker; polylines that
// are not closed (per geom.IsClosed) are returned unchanged.
func CanonicalizeClosed(pl geom.Polyline, tol float64) geom.Polyline {
	if !geom.IsClosed(pl, geom.DefaultEpsilon) {
		return pl
	}

	seamNeighbors := geom.Polyline{pl[len(pl)-2], pl[0], pl[1]}
	reduced := DouglasPeucker(seamNeighbors, tol)
	if len(reduced) != 2 {
		return pl
	}

	// The seam point was collinear and got simplified away: drop the
	// duplicated first/last vertex and re-close on the new first point.
	inner := pl[1 : len(pl)-1]
	out := make(geom.Polyline, 0, len(inner)+1)
	out = append(out, inner...)
	out = append(out, inner[0])
	return out
}

// Simplify runs DouglasPeucker followed by CanonicalizeClosed, the
// combination the Simplifier interface contract requires.
func Simplify(pl geom.Polyline, tol float64) geom.Polyline {
	simplified := DouglasPeucker(pl, tol)
	return CanonicalizeClosed(simplified, tol)
}
