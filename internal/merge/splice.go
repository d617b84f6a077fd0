package merge

import "github.com/go-polyweld/polyweld/internal/geom"

// End identifies which end of a polyline an operation targets.
type End int

const (
	AtStart End = iota
	AtEnd
)

// splice joins a at end endA to b at end endB, producing a polyline whose
// sense preserves a's direction at its non-merged end, per the orientation
// table:
//
//	endA=AtEnd,   endB=AtStart -> a ++ b[1:]
//	endA=AtEnd,   endB=AtEnd   -> a ++ reverse(b)[1:]
//	endA=AtStart, endB=AtStart -> reverse(b) ++ a[1:]
//	endA=AtStart, endB=AtEnd   -> b ++ a[1:]
//
// The "[1:]" drop only happens when the seam point is an approximate
// duplicate; a genuine gap under d_tol keeps both points.
func splice(a, b geom.Polyline, endA, endB End) geom.Polyline {
	switch {
	case endA == AtEnd && endB == AtStart:
		return concatDedup(a, b)
	case endA == AtEnd && endB == AtEnd:
		return concatDedup(a, reversed(b))
	case endA == AtStart && endB == AtStart:
		return concatDedup(reversed(b), a)
	default: // AtStart, AtEnd
		return concatDedup(b, a)
	}
}

func reversed(pl geom.Polyline) geom.Polyline {
	out := make(geom.Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

func concatDedup(first, second geom.Polyline) geom.Polyline {
	out := make(geom.Polyline, 0, len(first)+len(second))
	out = append(out, first...)
	if len(first) > 0 && len(second) > 0 && geom.ApproxEqual(first[len(first)-1], second[0], geom.DefaultEpsilon) {
		out = append(out, second[1:]...)
	} else {
		out = append(out, second...)
	}
	return out
}
