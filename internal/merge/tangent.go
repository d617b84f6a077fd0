package merge

import "github.com/go-polyweld/polyweld/internal/geom"

// tangentAt returns the unit tangent of pl at end e: the direction from the
// adjacent interior point to the endpoint (AtEnd), or from the endpoint to
// its neighbor (AtStart). The bool is false if the adjacent segment is
// degenerate.
func tangentAt(pl geom.Polyline, e End) (geom.Point, bool) {
	n := len(pl)
	if e == AtStart {
		return geom.Direction(pl[0], pl[1])
	}
	return geom.Direction(pl[n-2], pl[n-1])
}

// endpointAt returns the coordinates of pl's endpoint at e.
func endpointAt(pl geom.Polyline, e End) geom.Point {
	if e == AtStart {
		return pl[0]
	}
	return pl[len(pl)-1]
}
