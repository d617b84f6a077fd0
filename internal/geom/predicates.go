package geom

import "math"

// AngleBetween returns the angle in degrees, in [0, 90], between unit
// vectors u and v. It is computed from the absolute dot product so that
// parallel and anti-parallel directions both read as 0 degrees; the caller
// decides which sense it cares about (see Collinear).
func AngleBetween(u, v Point) float64 {
	dot := u.Dot(v)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(math.Abs(dot)) * 180 / math.Pi
}

// Collinear reports whether u and v are parallel or anti-parallel within
// angleTol degrees. The predicate is direction-agnostic: two tangents that
// point toward each other are just as collinear as two that point the same
// way.
func Collinear(u, v Point, angleTol float64) bool {
	angle := AngleBetween(u, v)
	return angle < angleTol || math.Abs(180-angle) < angleTol
}

// PerpDistance returns the perpendicular distance from p to the line through
// linePoint with unit direction lineDir.
func PerpDistance(p, linePoint, lineDir Point) float64 {
	v := p.Sub(linePoint)
	parallel := lineDir.Mul(v.Dot(lineDir))
	perp := v.Sub(parallel)
	return perp.Length()
}

// Offset reports whether p2 lies more than offsetTol away, perpendicular to
// the line through p1 with unit direction dir1. It rejects merges between
// two parallel polylines that are not on the same underlying line (the
// "parallel dashed lines jumping across the gap" failure mode).
func Offset(p1, dir1, p2 Point, offsetTol float64) bool {
	return PerpDistance(p2, p1, dir1) > offsetTol
}
