// Package geom provides the 2-D vector arithmetic and line predicates the
// merge engine and simplifier are built on: point algebra, tangent direction,
// unsigned angle between directions, perpendicular distance to a line, and
// path length. Every predicate here is pure and side-effect free.
package geom

import "math"

// DefaultEpsilon is the default absolute tolerance used by ApproxEqual.
const DefaultEpsilon = 1e-6

// degenerateThreshold is the squared-length floor below which a direction
// vector is treated as degenerate, per the spec's numerical-degeneracy rule.
const degenerateThreshold = 1e-16

// Point is an ordered pair of finite floating-point values.
type Point struct {
	X, Y float64
}

// Polyline is a non-empty ordered sequence of points joined by straight
// segments.
type Polyline []Point

// Add returns a+b.
func (a Point) Add(b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y}
}

// Sub returns a-b.
func (a Point) Sub(b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y}
}

// Mul returns p scaled by m.
func (p Point) Mul(m float64) Point {
	return Point{p.X * m, p.Y * m}
}

// Dot returns the dot product of a and b.
func (a Point) Dot(b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// SquaredLength returns the squared Euclidean length of p.
func (p Point) SquaredLength() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the Euclidean length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// ApproxEqual reports whether a and b are within eps in both components.
func ApproxEqual(a, b Point, eps float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// Direction returns the unit vector from a toward b, and false if the
// segment is degenerate (squared length below 1e-16). Callers must check
// the returned bool and skip the operation on a degenerate result.
func Direction(a, b Point) (Point, bool) {
	v := b.Sub(a)
	if v.SquaredLength() < degenerateThreshold {
		return Point{}, false
	}
	length := v.Length()
	return Point{v.X / length, v.Y / length}, true
}

// PathLength returns the sum of segment lengths of pl.
func PathLength(pl Polyline) float64 {
	if len(pl) < 2 {
		return 0
	}
	var total float64
	for i := 0; i < len(pl)-1; i++ {
		total += pl[i+1].Sub(pl[i]).Length()
	}
	return total
}

// IsClosed reports whether pl is a closed polyline: its first and last
// points are approximately equal and it has at least 4 points (i.e. at
// least a triangle plus the closing seam).
func IsClosed(pl Polyline, eps float64) bool {
	return len(pl) >= 4 && ApproxEqual(pl[0], pl[len(pl)-1], eps)
}

// IsDegenerate reports whether pl is too short or coincident to carry
// through the core: fewer than 2 points, or exactly 2 coincident points.
func IsDegenerate(pl Polyline, eps float64) bool {
	if len(pl) < 2 {
		return true
	}
	if len(pl) == 2 && ApproxEqual(pl[0], pl[1], eps) {
		return true
	}
	return false
}
