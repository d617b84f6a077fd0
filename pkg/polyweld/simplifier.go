package polyweld

import "github.com/go-polyweld/polyweld/internal/simplify"

// Simplifier reduces a polyline's vertex count within a perpendicular
// distance tolerance, and canonicalizes the seam of an already-closed
// polyline so a collinear closing vertex is not kept as a redundant point.
//
// Create one with NewSimplifier and pass it to ConsolidateWithSimplifier to
// swap in an alternate reduction strategy; Consolidate uses the default.
type Simplifier interface {
	Simplify(pl Polyline, tol float64) Polyline
}

// NewSimplifier returns the default Simplifier, backed by Douglas-Peucker
// reduction with closed-seam canonicalization.
//
// Example:
//
//	s := polyweld.NewSimplifier()
//	reduced := s.Simplify(pl, 1.01)
func NewSimplifier() Simplifier {
	return &simplifierWrapper{}
}

// simplifierWrapper delegates to internal/simplify, keeping the concrete
// type private behind the exported Simplifier interface.
type simplifierWrapper struct{}

func (simplifierWrapper) Simplify(pl Polyline, tol float64) Polyline {
	return simplify.Simplify(pl, tol)
}
