// Package spatialindex maintains the endpoints of all currently-open
// polylines in a merge pass and answers radius queries against them.
//
// It is built on github.com/dhconnelly/rtreego, the same R-tree library the
// teacher project uses for ChartIndex's geographic bounding-box queries
// (pkg/s57/index.go), generalized here from indexing chart bounds to
// indexing zero-extent endpoint points. Queries are O(log N + k): the R-tree
// narrows to the candidates in the query rectangle, and only those are
// checked against the true Euclidean radius.
package spatialindex

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/go-polyweld/polyweld/internal/geom"
)

// epsilon is the half-width used to turn a point into a degenerate
// rectangle, since rtreego indexes rectangles rather than points.
const epsilon = 1e-9

// Match is one endpoint record returned by a radius query.
type Match struct {
	ID       int
	IsStart  bool
	Point    geom.Point
	Distance float64
}

// entry is the rtreego.Spatial wrapper around one endpoint record.
type entry struct {
	id      int
	isStart bool
	point   geom.Point
}

func (e *entry) Bounds() rtreego.Rect {
	corner := rtreego.Point{e.point.X - epsilon, e.point.Y - epsilon}
	lengths := []float64{2 * epsilon, 2 * epsilon}
	rect, _ := rtreego.NewRect(corner, lengths)
	return rect
}

// Index is a spatial index over the endpoints of open polylines.
//
// Index is not safe for concurrent use, the same as the teacher's
// ChartIndex: it is built once per Engine run and queried synchronously
// from the merge loop.
type Index struct {
	tree     *rtreego.Rtree
	byID     map[int][2]*entry
	excluded map[int]bool
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		tree:     rtreego.NewTree(2, 25, 50),
		byID:     make(map[int][2]*entry),
		excluded: make(map[int]bool),
	}
}

// Build populates an Index from a set of polylines keyed by identifier.
// Closed polylines contribute no entries and are marked excluded.
func Build(polylines map[int]geom.Polyline) *Index {
	idx := New()
	for id, pl := range polylines {
		if geom.IsClosed(pl, geom.DefaultEpsilon) {
			idx.excluded[id] = true
			continue
		}
		idx.Insert(id, pl)
	}
	return idx
}

// Insert adds the two endpoint records for an open polyline, replacing any
// records already held for id. Removing the identifier's prior entries
// eagerly (rather than relying on lazy tombstoning) keeps a reinserted,
// merged-in-place polyline from leaving stale endpoints behind that a query
// could still match against.
//
// If pl is closed, it is opaque to the merge engine: id is marked excluded
// and no endpoint records are inserted, the same as Build does for
// polylines that are closed on ingestion.
func (idx *Index) Insert(id int, pl geom.Polyline) {
	idx.removeEntries(id)

	if geom.IsClosed(pl, geom.DefaultEpsilon) {
		idx.excluded[id] = true
		return
	}
	delete(idx.excluded, id)

	startEntry := &entry{id: id, isStart: true, point: pl[0]}
	endEntry := &entry{id: id, isStart: false, point: pl[len(pl)-1]}
	idx.tree.Insert(startEntry)
	idx.tree.Insert(endEntry)
	idx.byID[id] = [2]*entry{startEntry, endEntry}
}

// Remove retires an identifier: its endpoint records are deleted from the
// R-tree and it is marked excluded so any lingering reference is filtered
// out of query results regardless.
func (idx *Index) Remove(id int) {
	idx.removeEntries(id)
	idx.excluded[id] = true
}

func (idx *Index) removeEntries(id int) {
	if pair, ok := idx.byID[id]; ok {
		idx.tree.Delete(pair[0])
		idx.tree.Delete(pair[1])
		delete(idx.byID, id)
	}
}

// Query returns every endpoint record within radius of point, sorted by
// ascending distance. Excluded identifiers never appear in the results.
func (idx *Index) Query(point geom.Point, radius float64) []Match {
	corner := rtreego.Point{point.X - radius - epsilon, point.Y - radius - epsilon}
	lengths := []float64{2*radius + 2*epsilon, 2*radius + 2*epsilon}
	rect, err := rtreego.NewRect(corner, lengths)
	if err != nil {
		return nil
	}

	candidates := idx.tree.SearchIntersect(rect)
	r2 := radius * radius

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		e := c.(*entry)
		if idx.excluded[e.id] {
			continue
		}
		d := e.point.Sub(point)
		d2 := d.SquaredLength()
		if d2 > r2 {
			continue
		}
		matches = append(matches, Match{
			ID:       e.id,
			IsStart:  e.isStart,
			Point:    e.point,
			Distance: d.Length(),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}
