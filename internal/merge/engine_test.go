package merge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-polyweld/polyweld/internal/geom"
)

func defaultConfig() Config {
	return Config{
		DistanceTolerance: 0.5,
		AngleTolerance:    5,
		OffsetTolerance:   0.25,
	}
}

// Two collinear segments sharing an exact endpoint merge into one straight
// polyline.
func TestMergesTwoCollinearSegmentsAtSharedEndpoint(t *testing.T) {
	require := require.New(t)

	in := []geom.Polyline{
		{{0, 0}, {5, 0}},
		{{5, 0}, {10, 0}},
	}
	out := NewEngine(in, defaultConfig()).Run()

	require.Len(out, 1)
	require.Equal(geom.Polyline{{0, 0}, {5, 0}, {10, 0}}, out[0])
}

// A small gap under d_tol between two collinear segments still merges,
// keeping both endpoints (stitching a dashed line).
func TestMergesAcrossGapWithinDistanceTolerance(t *testing.T) {
	require := require.New(t)

	in := []geom.Polyline{
		{{0, 0}, {5, 0}},
		{{5.2, 0}, {10, 0}},
	}
	out := NewEngine(in, defaultConfig()).Run()

	require.Len(out, 1)
	require.Equal(geom.Polyline{{0, 0}, {5, 0}, {5.2, 0}, {10, 0}}, out[0])
}

// Two segments meeting at a sharp angle (not collinear) are left unmerged.
func TestDoesNotMergeAcrossSharpAngle(t *testing.T) {
	require := require.New(t)

	in := []geom.Polyline{
		{{0, 0}, {5, 0}},
		{{5, 0}, {5, 5}},
	}
	out := NewEngine(in, defaultConfig()).Run()

	require.Len(out, 2)
}

// Two parallel segments offset from each other's line, even though their
// endpoints are close and their tangents are collinear, must not merge.
func TestDoesNotMergeOffsetParallelSegments(t *testing.T) {
	require := require.New(t)

	in := []geom.Polyline{
		{{0, 0}, {5, 0}},
		{{5.3, 0.3}, {10, 0.3}},
	}
	out := NewEngine(in, defaultConfig()).Run()

	require.Len(out, 2)
}

// Three collinear segments chain together via repeated merges at the same
// end, regardless of input order.
func TestChainsThreeCollinearSegments(t *testing.T) {
	require := require.New(t)

	in := []geom.Polyline{
		{{10, 0}, {15, 0}},
		{{0, 0}, {5, 0}},
		{{5, 0}, {10, 0}},
	}
	out := NewEngine(in, defaultConfig()).Run()

	require.Len(out, 1)
	require.Equal(geom.Polyline{{0, 0}, {5, 0}, {10, 0}, {15, 0}}, out[0])
}

// A polyline that is already closed on input is passed through untouched
// and never offered to the merge loop.
func TestClosedInputPolylinePassesThrough(t *testing.T) {
	require := require.New(t)

	square := geom.Polyline{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	in := []geom.Polyline{square}
	out := NewEngine(in, defaultConfig()).Run()

	require.Len(out, 1)
	require.Equal(square, out[0])
}

// An open polyline whose two ends are close together and whose tangents
// point back at each other is closed by the closure pass.
func TestClosurePassClosesNearlyClosedOutline(t *testing.T) {
	require := require.New(t)

	in := []geom.Polyline{
		{{5, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}, {4.95, 0}},
	}
	out := NewEngine(in, defaultConfig()).Run()

	require.Len(out, 1)
	require.True(geom.IsClosed(out[0], geom.DefaultEpsilon))
}

// An endpoint merge at the reversed orientation (End-to-End) still produces
// a single coherently-wound polyline.
func TestMergesReversedOrientationSegment(t *testing.T) {
	require := require.New(t)

	in := []geom.Polyline{
		{{0, 0}, {5, 0}},
		{{10, 0}, {5, 0}},
	}
	out := NewEngine(in, defaultConfig()).Run()

	require.Len(out, 1)
	require.Equal(geom.Polyline{{0, 0}, {5, 0}, {10, 0}}, out[0])
}

// A single degenerate (zero-length) input polyline is silently dropped.
func TestDegenerateInputIsDropped(t *testing.T) {
	require := require.New(t)

	in := []geom.Polyline{
		{{0, 0}, {5, 0}},
		{{3, 3}, {3, 3}},
	}
	out := NewEngine(in, defaultConfig()).Run()

	require.Len(out, 1)
	require.Equal(geom.Polyline{{0, 0}, {5, 0}}, out[0])
}

// Running the merge loop again over an already-quiescent output changes
// nothing: the engine is idempotent on its own output.
func TestQuiescentOutputIsFixedPoint(t *testing.T) {
	require := require.New(t)

	in := []geom.Polyline{
		{{0, 0}, {5, 0}},
		{{5, 0}, {10, 0}},
	}
	first := NewEngine(in, defaultConfig()).Run()
	second := NewEngine(first, defaultConfig()).Run()

	require.Equal(first, second)
}
