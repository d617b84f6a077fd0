package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Point
		wantOK  bool
		wantDir Point
	}{
		{"unit east", Point{0, 0}, Point{10, 0}, true, Point{1, 0}},
		{"unit diagonal", Point{0, 0}, Point{3, 4}, true, Point{0.6, 0.8}},
		{"coincident is degenerate", Point{5, 5}, Point{5, 5}, false, Point{}},
		{"near coincident is degenerate", Point{0, 0}, Point{1e-9, 0}, false, Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			dir, ok := Direction(tt.a, tt.b)
			require.Equal(tt.wantOK, ok)
			if tt.wantOK {
				require.InDelta(tt.wantDir.X, dir.X, 1e-9)
				require.InDelta(tt.wantDir.Y, dir.Y, 1e-9)
			}
		})
	}
}

func TestPathLength(t *testing.T) {
	require := require.New(t)

	require.Equal(0.0, PathLength(Polyline{}))
	require.Equal(0.0, PathLength(Polyline{{0, 0}}))
	require.InDelta(5.0, PathLength(Polyline{{0, 0}, {3, 4}}), 1e-9)
	require.InDelta(10.0, PathLength(Polyline{{0, 0}, {3, 4}, {3, -1}}), 1e-9)
}

func TestIsClosed(t *testing.T) {
	tests := []struct {
		name string
		pl   Polyline
		want bool
	}{
		{"open line", Polyline{{0, 0}, {10, 0}}, false},
		{"too short to close", Polyline{{0, 0}, {10, 0}, {0, 0}}, false},
		{"rectangle closed", Polyline{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}, true},
		{"not quite closed", Polyline{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0.5, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsClosed(tt.pl, DefaultEpsilon))
		})
	}
}

func TestIsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pl   Polyline
		want bool
	}{
		{"empty", Polyline{}, true},
		{"single point", Polyline{{0, 0}}, true},
		{"coincident pair", Polyline{{1, 1}, {1, 1}}, true},
		{"valid segment", Polyline{{0, 0}, {1, 0}}, false},
		{"closed polygon", Polyline{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsDegenerate(tt.pl, DefaultEpsilon))
		})
	}
}
