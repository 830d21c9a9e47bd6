package polymerge

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestTrimClosing(t *testing.T) {
	ring := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {4, 4}}
	test.T(t, len(trimClosing(ring, 0.5)), 4)

	near := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0.1, 0.1}}
	test.T(t, len(trimClosing(near, 0.5)), 5)

	closed := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	test.T(t, len(trimClosing(closed, 0.5)), 4)
}

func TestCleanPolygon(t *testing.T) {
	ring := Polygon[float64]{{0.0, 0.0}, {5.0, 0.01}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}}
	cleaned := cleanPolygon(ring, 0.1)
	test.T(t, len(cleaned), 4)
	test.Float(t, cleaned.Area(), 100.0)
}

func TestCleanPolygonKeepsCorners(t *testing.T) {
	ring := Polygon[float64]{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}}
	cleaned := cleanPolygon(ring, 0.1)
	test.T(t, len(cleaned), 4)
}

func TestCleanPolygonTooSmall(t *testing.T) {
	ring := Polygon[float64]{{0.0, 0.0}, {10.0, 0.0}}
	test.T(t, cleanPolygon(ring, 0.1), ring)
}

func TestCleanPolygons(t *testing.T) {
	pd := &PolygonData[int, float64]{
		Property: 1,
		Solid:    Polygon[float64]{{0.0, 0.0}, {5.0, 0.01}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}},
		Holes:    []Polygon[float64]{{{2.0, 2.0}, {4.0, 2.01}, {6.0, 2.0}, {6.0, 6.0}, {2.0, 6.0}}},
	}
	cleanPolygons([]*PolygonData[int, float64]{pd}, 0.1)
	test.T(t, len(pd.Solid), 4)
	test.T(t, len(pd.Holes[0]), 4)
}
