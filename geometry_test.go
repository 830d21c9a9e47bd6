package polymerge

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point[int64]{2, 3}
	q := Point[int64]{5, 7}
	test.T(t, p.Add(q), Point[int64]{7, 10})
	test.T(t, q.Sub(p), Point[int64]{3, 4})
	test.Float(t, p.PerpDot(q), 2.0*7.0-3.0*5.0)
	test.Float(t, p.DistanceSq(q), 25.0)
	test.That(t, p.Equals(Point[int64]{2, 3}))
	test.That(t, !p.Equals(q))
	test.That(t, Point[float64]{1.0, 1.0}.Equals(Point[float64]{math.Nextafter(1.0, 2.0), 1.0}))
}

func TestBox(t *testing.T) {
	b := NewBox[int64](10, 20, 0, 5)
	test.That(t, b.IsValid())
	test.T(t, b, NewBox[int64](0, 5, 10, 20))
	test.T(t, b.Length(), int64(10))
	test.T(t, b.Width(), int64(15))
	test.Float(t, b.Area(), 150.0)

	var u Box[int64]
	test.That(t, !u.IsValid())
	test.Float(t, u.Area(), 0.0)
	u.AddPoint(Point[int64]{3, 4})
	test.T(t, u, NewBox[int64](3, 4, 3, 4))
	u.Union(b)
	test.T(t, u, NewBox[int64](0, 4, 10, 20))
	u.SetInvalid()
	test.That(t, !u.IsValid())
}

func TestBoxIntersects(t *testing.T) {
	var tts = []struct {
		a, b       Box[int64]
		intersects bool
	}{
		{NewBox[int64](0, 0, 10, 10), NewBox[int64](5, 5, 15, 15), true},
		{NewBox[int64](0, 0, 10, 10), NewBox[int64](10, 0, 20, 10), true},
		{NewBox[int64](0, 0, 10, 10), NewBox[int64](11, 0, 20, 10), false},
		{NewBox[int64](0, 0, 10, 10), NewBox[int64](0, 11, 10, 20), false},
	}
	for _, tt := range tts {
		test.T(t, tt.a.Intersects(tt.b), tt.intersects)
		test.T(t, tt.b.Intersects(tt.a), tt.intersects)
	}
	test.That(t, !Box[int64]{}.Intersects(NewBox[int64](0, 0, 10, 10)))
}

func TestBoxContains(t *testing.T) {
	b := NewBox[int64](0, 0, 10, 10)
	test.That(t, b.Contains(Point[int64]{5, 5}))
	test.That(t, b.Contains(Point[int64]{0, 10}))
	test.That(t, !b.Contains(Point[int64]{11, 5}))
	test.That(t, !Box[int64]{}.Contains(Point[int64]{0, 0}))
}

func TestBoxPolygon(t *testing.T) {
	p := NewBox[int64](0, 0, 10, 5).Polygon()
	test.T(t, len(p), 4)
	test.That(t, p.IsCCW())
	test.Float(t, p.Area(), 50.0)
}

func TestPolygonArea(t *testing.T) {
	square := Polygon[int64]{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	test.Float(t, square.Area(), 100.0)
	test.That(t, square.IsCCW())

	square.Reverse()
	test.Float(t, square.Area(), -100.0)
	test.That(t, !square.IsCCW())

	triangle := Polygon[float64]{{0.0, 0.0}, {4.0, 0.0}, {0.0, 3.0}}
	test.Float(t, triangle.Area(), 6.0)
}

func TestPolygonBBox(t *testing.T) {
	p := Polygon[int64]{{3, 1}, {10, 0}, {5, 8}}
	test.T(t, p.BBox(), NewBox[int64](3, 0, 10, 8))
}

func TestPolylineClosed(t *testing.T) {
	test.That(t, Polyline[int64]{{0, 0}, {10, 0}, {10, 10}, {0, 0}}.Closed())
	test.That(t, !Polyline[int64]{{0, 0}, {10, 0}, {10, 10}}.Closed())
	test.That(t, !Polyline[int64]{{0, 0}}.Closed())
}
